// Package validation evaluates the field rules declared on the resume model and
// reports them keyed by dotted field path ("experience.0.company"). Results
// are advisory: callers render them inline but never block editing,
// rendering or export on them.
package validation
