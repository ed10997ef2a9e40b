// Package schema publishes the resume document shape as an OpenAPI component
// and moves documents in and out of JSON/YAML files. Imported files are
// checked structurally (types, nesting) before decoding; field rules are
// left to pkg/validation so half-filled documents still load.
package schema
