// Package model defines the resume document edited by the form controller and
// projected by the preview renderer. A Document is a plain value: the
// controller replaces it wholesale on every edit and hands out clones, so no
// two holders ever share slices. Validation rules live next to the fields as
// `validate` struct tags; pkg/validation evaluates them and pkg/schema maps
// them onto the published OpenAPI schema.
package model
