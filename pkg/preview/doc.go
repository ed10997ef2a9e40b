// Package preview projects a resume document into a visual tree
// (golang.org/x/net/html nodes) and keeps the live, viewport-constrained copy
// shown next to the form.
//
// Render is pure: value-equal documents produce byte-identical output when
// serialised. The View holds the latest tree together with its on-screen
// constraints and lets the export bridge lift them for the duration of a
// capture.
package preview
