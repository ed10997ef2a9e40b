// Package form owns the editable resume document. The Controller exposes
// path-addressed structural operations ("experience", "projects.1.responsibilities",
// "personalInfo.email"), tracks which form sections are expanded, and notifies
// subscribers synchronously with a snapshot after every committed mutation.
//
// Structural mistakes (unknown paths, out-of-range indexes, mismatched value
// types) are absorbed as no-ops reported through a false return value. The
// Controller is not safe for concurrent use; surfaces that receive concurrent
// events must serialise them.
package form
