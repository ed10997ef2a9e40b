// Package export turns the live preview into a saved document. The Bridge
// runs at most one export at a time: it lifts the preview's on-screen
// constraints, hands an isolated snapshot of the tree to an Engine, saves
// the bytes and restores the constraints whatever the outcome.
//
// Exports are single best-effort attempts. There is no retry and no timeout
// beyond the caller's context.
package export
