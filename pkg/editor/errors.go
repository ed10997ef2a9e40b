package editor

import "errors"

var (
	// ErrAborted signals the user aborted input (Ctrl+C).
	ErrAborted = errors.New("editor: aborted")
	// ErrNoController is returned when the editor is built without a form.
	ErrNoController = errors.New("editor: form controller is required")
)
