package resume

import (
	"io/fs"

	"github.com/goliatone/go-resume/pkg/preview"
)

// EmbeddedTemplates exposes the built-in page templates so callers can copy
// and override them through a templates directory.
func EmbeddedTemplates() fs.FS {
	return preview.Templates()
}
