package form

import "github.com/goliatone/go-resume/pkg/model"

// Logger receives debug traces for absorbed no-ops.
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used to trace rejected operations.
func WithLogger(logger Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithExpanded overrides the sections expanded initially.
func WithExpanded(sections ...model.Section) Option {
	return func(c *Controller) {
		c.expanded = make(map[model.Section]bool, len(sections))
		for _, section := range sections {
			c.expanded[section] = true
		}
	}
}
