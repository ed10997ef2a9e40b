package form

import "github.com/goliatone/go-resume/pkg/model"

// SectionState describes one form section for rendering.
type SectionState struct {
	Section  model.Section `json:"section"`
	Title    string        `json:"title"`
	Expanded bool          `json:"expanded"`
}

// ToggleSection flips the expanded state of section and returns the new
// state. Unknown sections are ignored and report false. Toggling never
// notifies document listeners.
func (c *Controller) ToggleSection(section model.Section) bool {
	parsed, ok := model.ParseSection(string(section))
	if !ok {
		c.logger.Debugf("form: toggle %q ignored: unknown section", section)
		return false
	}
	c.expanded[parsed] = !c.expanded[parsed]
	return c.expanded[parsed]
}

// Expanded reports whether section is expanded.
func (c *Controller) Expanded(section model.Section) bool {
	return c.expanded[section]
}

// Sections lists every section in form order with its UI state.
func (c *Controller) Sections() []SectionState {
	sections := model.Sections()
	out := make([]SectionState, 0, len(sections))
	for _, section := range sections {
		out = append(out, SectionState{
			Section:  section,
			Title:    section.Title(),
			Expanded: c.expanded[section],
		})
	}
	return out
}
