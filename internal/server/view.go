package server

import (
	"fmt"

	"github.com/goliatone/go-resume/pkg/form"
	"github.com/goliatone/go-resume/pkg/model"
	"github.com/goliatone/go-resume/pkg/validation"
)

type fieldView struct {
	Path      string `json:"path"`
	Label     string `json:"label"`
	Value     string `json:"value"`
	Error     string `json:"error,omitempty"`
	Multiline bool   `json:"multiline,omitempty"`
}

type listView struct {
	Path  string      `json:"path"`
	Items []fieldView `json:"items"`
}

type entryView struct {
	Index            int         `json:"index"`
	Path             string      `json:"path"`
	Fields           []fieldView `json:"fields"`
	Responsibilities *listView   `json:"responsibilities,omitempty"`
}

type sectionView struct {
	Name       string      `json:"name"`
	Title      string      `json:"title"`
	Expanded   bool        `json:"expanded"`
	Repeatable bool        `json:"repeatable"`
	Fields     []fieldView `json:"fields,omitempty"`
	Entries    []entryView `json:"entries,omitempty"`
}

type pageData struct {
	Title      string        `json:"title"`
	Stylesheet string        `json:"stylesheet"`
	Preview    string        `json:"preview"`
	Sections   []sectionView `json:"sections"`
	ErrorCount int           `json:"errorCount"`
	Exporting  bool          `json:"exporting"`
}

// buildSections maps the controller state onto the form template model.
func buildSections(ctrl *form.Controller) []sectionView {
	doc := ctrl.Document()
	errs := ctrl.Errors()
	states := ctrl.Sections()

	out := make([]sectionView, 0, len(states))
	for _, state := range states {
		view := sectionView{
			Name:       string(state.Section),
			Title:      state.Title,
			Expanded:   state.Expanded,
			Repeatable: state.Section.Repeatable(),
		}
		switch {
		case state.Section == model.SectionSummary:
			view.Fields = []fieldView{newField(ctrl, errs, "", form.SummaryField())}
		case !view.Repeatable:
			view.Fields = fieldsAt(ctrl, errs, view.Name, form.Fields(state.Section))
		default:
			view.Entries = entriesOf(ctrl, errs, doc, state.Section)
		}
		out = append(out, view)
	}
	return out
}

func entriesOf(ctrl *form.Controller, errs validation.Errors, doc model.Document, section model.Section) []entryView {
	n := ctrl.Len(string(section))
	fields := form.Fields(section)
	entries := make([]entryView, 0, n)
	for i := 0; i < n; i++ {
		prefix := fmt.Sprintf("%s.%d", section, i)
		entry := entryView{Index: i, Path: prefix, Fields: fieldsAt(ctrl, errs, prefix, fields)}
		if section == model.SectionProjects {
			list := &listView{Path: form.ResponsibilitiesPath(i)}
			for j := range doc.Projects[i].Responsibilities {
				list.Items = append(list.Items, newField(ctrl, errs, list.Path, form.Field{
					Key:   fmt.Sprint(j),
					Label: fmt.Sprintf("Responsibility %d", j+1),
				}))
			}
			entry.Responsibilities = list
		}
		entries = append(entries, entry)
	}
	return entries
}

func fieldsAt(ctrl *form.Controller, errs validation.Errors, prefix string, fields []form.Field) []fieldView {
	out := make([]fieldView, 0, len(fields))
	for _, f := range fields {
		out = append(out, newField(ctrl, errs, prefix, f))
	}
	return out
}

func newField(ctrl *form.Controller, errs validation.Errors, prefix string, f form.Field) fieldView {
	path := f.Key
	if prefix != "" {
		path = prefix + "." + f.Key
	}
	value, _ := ctrl.Value(path)
	s, _ := value.(string)
	return fieldView{
		Path:      path,
		Label:     f.Label,
		Value:     s,
		Error:     errs.For(path),
		Multiline: f.Multiline,
	}
}
