package editor

import (
	"context"
	"fmt"

	"github.com/goliatone/go-resume/pkg/form"
	"github.com/goliatone/go-resume/pkg/model"
)

const (
	actionValidate = "Validate"
	actionExport   = "Export PDF"
	actionSave     = "Save document"
	actionQuit     = "Quit"

	itemBack     = "Back"
	itemCollapse = "Collapse section"
	itemAdd      = "Add entry"
	itemRemove   = "Remove entry"
	itemCancel   = "Cancel"
)

var mainActions = []string{actionValidate, actionExport, actionSave, actionQuit}

// Editor drives a form.Controller from terminal prompts.
type Editor struct {
	ctrl     *form.Controller
	driver   PromptDriver
	exporter Exporter
	save     SaveFunc
	theme    Theme
	logger   Logger
}

// New builds an editor over ctrl. The survey driver is used unless
// WithPromptDriver overrides it.
func New(ctrl *form.Controller, options ...Option) (*Editor, error) {
	if ctrl == nil {
		return nil, ErrNoController
	}
	e := &Editor{
		ctrl:   ctrl,
		theme:  Theme{ErrorPrefix: "! "},
		logger: nopLogger{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.driver == nil {
		e.driver = NewSurveyDriver(nil)
	}
	return e, nil
}

// Run shows the main menu until the user quits. It returns ErrAborted on
// Ctrl+C and any driver failure as is. Validation problems never stop the
// loop; they are printed after the edit that caused them.
func (e *Editor) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		sections := e.ctrl.Sections()
		options := make([]string, 0, len(sections)+len(mainActions))
		for _, state := range sections {
			options = append(options, sectionLine(state))
		}
		options = append(options, mainActions...)

		idx, err := e.driver.Select(ctx, SelectConfig{
			Message:  "Resume",
			Options:  options,
			PageSize: len(options),
		})
		if err != nil {
			return err
		}

		if idx >= 0 && idx < len(sections) {
			if err := e.editSection(ctx, sections[idx].Section); err != nil {
				return err
			}
			continue
		}

		switch choice(options, idx) {
		case actionValidate:
			err = e.validate(ctx)
		case actionExport:
			err = e.export(ctx)
		case actionSave:
			err = e.saveDocument(ctx)
		case actionQuit:
			return nil
		default:
			e.logger.Debugf("editor: ignoring menu index %d", idx)
		}
		if err != nil {
			return err
		}
	}
}

func sectionLine(state form.SectionState) string {
	marker := "[+]"
	if state.Expanded {
		marker = "[-]"
	}
	return marker + " " + state.Title
}

func choice(options []string, idx int) string {
	if idx < 0 || idx >= len(options) {
		return ""
	}
	return options[idx]
}

func (e *Editor) editSection(ctx context.Context, section model.Section) error {
	if !e.ctrl.Expanded(section) {
		e.ctrl.ToggleSection(section)
	}
	switch section {
	case model.SectionPersonalInfo:
		return e.editFields(ctx, section.Title(), string(section), form.Fields(section), true)
	case model.SectionSummary:
		return e.editField(ctx, string(section), form.SummaryField())
	default:
		return e.editList(ctx, section)
	}
}

// editFields shows one menu line per field until Back. Collapse is offered
// for whole sections only.
func (e *Editor) editFields(ctx context.Context, title, prefix string, fields []form.Field, collapsible bool) error {
	for {
		options := make([]string, 0, len(fields)+2)
		for _, f := range fields {
			options = append(options, fmt.Sprintf("%s: %s", f.Label, preview(e.stringValue(prefix+"."+f.Key))))
		}
		options = append(options, itemBack)
		if collapsible {
			options = append(options, itemCollapse)
		}

		idx, err := e.driver.Select(ctx, SelectConfig{Message: title, Options: options})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(fields) {
			if err := e.editField(ctx, prefix+"."+fields[idx].Key, fields[idx]); err != nil {
				return err
			}
			continue
		}
		if choice(options, idx) == itemCollapse {
			e.ctrl.ToggleSection(model.Section(prefix))
		}
		return nil
	}
}

func (e *Editor) editField(ctx context.Context, path string, f form.Field) error {
	current := e.stringValue(path)

	var (
		value string
		err   error
	)
	if f.Multiline {
		value, err = e.driver.TextArea(ctx, TextAreaConfig{Message: f.Label, Default: current})
	} else {
		value, err = e.driver.Input(ctx, InputConfig{Message: f.Label, Default: current})
	}
	if err != nil {
		return err
	}
	if value == current {
		return nil
	}
	if !e.ctrl.SetField(path, value) {
		e.logger.Debugf("editor: set %q rejected", path)
		return nil
	}
	return e.report(ctx, path)
}

func (e *Editor) editList(ctx context.Context, section model.Section) error {
	list := string(section)
	for {
		doc := e.ctrl.Document()
		n := e.ctrl.Len(list)
		options := make([]string, 0, n+4)
		for i := 0; i < n; i++ {
			options = append(options, entryLabel(doc, section, i))
		}
		options = append(options, itemAdd, itemRemove, itemBack, itemCollapse)

		idx, err := e.driver.Select(ctx, SelectConfig{Message: section.Title(), Options: options})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < n {
			if err := e.editEntry(ctx, section, idx); err != nil {
				return err
			}
			continue
		}

		switch choice(options, idx) {
		case itemAdd:
			if !e.ctrl.AppendBlank(list) {
				continue
			}
			if err := e.editEntry(ctx, section, n); err != nil {
				return err
			}
		case itemRemove:
			if err := e.removeEntry(ctx, section); err != nil {
				return err
			}
		case itemCollapse:
			e.ctrl.ToggleSection(section)
			return nil
		default:
			return nil
		}
	}
}

func (e *Editor) editEntry(ctx context.Context, section model.Section, index int) error {
	prefix := fmt.Sprintf("%s.%d", section, index)
	fields := form.Fields(section)
	if section != model.SectionProjects {
		return e.editFields(ctx, entryLabel(e.ctrl.Document(), section, index), prefix, fields, false)
	}

	for {
		options := make([]string, 0, len(fields)+2)
		for _, f := range fields {
			options = append(options, fmt.Sprintf("%s: %s", f.Label, preview(e.stringValue(prefix+"."+f.Key))))
		}
		options = append(options,
			fmt.Sprintf("Responsibilities (%d)", e.ctrl.Len(form.ResponsibilitiesPath(index))),
			itemBack,
		)

		idx, err := e.driver.Select(ctx, SelectConfig{
			Message: entryLabel(e.ctrl.Document(), section, index),
			Options: options,
		})
		if err != nil {
			return err
		}
		switch {
		case idx >= 0 && idx < len(fields):
			if err := e.editField(ctx, prefix+"."+fields[idx].Key, fields[idx]); err != nil {
				return err
			}
		case idx == len(fields):
			if err := e.editResponsibilities(ctx, index); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (e *Editor) removeEntry(ctx context.Context, section model.Section) error {
	list := string(section)
	n := e.ctrl.Len(list)
	if n <= 0 {
		return e.info(ctx, "Nothing to remove.")
	}
	doc := e.ctrl.Document()
	options := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		options = append(options, entryLabel(doc, section, i))
	}
	options = append(options, itemCancel)

	idx, err := e.driver.Select(ctx, SelectConfig{Message: "Remove which entry?", Options: options})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= n {
		return nil
	}
	ok, err := e.driver.Confirm(ctx, ConfirmConfig{Message: fmt.Sprintf("Remove %s?", options[idx])})
	if err != nil || !ok {
		return err
	}
	e.ctrl.Remove(list, idx)
	return nil
}

func (e *Editor) editResponsibilities(ctx context.Context, project int) error {
	path := form.ResponsibilitiesPath(project)
	for {
		n := e.ctrl.Len(path)
		options := make([]string, 0, n+3)
		for i := 0; i < n; i++ {
			options = append(options, fmt.Sprintf("%d. %s", i+1, preview(e.stringValue(fmt.Sprintf("%s.%d", path, i)))))
		}
		options = append(options, "Add responsibility", "Remove responsibility", itemBack)

		idx, err := e.driver.Select(ctx, SelectConfig{Message: "Responsibilities", Options: options})
		if err != nil {
			return err
		}
		switch {
		case idx >= 0 && idx < n:
			item := fmt.Sprintf("%s.%d", path, idx)
			if err := e.editField(ctx, item, form.Field{Label: "Responsibility"}); err != nil {
				return err
			}
		case idx == n:
			text, err := e.driver.Input(ctx, InputConfig{Message: "Responsibility"})
			if err != nil {
				return err
			}
			if e.ctrl.AppendResponsibility(project, text) {
				if err := e.report(ctx, fmt.Sprintf("%s.%d", path, n)); err != nil {
					return err
				}
			}
		case idx == n+1:
			if n == 0 {
				if err := e.info(ctx, "Nothing to remove."); err != nil {
					return err
				}
				continue
			}
			choices := append(append([]string(nil), options[:n]...), itemCancel)
			which, err := e.driver.Select(ctx, SelectConfig{Message: "Remove which responsibility?", Options: choices})
			if err != nil {
				return err
			}
			if which >= 0 && which < n {
				e.ctrl.RemoveResponsibility(project, which)
			}
		default:
			return nil
		}
	}
}

func (e *Editor) stringValue(path string) string {
	value, ok := e.ctrl.Value(path)
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}

// report prints the validation message of path, if any.
func (e *Editor) report(ctx context.Context, path string) error {
	if msg := e.ctrl.Errors().For(path); msg != "" {
		return e.warn(ctx, fmt.Sprintf("%s: %s", path, msg))
	}
	return nil
}

func (e *Editor) validate(ctx context.Context) error {
	errs := e.ctrl.Errors()
	if errs.Valid() {
		return e.info(ctx, "Document is valid.")
	}
	if err := e.info(ctx, fmt.Sprintf("%d field(s) need attention:", len(errs))); err != nil {
		return err
	}
	for _, path := range errs.Paths() {
		if err := e.warn(ctx, fmt.Sprintf("%s: %s", path, errs[path])); err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) export(ctx context.Context) error {
	if e.exporter == nil {
		return e.info(ctx, "Export is not configured.")
	}
	result, err := e.exporter.ExportToFile(ctx)
	if err != nil {
		return e.warn(ctx, "Export failed: "+err.Error())
	}
	return e.info(ctx, fmt.Sprintf("Exported %s (%d bytes).", result.Path, result.Bytes))
}

func (e *Editor) saveDocument(ctx context.Context) error {
	if e.save == nil {
		return e.info(ctx, "Saving is not configured.")
	}
	path, err := e.save(ctx, e.ctrl.Document())
	if err != nil {
		return e.warn(ctx, "Save failed: "+err.Error())
	}
	return e.info(ctx, "Saved "+path+".")
}

func (e *Editor) info(ctx context.Context, msg string) error {
	return e.driver.Info(ctx, e.theme.InfoPrefix+msg)
}

func (e *Editor) warn(ctx context.Context, msg string) error {
	return e.driver.Info(ctx, e.theme.ErrorPrefix+msg)
}
