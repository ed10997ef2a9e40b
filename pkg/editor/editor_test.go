package editor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resume/pkg/export"
	"github.com/goliatone/go-resume/pkg/form"
	"github.com/goliatone/go-resume/pkg/model"
	"github.com/goliatone/go-resume/pkg/testsupport"
)

// Main menu indices for the default section order.
const (
	menuPersonal   = 0
	menuSummary    = 1
	menuExperience = 2
	menuProjects   = 6
	menuValidate   = 7
	menuExport     = 8
	menuSave       = 9
	menuQuit       = 10
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	textAreas    []string
	infoMessages []string
	selectMenus  [][]string
	selectErr    error
	inputPos     int
	selectPos    int
	confirmPos   int
	textPos      int
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if s.selectErr != nil {
		return 0, s.selectErr
	}
	s.selectMenus = append(s.selectMenus, cfg.Options)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func (s *stubDriver) consumed(t *testing.T) {
	t.Helper()
	if s.selectPos != len(s.selectIdx) || s.inputPos != len(s.inputs) || s.textPos != len(s.textAreas) || s.confirmPos != len(s.confirm) {
		t.Fatalf("prompts not consumed as expected: select %d/%d input %d/%d text %d/%d confirm %d/%d",
			s.selectPos, len(s.selectIdx), s.inputPos, len(s.inputs), s.textPos, len(s.textAreas), s.confirmPos, len(s.confirm))
	}
}

func run(t *testing.T, ctrl *form.Controller, driver *stubDriver, opts ...Option) {
	t.Helper()
	ed, err := New(ctrl, append([]Option{WithPromptDriver(driver)}, opts...)...)
	if err != nil {
		t.Fatalf("new editor: %v", err)
	}
	if err := ed.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	driver.consumed(t)
}

func TestEditor_EditPersonalField(t *testing.T) {
	ctrl := form.New(model.DefaultDocument())
	var notified int
	ctrl.Subscribe(func(model.Document) { notified++ })

	driver := &stubDriver{
		selectIdx: []int{menuPersonal, 0, 6, menuQuit},
		inputs:    []string{"Jane Roe"},
	}
	run(t, ctrl, driver)

	if got := ctrl.Document().PersonalInfo.Name; got != "Jane Roe" {
		t.Fatalf("name = %q", got)
	}
	if notified != 1 {
		t.Fatalf("expected one notification, got %d", notified)
	}
	if len(driver.infoMessages) != 0 {
		t.Fatalf("unexpected messages: %v", driver.infoMessages)
	}
}

func TestEditor_ReportsFieldErrorsWithoutBlocking(t *testing.T) {
	ctrl := form.New(model.DefaultDocument())
	driver := &stubDriver{
		selectIdx: []int{menuPersonal, 1, 6, menuQuit},
		inputs:    []string{"not-an-email"},
	}
	run(t, ctrl, driver)

	if got := ctrl.Document().PersonalInfo.Email; got != "not-an-email" {
		t.Fatalf("invalid value should still be stored, got %q", got)
	}
	want := []string{"! personalInfo.email: Invalid email"}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestEditor_UnchangedValueDoesNotNotify(t *testing.T) {
	doc := model.DefaultDocument()
	ctrl := form.New(doc)
	var notified int
	ctrl.Subscribe(func(model.Document) { notified++ })

	driver := &stubDriver{
		selectIdx: []int{menuSummary, menuSummary, menuQuit},
		textAreas: []string{doc.Summary, "Builds reliable systems."},
	}
	run(t, ctrl, driver)

	if notified != 1 {
		t.Fatalf("expected one notification, got %d", notified)
	}
	if got := ctrl.Document().Summary; got != "Builds reliable systems." {
		t.Fatalf("summary = %q", got)
	}
}

func TestEditor_AddExperienceEntry(t *testing.T) {
	ctrl := form.New(model.DefaultDocument())
	driver := &stubDriver{
		selectIdx: []int{
			menuExperience,
			2,    // Add entry
			0, 1, // Company, Position
			5, // Back from the entry
			5, // Back from the list (3 entries, add, remove)
			menuQuit,
		},
		inputs: []string{"Acme", "Engineer"},
	}
	run(t, ctrl, driver)

	doc := ctrl.Document()
	if len(doc.Experience) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(doc.Experience))
	}
	want := model.Experience{Company: "Acme", Position: "Engineer"}
	if diff := cmp.Diff(want, doc.Experience[2]); diff != "" {
		t.Fatalf("new entry mismatch (-want +got):\n%s", diff)
	}
	if !ctrl.Expanded(model.SectionExperience) {
		t.Fatalf("entering a section should expand it")
	}
	listMenu := driver.selectMenus[len(driver.selectMenus)-2]
	if listMenu[2] != "3. Engineer at Acme" {
		t.Fatalf("entry label = %q", listMenu[2])
	}
}

func TestEditor_RemoveEntryAfterConfirm(t *testing.T) {
	ctrl := form.New(model.DefaultDocument())
	driver := &stubDriver{
		selectIdx: []int{
			menuExperience,
			3, // Remove entry
			0, // first entry
			3, // Back: 1 entry, add, remove, back
			menuQuit,
		},
		confirm: []bool{true},
	}
	run(t, ctrl, driver)

	doc := ctrl.Document()
	if len(doc.Experience) != 1 || doc.Experience[0].Company != "StartUp Inc" {
		t.Fatalf("unexpected experience after removal: %+v", doc.Experience)
	}
}

func TestEditor_RemoveEntryDeclined(t *testing.T) {
	ctrl := form.New(model.DefaultDocument())
	driver := &stubDriver{
		selectIdx: []int{menuExperience, 3, 1, 4, menuQuit},
		confirm:   []bool{false},
	}
	run(t, ctrl, driver)

	if got := len(ctrl.Document().Experience); got != 2 {
		t.Fatalf("declined removal changed the list: %d entries", got)
	}
}

func TestEditor_ManageResponsibilities(t *testing.T) {
	ctrl := form.New(model.DefaultDocument())
	driver := &stubDriver{
		selectIdx: []int{
			menuProjects,
			0, // first project
			4, // Responsibilities (3)
			3, // Add responsibility
			0, // edit the first one
			5, // Remove responsibility (4 items, add, remove, back)
			1, // second item
			5, // Back (3 items)
			5, // Back from the project
			4, // Back from the list (2 projects, add, remove, back)
			menuQuit,
		},
		inputs: []string{"Mentored juniors", "Designed the system"},
	}
	run(t, ctrl, driver)

	want := []string{
		"Designed the system",
		"Optimized database queries for better performance",
		"Mentored juniors",
	}
	if diff := cmp.Diff(want, ctrl.Document().Projects[0].Responsibilities); diff != "" {
		t.Fatalf("responsibilities mismatch (-want +got):\n%s", diff)
	}
}

func TestEditor_EmptyResponsibilityIsReported(t *testing.T) {
	ctrl := form.New(model.DefaultDocument())
	driver := &stubDriver{
		selectIdx: []int{menuProjects, 1, 4, 3, 6, 5, 4, menuQuit},
		inputs:    []string{""},
	}
	run(t, ctrl, driver)

	want := []string{"! projects.1.responsibilities.3: Responsibility cannot be empty"}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestEditor_CollapseSection(t *testing.T) {
	ctrl := form.New(model.DefaultDocument())
	driver := &stubDriver{
		selectIdx: []int{menuPersonal, 7, menuQuit},
	}
	run(t, ctrl, driver)

	if ctrl.Expanded(model.SectionPersonalInfo) {
		t.Fatalf("personal info should be collapsed")
	}
	first, last := driver.selectMenus[0], driver.selectMenus[len(driver.selectMenus)-1]
	if first[0] != "[-] Personal Information" || first[2] != "[+] Experience" {
		t.Fatalf("unexpected main menu: %v", first)
	}
	if last[0] != "[+] Personal Information" {
		t.Fatalf("menu did not follow the collapse: %v", last)
	}
}

func TestEditor_Validate(t *testing.T) {
	tests := []struct {
		name string
		doc  model.Document
		want []string
	}{
		{
			name: "valid",
			doc:  testsupport.ValidDocument(),
			want: []string{"Document is valid."},
		},
		{
			name: "scheme-less link",
			doc:  model.DefaultDocument(),
			want: []string{"1 field(s) need attention:", "! personalInfo.linkedin: Invalid LinkedIn URL"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := &stubDriver{selectIdx: []int{menuValidate, menuQuit}}
			run(t, form.New(tt.doc), driver)
			if diff := cmp.Diff(tt.want, driver.infoMessages); diff != "" {
				t.Fatalf("messages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type exporterFunc func(ctx context.Context) (export.Result, error)

func (f exporterFunc) ExportToFile(ctx context.Context) (export.Result, error) {
	return f(ctx)
}

func TestEditor_ExportAndSave(t *testing.T) {
	ctrl := form.New(model.DefaultDocument())
	calls := 0
	exporter := exporterFunc(func(context.Context) (export.Result, error) {
		calls++
		if calls == 2 {
			return export.Result{}, export.ErrExportInProgress
		}
		return export.Result{Path: "out/resume.pdf", Bytes: 42}, nil
	})
	var saved model.Document
	save := func(_ context.Context, doc model.Document) (string, error) {
		saved = doc
		return "resume.yaml", nil
	}

	driver := &stubDriver{selectIdx: []int{menuExport, menuExport, menuSave, menuQuit}}
	run(t, ctrl, driver, WithExporter(exporter), WithSave(save))

	want := []string{
		"Exported out/resume.pdf (42 bytes).",
		"! Export failed: export already in progress",
		"Saved resume.yaml.",
	}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	if !saved.Equal(ctrl.Document()) {
		t.Fatalf("saved document differs from the controller's")
	}
}

func TestEditor_ActionsWithoutBackends(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{menuExport, menuSave, menuQuit}}
	run(t, form.New(model.DefaultDocument()), driver, WithTheme(Theme{InfoPrefix: "> "}))

	want := []string{"> Export is not configured.", "> Saving is not configured."}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestEditor_Aborted(t *testing.T) {
	ed, err := New(form.New(model.DefaultDocument()), WithPromptDriver(&stubDriver{selectErr: ErrAborted}))
	if err != nil {
		t.Fatalf("new editor: %v", err)
	}
	if err := ed.Run(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestNew_RequiresController(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoController) {
		t.Fatalf("expected ErrNoController, got %v", err)
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("word ", 20)
	got := preview(long)
	if len([]rune(got)) != 40 || !strings.HasSuffix(got, "...") {
		t.Fatalf("preview = %q", got)
	}
	if got := preview("  a\n b "); got != "a b" {
		t.Fatalf("preview = %q", got)
	}
}
