package model_test

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resume/pkg/model"
)

func TestDocumentClone_IsIndependent(t *testing.T) {
	original := model.DefaultDocument()
	clone := original.Clone()

	clone.Experience[0].Company = "Changed"
	clone.Projects[0].Responsibilities[0] = "Changed"
	clone.Awards = append(clone.Awards, model.Award{Name: "Extra"})

	want := model.DefaultDocument()
	if diff := cmp.Diff(want, original); diff != "" {
		t.Fatalf("original mutated through clone (-want +got):\n%s", diff)
	}
}

func TestDocumentClone_PreservesNilLists(t *testing.T) {
	clone := model.Document{}.Clone()
	if clone.Experience != nil || clone.Projects != nil {
		t.Fatalf("expected nil lists to stay nil, got %#v", clone)
	}
}

func TestDocumentEqual(t *testing.T) {
	a := model.DefaultDocument()
	b := model.DefaultDocument()
	if !a.Equal(b) {
		t.Fatalf("expected default documents to be equal")
	}

	b.Projects[1].Responsibilities[2] = "Different"
	if a.Equal(b) {
		t.Fatalf("expected documents with different responsibilities to differ")
	}

	empty := model.Document{Awards: []model.Award{}}
	if !empty.Equal(model.Document{}) {
		t.Fatalf("expected empty and nil lists to compare equal")
	}
}

func TestBlankEntry(t *testing.T) {
	entry, ok := model.BlankEntry("projects")
	if !ok {
		t.Fatalf("expected blank project entry")
	}
	want := model.Project{Responsibilities: []string{""}}
	if diff := cmp.Diff(want, entry); diff != "" {
		t.Fatalf("blank project mismatch (-want +got):\n%s", diff)
	}

	if _, ok := model.BlankEntry("summary"); ok {
		t.Fatalf("summary is not a list")
	}
}

func TestSections(t *testing.T) {
	sections := model.Sections()
	if len(sections) != 7 || sections[0] != model.SectionPersonalInfo {
		t.Fatalf("unexpected section order: %v", sections)
	}
	if got := model.SectionSummary.Heading(); got != "Profile" {
		t.Fatalf("summary heading = %q", got)
	}
	if got := model.SectionAwards.Title(); got != "Awards & Certifications" {
		t.Fatalf("awards title = %q", got)
	}
	name := []byte(" skills ")
	parsed, ok := model.ParseSection(string(name))
	if !ok || parsed != model.SectionSkills {
		t.Fatalf("expected skills to parse, got %q", parsed)
	}
	if unsafe.StringData(string(parsed)) != unsafe.StringData(string(model.SectionSkills)) {
		t.Fatalf("parsed section should be the catalogue constant")
	}
	if _, ok := model.ParseSection("hobbies"); ok {
		t.Fatalf("unknown section parsed")
	}
	if model.SectionSummary.Repeatable() || !model.SectionProjects.Repeatable() {
		t.Fatalf("unexpected repeatable flags")
	}
}
