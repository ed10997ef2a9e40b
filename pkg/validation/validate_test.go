package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resume/pkg/model"
	"github.com/goliatone/go-resume/pkg/validation"
)

func validDocument() model.Document {
	doc := model.DefaultDocument()
	doc.PersonalInfo.LinkedIn = "https://linkedin.com/in/johndoe"
	return doc
}

func TestValidate_ValidDocument(t *testing.T) {
	errs := validation.Validate(validDocument())
	if !errs.Valid() {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_DefaultDocumentFlagsSchemelessLink(t *testing.T) {
	errs := validation.Validate(model.DefaultDocument())
	want := validation.Errors{"personalInfo.linkedin": "Invalid LinkedIn URL"}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_RequiredFieldsIffEmpty(t *testing.T) {
	cases := []struct {
		path   string
		mutate func(*model.Document, string)
		msg    string
	}{
		{"personalInfo.name", func(d *model.Document, v string) { d.PersonalInfo.Name = v }, "Name is required"},
		{"personalInfo.phone", func(d *model.Document, v string) { d.PersonalInfo.Phone = v }, "Phone is required"},
		{"personalInfo.location", func(d *model.Document, v string) { d.PersonalInfo.Location = v }, "Location is required"},
		{"personalInfo.title", func(d *model.Document, v string) { d.PersonalInfo.Title = v }, "Title is required"},
		{"summary", func(d *model.Document, v string) { d.Summary = v }, "Summary is required"},
		{"experience.1.company", func(d *model.Document, v string) { d.Experience[1].Company = v }, "Company name is required"},
		{"experience.0.description", func(d *model.Document, v string) { d.Experience[0].Description = v }, "Description is required"},
		{"education.0.degree", func(d *model.Document, v string) { d.Education[0].Degree = v }, "Degree is required"},
		{"skills.4.list", func(d *model.Document, v string) { d.Skills[4].List = v }, "List of skills is required"},
		{"awards.2.name", func(d *model.Document, v string) { d.Awards[2].Name = v }, "Award cannot be empty"},
		{"projects.0.technologies", func(d *model.Document, v string) { d.Projects[0].Technologies = v }, "Technologies are required"},
		{"projects.1.responsibilities.2", func(d *model.Document, v string) { d.Projects[1].Responsibilities[2] = v }, "Responsibility cannot be empty"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			empty := validDocument()
			tc.mutate(&empty, "")
			errs := validation.Validate(empty)
			if got := errs.For(tc.path); got != tc.msg {
				t.Fatalf("empty %s: got %q want %q (all: %v)", tc.path, got, tc.msg, errs)
			}
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}

			filled := validDocument()
			tc.mutate(&filled, "x")
			if errs := validation.Validate(filled); !errs.Valid() {
				t.Fatalf("non-empty %s should pass, got %v", tc.path, errs)
			}
		})
	}
}

func TestValidate_Email(t *testing.T) {
	for _, value := range []string{"", "john", "john@", "@example.com"} {
		doc := validDocument()
		doc.PersonalInfo.Email = value
		if got := validation.Validate(doc).For("personalInfo.email"); got != "Invalid email" {
			t.Fatalf("email %q: got %q", value, got)
		}
	}
}

func TestValidate_OptionalLink(t *testing.T) {
	cases := map[string]bool{
		"":                            true,
		"https://linkedin.com/in/abc": true,
		"http://example.com":          true,
		"linkedin.com/in/abc":         false,
		"not a url":                   false,
	}
	for value, valid := range cases {
		doc := validDocument()
		doc.PersonalInfo.LinkedIn = value
		msg := validation.Validate(doc).For("personalInfo.linkedin")
		if valid && msg != "" {
			t.Fatalf("link %q should pass, got %q", value, msg)
		}
		if !valid && msg != "Invalid LinkedIn URL" {
			t.Fatalf("link %q should fail, got %q", value, msg)
		}
	}
}

func TestValidate_EmptyListsAreValid(t *testing.T) {
	doc := validDocument()
	doc.Experience = nil
	doc.Education = []model.Education{}
	doc.Projects[0].Responsibilities = nil
	if errs := validation.Validate(doc); !errs.Valid() {
		t.Fatalf("empty lists should validate, got %v", errs)
	}
}

func TestErrors_UnderAndPaths(t *testing.T) {
	doc := validDocument()
	doc.Projects[1].Name = ""
	doc.Projects[1].Responsibilities[0] = ""
	doc.Summary = ""

	errs := validation.Validate(doc)
	want := []string{"projects.1.name", "projects.1.responsibilities.0", "summary"}
	if diff := cmp.Diff(want, errs.Paths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	under := errs.Under("projects.1")
	if len(under) != 2 {
		t.Fatalf("expected two project errors, got %v", under)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/experience/0/company":           "experience.0.company",
		"#/personalInfo/email":            "personalInfo.email",
		"projects[1].responsibilities[0]": "projects.1.responsibilities.0",
		"$.summary":                       "summary",
		"  awards.2.name ":                "awards.2.name",
		"":                                "",
	}
	for in, want := range cases {
		if got := validation.NormalizePath(in); got != want {
			t.Fatalf("NormalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMessage_Fallbacks(t *testing.T) {
	if got := validation.Message("custom.0.thing", "required"); got != "thing is required" {
		t.Fatalf("unexpected fallback message %q", got)
	}
	if got := validation.Pattern("projects.3.responsibilities.12"); got != "projects.*.responsibilities.*" {
		t.Fatalf("unexpected pattern %q", got)
	}
}
