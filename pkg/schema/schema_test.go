package schema_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resume/pkg/model"
	"github.com/goliatone/go-resume/pkg/schema"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, format := range []schema.Format{schema.FormatJSON, schema.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			want := model.DefaultDocument()
			data, err := schema.Encode(want, format)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := schema.Decode(data, format)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_YAMLDatesAndNulls(t *testing.T) {
	input := `
personalInfo:
  name: Ada
  email: ada@example.com
  linkedin: null
summary: Engines
education:
  - institution: Cambridge
    degree: Maths
    startDate: 1833-06-05
    endDate: 1835-01-01
awards: []
`
	doc, err := schema.Decode([]byte(input), schema.FormatYAML)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []model.Education{{
		Institution: "Cambridge",
		Degree:      "Maths",
		StartDate:   "1833-06-05",
		EndDate:     "1835-01-01",
	}}
	if diff := cmp.Diff(want, doc.Education); diff != "" {
		t.Fatalf("education mismatch (-want +got):\n%s", diff)
	}
	if doc.PersonalInfo.LinkedIn != "" {
		t.Fatalf("expected null link to decode as empty, got %q", doc.PersonalInfo.LinkedIn)
	}
	if len(doc.Awards) != 0 {
		t.Fatalf("expected no awards, got %v", doc.Awards)
	}
}

func TestDecode_RejectsWrongShape(t *testing.T) {
	input := `{"summary": 42, "experience": {"company": "Acme"}, "projects": [{"responsibilities": "all"}]}`
	_, err := schema.Decode([]byte(input), schema.FormatJSON)
	var importErr *schema.ImportError
	if !errors.As(err, &importErr) {
		t.Fatalf("expected ImportError, got %v", err)
	}
	var paths []string
	for _, issue := range importErr.Issues {
		paths = append(paths, issue.Path)
	}
	for _, want := range []string{"experience", "projects.0.responsibilities", "summary"} {
		found := false
		for _, path := range paths {
			if path == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected issue at %q, got %v", want, paths)
		}
	}
}

func TestDecode_FieldRulesAreNotEnforced(t *testing.T) {
	doc, err := schema.Decode([]byte(`{"personalInfo": {"email": "nope"}, "summary": ""}`), schema.FormatJSON)
	if err != nil {
		t.Fatalf("decode should accept invalid field values: %v", err)
	}
	if doc.PersonalInfo.Email != "nope" {
		t.Fatalf("unexpected email %q", doc.PersonalInfo.Email)
	}
}

func TestDecode_EmptyAndMalformed(t *testing.T) {
	if _, err := schema.Decode(nil, schema.FormatYAML); err == nil {
		t.Fatalf("expected error for empty input")
	}
	if _, err := schema.Decode([]byte("{"), schema.FormatJSON); err == nil || !strings.Contains(err.Error(), "schema: parse json") {
		t.Fatalf("expected parse error, got %v", err)
	}
	if _, err := schema.Decode([]byte("{}"), schema.Format("toml")); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	doc := model.DefaultDocument()
	doc.Awards = append(doc.Awards, model.Award{Name: "Speaker 2024"})

	for _, name := range []string{"resume.json", "resume.yaml"} {
		path := filepath.Join(dir, name)
		if err := schema.Save(path, doc); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
		got, err := schema.Load(path)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if !doc.Equal(got) {
			t.Fatalf("%s: loaded document differs", name)
		}
	}

	if _, err := schema.Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestOpenAPI_DocumentSchema(t *testing.T) {
	doc, err := schema.OpenAPI()
	if err != nil {
		t.Fatalf("openapi: %v", err)
	}
	ref, ok := doc.Components.Schemas[schema.ComponentName]
	if !ok || ref.Value == nil {
		t.Fatalf("missing %s component", schema.ComponentName)
	}

	personal := ref.Value.Properties["personalInfo"].Value
	if personal == nil {
		t.Fatalf("missing personalInfo schema")
	}
	wantRequired := []string{"name", "email", "phone", "location", "title"}
	if diff := cmp.Diff(wantRequired, personal.Required); diff != "" {
		t.Fatalf("personalInfo required mismatch (-want +got):\n%s", diff)
	}
	if got := personal.Properties["email"].Value.Format; got != "email" {
		t.Fatalf("email format = %q", got)
	}
	if got := personal.Properties["linkedin"].Value.Format; got != "uri" {
		t.Fatalf("linkedin format = %q", got)
	}
	if got := personal.Properties["name"].Value.MinLength; got != 1 {
		t.Fatalf("name minLength = %d", got)
	}

	projects := ref.Value.Properties["projects"].Value
	resp := projects.Items.Value.Properties["responsibilities"].Value
	if resp.Items == nil || resp.Items.Value.MinLength != 1 {
		t.Fatalf("responsibility items should require content")
	}
}

func TestOpenAPI_ValidatesDefaultDocumentLikeFieldRules(t *testing.T) {
	doc, err := schema.OpenAPI()
	if err != nil {
		t.Fatalf("openapi: %v", err)
	}
	component := doc.Components.Schemas[schema.ComponentName].Value

	valid := model.DefaultDocument()
	valid.PersonalInfo.LinkedIn = "https://linkedin.com/in/johndoe"
	data, err := schema.Encode(valid, schema.FormatJSON)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	tree := decodeTree(t, data)
	if err := component.VisitJSON(tree, openapi3.MultiErrors()); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}

	valid.Summary = ""
	data, _ = schema.Encode(valid, schema.FormatJSON)
	if err := component.VisitJSON(decodeTree(t, data)); err == nil {
		t.Fatalf("expected empty summary to fail minLength")
	}
}

func TestMarshalOpenAPI(t *testing.T) {
	for _, format := range []schema.Format{schema.FormatJSON, schema.FormatYAML} {
		data, err := schema.MarshalOpenAPI(format)
		if err != nil {
			t.Fatalf("marshal %s: %v", format, err)
		}
		if !strings.Contains(string(data), schema.ComponentName) {
			t.Fatalf("%s output missing component name", format)
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := schema.FormatFromPath("cv.JSON"); got != schema.FormatJSON {
		t.Fatalf("FormatFromPath json = %q", got)
	}
	if got := schema.FormatFromPath("cv.yml"); got != schema.FormatYAML {
		t.Fatalf("FormatFromPath yml = %q", got)
	}
	if got, err := schema.ParseFormat(" YML "); err != nil || got != schema.FormatYAML {
		t.Fatalf("ParseFormat yml = %q, %v", got, err)
	}
	if _, err := schema.ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
}
