package templates_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-resume/internal/templates"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"greeting.html":      {Data: []byte(`{% include "partials/name.html" %} from {{ site }}`)},
		"partials/name.html": {Data: []byte(`Hello {{ person.name }}`)},
		"shout.html":         {Data: []byte(`{{ word|shout }}`)},
		"list.txt":           {Data: []byte(`{% for s in skills %}{{ s.label }};{% endfor %}`)},
	}
}

type person struct {
	Name string `json:"name"`
}

func TestEngine_RenderUsesJSONNames(t *testing.T) {
	engine, err := templates.New(
		templates.WithFS(testFS()),
		templates.WithGlobals(map[string]any{"site": "resume"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	var buf bytes.Buffer
	out, err := engine.Render("greeting", map[string]any{"person": person{Name: "Ada"}}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello Ada from resume" {
		t.Fatalf("output = %q", out)
	}
	if buf.String() != out {
		t.Fatalf("writer received %q", buf.String())
	}
}

func TestEngine_Extension(t *testing.T) {
	engine, err := templates.New(templates.WithFS(testFS()), templates.WithExtension("txt"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	data := struct {
		Skills []map[string]string `json:"skills"`
	}{Skills: []map[string]string{{"label": "Go"}, {"label": "SQL"}}}

	out, err := engine.Render("list", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Go;SQL;" {
		t.Fatalf("output = %q", out)
	}
}

func TestEngine_Filter(t *testing.T) {
	engine, err := templates.New(
		templates.WithFS(testFS()),
		templates.WithFilter("shout", func(input any, _ any) (any, error) {
			s, _ := input.(string)
			return strings.ToUpper(s) + "!", nil
		}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	out, err := engine.Render("shout", map[string]any{"word": "ship"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "SHIP!" {
		t.Fatalf("output = %q", out)
	}
}

func TestEngine_BaseDirOverridesFS(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "greeting.html"), []byte("Custom {{ person.name }}"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	engine, err := templates.New(templates.WithBaseDir(dir), templates.WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	out, err := engine.Render("greeting", map[string]any{"person": map[string]any{"name": "Ada"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Custom Ada" {
		t.Fatalf("output = %q", out)
	}
}

func TestEngine_Errors(t *testing.T) {
	if _, err := templates.New(); err == nil {
		t.Fatalf("expected error without a template source")
	}
	engine, err := templates.New(templates.WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.Render("missing", nil); err == nil {
		t.Fatalf("expected error for a missing template")
	}
	var nilEngine *templates.Engine
	if _, err := nilEngine.Render("greeting", nil); err == nil {
		t.Fatalf("expected error for a nil engine")
	}
}

func TestEngine_WholeNumbersPrintAsIntegers(t *testing.T) {
	engine, err := templates.New(templates.WithFS(fstest.MapFS{
		"count.html": {Data: []byte(`{{ count }}|{% if zero %}yes{% else %}no{% endif %}|{{ ratio }}|{% for e in entries %}{{ e.index }}{% endfor %}`)},
	}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	data := struct {
		Count   int     `json:"count"`
		Zero    int     `json:"zero"`
		Ratio   float64 `json:"ratio"`
		Entries []struct {
			Index int `json:"index"`
		} `json:"entries"`
	}{Count: 3, Ratio: 0.5, Entries: []struct {
		Index int `json:"index"`
	}{{Index: 0}, {Index: 1}}}

	out, err := engine.Render("count", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "3|no|0.500000|01" {
		t.Fatalf("output = %q", out)
	}
}
