// Package testsupport holds helpers shared by package tests: golden files
// gated by UPDATE_GOLDENS and document fixtures.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-resume/pkg/model"
	"github.com/goliatone/go-resume/pkg/schema"
)

// LoadDocument reads a JSON or YAML document fixture.
func LoadDocument(t *testing.T, path string) model.Document {
	t.Helper()

	doc, err := schema.Load(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// ValidDocument is the default document with an absolute profile link, so it
// passes every field rule.
func ValidDocument() model.Document {
	doc := model.DefaultDocument()
	doc.PersonalInfo.LinkedIn = "https://linkedin.com/in/johndoe"
	return doc
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a context cancelled when the test ends.
func Context(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
