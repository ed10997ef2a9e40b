package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-resume/pkg/model"
	"github.com/goliatone/go-resume/pkg/validation"
)

// Issue is a structural problem found while importing a document.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// ImportError collects the structural issues of a rejected document.
type ImportError struct {
	Issues []Issue
}

func (e *ImportError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "schema: invalid document"
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, issue.Path+": "+issue.Message)
	}
	return "schema: invalid document: " + strings.Join(parts, "; ")
}

var structural = sync.OnceValues(func() (*openapi3.SchemaRef, error) {
	return documentSchema(false)
})

// Decode parses data in the given format, checks it against the structural
// schema and returns the document.
func Decode(data []byte, format Format) (model.Document, error) {
	var tree any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &tree); err != nil {
			return model.Document{}, fmt.Errorf("schema: parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return model.Document{}, fmt.Errorf("schema: parse yaml: %w", err)
		}
	default:
		return model.Document{}, fmt.Errorf("schema: unsupported format %q", format)
	}

	tree = normalizeTree(tree)
	if tree == nil {
		return model.Document{}, &ImportError{Issues: []Issue{{Message: "document is empty"}}}
	}

	ref, err := structural()
	if err != nil {
		return model.Document{}, err
	}
	if err := ref.Value.VisitJSON(tree, openapi3.MultiErrors()); err != nil {
		return model.Document{}, importError(err)
	}

	raw, err := json.Marshal(tree)
	if err != nil {
		return model.Document{}, fmt.Errorf("schema: re-encode document: %w", err)
	}
	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Document{}, fmt.Errorf("schema: decode document: %w", err)
	}
	return doc, nil
}

// Encode serialises doc in the given format.
func Encode(doc model.Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("schema: encode json: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("schema: encode yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("schema: unsupported format %q", format)
	}
}

// Load reads a document file, inferring the format from its extension.
func Load(path string) (model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return Decode(data, FormatFromPath(path))
}

// Save writes doc to path, inferring the format from its extension.
func Save(path string, doc model.Document) error {
	data, err := Encode(doc, FormatFromPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("schema: write %s: %w", path, err)
	}
	return nil
}

func importError(err error) error {
	issues := collectIssues(nil, err)
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Path < issues[j].Path
	})
	return &ImportError{Issues: issues}
}

// collectIssues flattens nested multi errors into issues.
func collectIssues(issues []Issue, err error) []Issue {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		for _, item := range multi {
			issues = collectIssues(issues, item)
		}
		return issues
	}
	return append(issues, issueFrom(err))
}

func issueFrom(err error) Issue {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return Issue{
			Path:    validation.NormalizePath(strings.Join(schemaErr.JSONPointer(), ".")),
			Message: schemaErr.Reason,
		}
	}
	return Issue{Message: err.Error()}
}

// normalizeTree drops nulls (treated as absent) and turns YAML timestamps
// back into the date strings the model stores.
func normalizeTree(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			if item == nil {
				continue
			}
			out[key] = normalizeTree(item)
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, normalizeTree(item))
		}
		return out
	case time.Time:
		if typed.Hour() == 0 && typed.Minute() == 0 && typed.Second() == 0 {
			return typed.Format("2006-01-02")
		}
		return typed.Format(time.RFC3339)
	default:
		return typed
	}
}
