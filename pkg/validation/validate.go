package validation

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-resume/pkg/model"
)

// Errors maps dotted field paths to their display message. An empty map
// means the document is valid.
type Errors map[string]string

// Valid reports whether there are no errors.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// For returns the message attached to path, or "".
func (e Errors) For(path string) string {
	if len(e) == 0 {
		return ""
	}
	return e[NormalizePath(path)]
}

// Paths lists the failing paths in sorted order.
func (e Errors) Paths() []string {
	paths := make([]string, 0, len(e))
	for path := range e {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Under returns the subset of errors rooted at prefix ("experience.1").
func (e Errors) Under(prefix string) Errors {
	prefix = NormalizePath(prefix)
	out := Errors{}
	for path, msg := range e {
		if path == prefix || strings.HasPrefix(path, prefix+".") {
			out[path] = msg
		}
	}
	return out
}

var engine = sync.OnceValue(newValidator)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(JSONName)
	return v
}

// JSONName resolves the json name of a struct field, used both for error
// namespaces and for schema generation.
func JSONName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// Validate evaluates every field rule of doc.
func Validate(doc model.Document) Errors {
	out := Errors{}

	err := engine().Struct(doc)
	if err == nil {
		return out
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError only happens for non-struct input.
		out[""] = err.Error()
		return out
	}

	for _, fieldErr := range fieldErrs {
		path := namespacePath(fieldErr.Namespace())
		if path == "" {
			continue
		}
		if _, exists := out[path]; exists {
			continue
		}
		out[path] = Message(path, fieldErr.Tag())
	}
	return out
}

// namespacePath drops the root struct name from a validator namespace
// ("Document.experience[0].company") and normalises the rest.
func namespacePath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return ""
	}
	return NormalizePath(rest)
}
