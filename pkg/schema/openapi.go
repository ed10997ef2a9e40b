package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-resume/pkg/model"
	"github.com/goliatone/go-resume/pkg/validation"
)

// ComponentName is the key of the document schema under components/schemas.
const ComponentName = "ResumeDocument"

// OpenAPI builds an OpenAPI 3 document whose components carry the resume
// schema, including the field rules declared on the model.
func OpenAPI() (*openapi3.T, error) {
	ref, err := documentSchema(true)
	if err != nil {
		return nil, err
	}

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Resume document",
			Description: "Structured resume data edited by the resume builder.",
			Version:     "1.0.0",
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{ComponentName: ref},
		},
	}, nil
}

// MarshalOpenAPI renders the OpenAPI document in the requested format.
func MarshalOpenAPI(format Format) ([]byte, error) {
	doc, err := OpenAPI()
	if err != nil {
		return nil, err
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: marshal openapi: %w", err)
	}
	if format == FormatJSON {
		return raw, nil
	}

	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("schema: convert openapi: %w", err)
	}
	out, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("schema: marshal openapi yaml: %w", err)
	}
	return out, nil
}

// documentSchema generates the component schema from the Go model. With rules
// enabled, validate tags become required/minLength/format constraints;
// without them only the structure (types and nesting) is described.
func documentSchema(rules bool) (*openapi3.SchemaRef, error) {
	var opts []openapi3gen.Option
	if rules {
		opts = append(opts, openapi3gen.SchemaCustomizer(applyFieldRules))
	}
	ref, err := openapi3gen.NewSchemaRefForValue(model.Document{}, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("schema: generate document schema: %w", err)
	}
	return ref, nil
}

func applyFieldRules(_ string, t reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
	if schema == nil {
		return nil
	}

	if t.Kind() == reflect.Struct {
		schema.Required = requiredProperties(t)
		return nil
	}

	own, items := splitRules(tag.Get("validate"))
	switch t.Kind() {
	case reflect.String:
		applyStringRules(schema, own)
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String && schema.Items != nil && schema.Items.Value != nil {
			applyStringRules(schema.Items.Value, items)
		}
	}
	return nil
}

func applyStringRules(schema *openapi3.Schema, rules []string) {
	for _, rule := range rules {
		switch rule {
		case "required":
			schema.MinLength = 1
		case "email":
			schema.Format = "email"
		case "url":
			schema.Format = "uri"
		}
	}
}

// requiredProperties lists every property that is not marked omitempty.
func requiredProperties(t reflect.Type) []string {
	var out []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := validation.JSONName(field)
		if name == "" {
			continue
		}
		own, _ := splitRules(field.Tag.Get("validate"))
		if contains(own, "omitempty") {
			continue
		}
		out = append(out, name)
	}
	return out
}

// splitRules separates the rules applying to a field from those applying to
// its elements (after "dive").
func splitRules(tag string) (own, items []string) {
	if strings.TrimSpace(tag) == "" {
		return nil, nil
	}
	target := &own
	for _, rule := range strings.Split(tag, ",") {
		rule = strings.TrimSpace(rule)
		if rule == "dive" {
			target = &items
			continue
		}
		if rule != "" {
			*target = append(*target, rule)
		}
	}
	return own, items
}

func contains(values []string, needle string) bool {
	for _, value := range values {
		if value == needle {
			return true
		}
	}
	return false
}
