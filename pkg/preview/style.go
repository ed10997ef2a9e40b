package preview

import (
	"strings"

	"golang.org/x/net/html"
)

type declaration struct {
	property, value string
}

func parseStyle(style string) []declaration {
	var out []declaration
	for _, part := range strings.Split(style, ";") {
		property, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		property = strings.ToLower(strings.TrimSpace(property))
		value = strings.TrimSpace(value)
		if property == "" {
			continue
		}
		out = append(out, declaration{property: property, value: value})
	}
	return out
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, decl := range decls {
		parts = append(parts, decl.property+": "+decl.value)
	}
	return strings.Join(parts, "; ")
}

// StyleProperty reads one inline style property of node.
func StyleProperty(node *html.Node, property string) string {
	style, _ := Attr(node, "style")
	property = strings.ToLower(strings.TrimSpace(property))
	for _, decl := range parseStyle(style) {
		if decl.property == property {
			return decl.value
		}
	}
	return ""
}

// SetStyleProperty writes one inline style property, keeping the position of
// an existing declaration. An empty value removes the property.
func SetStyleProperty(node *html.Node, property, value string) {
	if node == nil {
		return
	}
	style, _ := Attr(node, "style")
	property = strings.ToLower(strings.TrimSpace(property))
	value = strings.TrimSpace(value)

	decls := parseStyle(style)
	out := decls[:0]
	found := false
	for _, decl := range decls {
		if decl.property != property {
			out = append(out, decl)
			continue
		}
		found = true
		if value != "" {
			out = append(out, declaration{property: property, value: value})
		}
	}
	if !found && value != "" {
		out = append(out, declaration{property: property, value: value})
	}

	if len(out) == 0 {
		removeAttr(node, "style")
		return
	}
	setAttr(node, "style", formatStyle(out))
}
