package validation

import (
	"strconv"
	"strings"
)

// NormalizePath converts validator namespaces, JSON pointers and bracket
// paths into the dotted form used by the form controller:
//
//	"/experience/0/company"      -> "experience.0.company"
//	"projects[1].responsibilities[0]" -> "projects.1.responsibilities.0"
//	"$.personalInfo.email"       -> "personalInfo.email"
func NormalizePath(path string) string {
	return strings.Join(PathSegments(path), ".")
}

// PathSegments splits a path in any supported notation into its segments.
func PathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	if clean == "" {
		return nil
	}
	clean = strings.TrimPrefix(clean, "#/")
	clean = strings.TrimPrefix(clean, "$.")
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = strings.TrimPrefix(clean, "#")
		clean = strings.TrimPrefix(clean, "/")
		clean = strings.TrimPrefix(clean, ".")
		clean = strings.TrimPrefix(clean, "$")
	}

	replacer := strings.NewReplacer("[", ".", "]", "")
	clean = replacer.Replace(clean)

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Pattern replaces numeric segments with "*" so per-element rules share one
// message entry ("experience.3.company" -> "experience.*.company").
func Pattern(path string) string {
	segments := PathSegments(path)
	for i, segment := range segments {
		if isIndex(segment) {
			segments[i] = "*"
		}
	}
	return strings.Join(segments, ".")
}

func isIndex(segment string) bool {
	if segment == "" {
		return false
	}
	_, err := strconv.Atoi(segment)
	return err == nil
}
