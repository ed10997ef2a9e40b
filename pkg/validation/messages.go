package validation

import "strings"

var messages = map[string]string{
	"personalInfo.name":     "Name is required",
	"personalInfo.email":    "Invalid email",
	"personalInfo.phone":    "Phone is required",
	"personalInfo.location": "Location is required",
	"personalInfo.linkedin": "Invalid LinkedIn URL",
	"personalInfo.title":    "Title is required",
	"summary":               "Summary is required",

	"experience.*.company":     "Company name is required",
	"experience.*.position":    "Position is required",
	"experience.*.startDate":   "Start date is required",
	"experience.*.endDate":     "End date is required",
	"experience.*.description": "Description is required",

	"education.*.institution": "Institution name is required",
	"education.*.degree":      "Degree is required",
	"education.*.startDate":   "Start date is required",
	"education.*.endDate":     "End date is required",

	"skills.*.category": "Category is required",
	"skills.*.list":     "List of skills is required",

	"awards.*.name": "Award cannot be empty",

	"projects.*.name":               "Project name is required",
	"projects.*.role":               "Role is required",
	"projects.*.technologies":       "Technologies are required",
	"projects.*.overview":           "Overview is required",
	"projects.*.responsibilities.*": "Responsibility cannot be empty",
}

// Message returns the display message for a failed rule at path.
func Message(path, tag string) string {
	if msg, ok := messages[Pattern(path)]; ok {
		return msg
	}

	segments := PathSegments(path)
	field := "Field"
	for i := len(segments) - 1; i >= 0; i-- {
		if !isIndex(segments[i]) {
			field = segments[i]
			break
		}
	}

	switch tag {
	case "required":
		return field + " is required"
	case "email":
		return "Invalid email"
	case "url":
		return "Invalid URL"
	default:
		return strings.TrimSpace(field + " is invalid")
	}
}
