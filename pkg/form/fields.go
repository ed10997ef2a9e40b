package form

import "github.com/goliatone/go-resume/pkg/model"

// Field describes one editable input. Key is relative to the section, or to
// an entry for repeatable sections.
type Field struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Multiline bool   `json:"multiline,omitempty"`
}

var sectionFields = map[model.Section][]Field{
	model.SectionPersonalInfo: {
		{Key: "name", Label: "Full Name"},
		{Key: "email", Label: "Email"},
		{Key: "phone", Label: "Phone"},
		{Key: "location", Label: "Location"},
		{Key: "linkedin", Label: "LinkedIn"},
		{Key: "title", Label: "Professional Title"},
	},
	model.SectionExperience: {
		{Key: "company", Label: "Company"},
		{Key: "position", Label: "Position"},
		{Key: "startDate", Label: "Start Date"},
		{Key: "endDate", Label: "End Date"},
		{Key: "description", Label: "Description", Multiline: true},
	},
	model.SectionEducation: {
		{Key: "institution", Label: "Institution"},
		{Key: "degree", Label: "Degree"},
		{Key: "startDate", Label: "Start Date"},
		{Key: "endDate", Label: "End Date"},
	},
	model.SectionSkills: {
		{Key: "category", Label: "Category"},
		{Key: "list", Label: "Skills"},
	},
	model.SectionAwards: {
		{Key: "name", Label: "Award"},
	},
	model.SectionProjects: {
		{Key: "name", Label: "Project Name"},
		{Key: "role", Label: "Role"},
		{Key: "technologies", Label: "Technologies Used"},
		{Key: "overview", Label: "Overview", Multiline: true},
	},
}

// Fields lists the inputs of a section in display order. The summary
// section is a single multi-line field addressed by the section name, so it
// has no sub-fields. A project's responsibilities are edited as a list and
// are not included.
func Fields(section model.Section) []Field {
	return append([]Field(nil), sectionFields[section]...)
}

// SummaryField is the input of the summary section.
func SummaryField() Field {
	return Field{Key: string(model.SectionSummary), Label: model.SectionSummary.Title(), Multiline: true}
}
