package model

import "strings"

// Section names a top-level group of the document. The values double as the
// first segment of field paths.
type Section string

const (
	SectionPersonalInfo Section = "personalInfo"
	SectionSummary      Section = "summary"
	SectionExperience   Section = "experience"
	SectionEducation    Section = "education"
	SectionSkills       Section = "skills"
	SectionAwards       Section = "awards"
	SectionProjects     Section = "projects"
)

// ResponsibilitiesField is the nested list inside a project entry.
const ResponsibilitiesField = "responsibilities"

var sectionOrder = []Section{
	SectionPersonalInfo,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionAwards,
	SectionProjects,
}

var sectionTitles = map[Section]string{
	SectionPersonalInfo: "Personal Information",
	SectionSummary:      "Professional Summary",
	SectionExperience:   "Experience",
	SectionEducation:    "Education",
	SectionSkills:       "Skills",
	SectionAwards:       "Awards & Certifications",
	SectionProjects:     "Projects",
}

// Sections lists every section in form order.
func Sections() []Section {
	return append([]Section(nil), sectionOrder...)
}

// ParseSection resolves a section name, ignoring surrounding whitespace. The
// result is the catalogue constant, never the caller's string.
func ParseSection(name string) (Section, bool) {
	candidate := strings.TrimSpace(name)
	for _, section := range sectionOrder {
		if string(section) == candidate {
			return section, true
		}
	}
	return "", false
}

// Title is the label shown on the form.
func (s Section) Title() string {
	if title, ok := sectionTitles[s]; ok {
		return title
	}
	return string(s)
}

// Heading is the label shown on the preview.
func (s Section) Heading() string {
	if s == SectionSummary {
		return "Profile"
	}
	return s.Title()
}

// Repeatable reports whether the section holds a list of entries.
func (s Section) Repeatable() bool {
	switch s {
	case SectionExperience, SectionEducation, SectionSkills, SectionAwards, SectionProjects:
		return true
	default:
		return false
	}
}

func (s Section) String() string {
	return string(s)
}
