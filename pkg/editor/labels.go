package editor

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-resume/pkg/model"
)

// entryLabel names an entry in menus.
func entryLabel(doc model.Document, section model.Section, index int) string {
	var label string
	switch section {
	case model.SectionExperience:
		e := doc.Experience[index]
		label = joinNonEmpty(" at ", e.Position, e.Company)
	case model.SectionEducation:
		e := doc.Education[index]
		label = joinNonEmpty(", ", e.Degree, e.Institution)
	case model.SectionSkills:
		label = doc.Skills[index].Category
	case model.SectionAwards:
		label = doc.Awards[index].Name
	case model.SectionProjects:
		label = doc.Projects[index].Name
	}
	if strings.TrimSpace(label) == "" {
		label = "(untitled)"
	}
	return fmt.Sprintf("%d. %s", index+1, label)
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// preview shortens a value for a menu line.
func preview(value string) string {
	value = strings.Join(strings.Fields(value), " ")
	const limit = 40
	if r := []rune(value); len(r) > limit {
		return string(r[:limit-3]) + "..."
	}
	return value
}
