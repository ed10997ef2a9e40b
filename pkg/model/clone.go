package model

import "slices"

// Clone returns a deep copy of the document. Nil lists stay nil.
func (d Document) Clone() Document {
	out := d
	out.Experience = slices.Clone(d.Experience)
	out.Education = slices.Clone(d.Education)
	out.Skills = slices.Clone(d.Skills)
	out.Awards = slices.Clone(d.Awards)
	if d.Projects != nil {
		out.Projects = make([]Project, len(d.Projects))
		for i, project := range d.Projects {
			out.Projects[i] = project.Clone()
		}
	}
	return out
}

// Clone returns a copy of the project with its own responsibilities slice.
func (p Project) Clone() Project {
	out := p
	out.Responsibilities = slices.Clone(p.Responsibilities)
	return out
}

// Equal reports value equality. Nil and empty lists compare equal.
func (d Document) Equal(other Document) bool {
	return d.PersonalInfo == other.PersonalInfo &&
		d.Summary == other.Summary &&
		slices.Equal(d.Experience, other.Experience) &&
		slices.Equal(d.Education, other.Education) &&
		slices.Equal(d.Skills, other.Skills) &&
		slices.Equal(d.Awards, other.Awards) &&
		slices.EqualFunc(d.Projects, other.Projects, Project.Equal)
}

// Equal reports value equality between two projects.
func (p Project) Equal(other Project) bool {
	return p.Name == other.Name &&
		p.Role == other.Role &&
		p.Technologies == other.Technologies &&
		p.Overview == other.Overview &&
		slices.Equal(p.Responsibilities, other.Responsibilities)
}
