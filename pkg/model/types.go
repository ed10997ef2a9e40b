package model

// PersonalInfo holds the header block of the resume.
type PersonalInfo struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	Email    string `json:"email" yaml:"email" validate:"required,email"`
	Phone    string `json:"phone" yaml:"phone" validate:"required"`
	Location string `json:"location" yaml:"location" validate:"required"`
	// LinkedIn is optional: empty, or an absolute URL.
	LinkedIn string `json:"linkedin" yaml:"linkedin" validate:"omitempty,url"`
	Title    string `json:"title" yaml:"title" validate:"required"`
}

// Experience is one employment entry.
type Experience struct {
	Company     string `json:"company" yaml:"company" validate:"required"`
	Position    string `json:"position" yaml:"position" validate:"required"`
	StartDate   string `json:"startDate" yaml:"startDate" validate:"required"`
	EndDate     string `json:"endDate" yaml:"endDate" validate:"required"`
	Description string `json:"description" yaml:"description" validate:"required"`
}

// Education is one education entry.
type Education struct {
	Institution string `json:"institution" yaml:"institution" validate:"required"`
	Degree      string `json:"degree" yaml:"degree" validate:"required"`
	StartDate   string `json:"startDate" yaml:"startDate" validate:"required"`
	EndDate     string `json:"endDate" yaml:"endDate" validate:"required"`
}

// SkillCategory groups a comma separated skill list under a heading.
type SkillCategory struct {
	Category string `json:"category" yaml:"category" validate:"required"`
	List     string `json:"list" yaml:"list" validate:"required"`
}

// Award is a single award or certification line.
type Award struct {
	Name string `json:"name" yaml:"name" validate:"required"`
}

// Project describes a project and the responsibilities held on it. The
// responsibilities list may be empty, but every entry must be non-empty.
type Project struct {
	Name             string   `json:"name" yaml:"name" validate:"required"`
	Role             string   `json:"role" yaml:"role" validate:"required"`
	Technologies     string   `json:"technologies" yaml:"technologies" validate:"required"`
	Overview         string   `json:"overview" yaml:"overview" validate:"required"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities" validate:"dive,required"`
}

// Document is the complete resume record.
type Document struct {
	PersonalInfo PersonalInfo    `json:"personalInfo" yaml:"personalInfo"`
	Summary      string          `json:"summary" yaml:"summary" validate:"required"`
	Experience   []Experience    `json:"experience" yaml:"experience" validate:"dive"`
	Education    []Education     `json:"education" yaml:"education" validate:"dive"`
	Skills       []SkillCategory `json:"skills" yaml:"skills" validate:"dive"`
	Awards       []Award         `json:"awards" yaml:"awards" validate:"dive"`
	Projects     []Project       `json:"projects" yaml:"projects" validate:"dive"`
}
