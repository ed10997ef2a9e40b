package model

// DefaultDocument returns the illustrative document shown at startup. The
// profile link is deliberately scheme-less so the advisory URL check has
// something to report on first render.
func DefaultDocument() Document {
	return Document{
		PersonalInfo: PersonalInfo{
			Name:     "John Doe",
			Email:    "john.doe@example.com",
			Phone:    "+1 (555) 123-4567",
			Location: "San Francisco, CA",
			LinkedIn: "linkedin.com/in/johndoe",
			Title:    "Senior Software Engineer",
		},
		Summary: "Experienced software engineer with a strong background in full-stack development and cloud architecture. Passionate about creating scalable and efficient solutions.",
		Experience: []Experience{
			{
				Company:     "Tech Corp",
				Position:    "Senior Software Engineer",
				StartDate:   "2020-01",
				EndDate:     "2023-12",
				Description: "Led development of microservices architecture. Implemented CI/CD pipelines. Mentored junior developers.",
			},
			{
				Company:     "StartUp Inc",
				Position:    "Software Engineer",
				StartDate:   "2018-06",
				EndDate:     "2019-12",
				Description: "Developed and maintained web applications. Collaborated with cross-functional teams.",
			},
		},
		Education: []Education{
			{
				Institution: "University of Technology",
				Degree:      "Bachelor of Science in Computer Science",
				StartDate:   "2014-09",
				EndDate:     "2018-05",
			},
		},
		Skills: []SkillCategory{
			{Category: "Programming Languages", List: "JavaScript, TypeScript, Python, Java"},
			{Category: "Frontend", List: "React, Vue.js, HTML5, CSS3, Tailwind CSS"},
			{Category: "Backend", List: "Node.js, Express, Django, Spring Boot"},
			{Category: "Database", List: "MongoDB, PostgreSQL, MySQL, Redis"},
			{Category: "DevOps", List: "Docker, Kubernetes, AWS, CI/CD"},
		},
		Awards: []Award{
			{Name: "Best Employee Award 2022"},
			{Name: "Innovation Excellence Award 2021"},
			{Name: "Technical Excellence Award 2020"},
		},
		Projects: []Project{
			{
				Name:         "E-commerce Platform",
				Role:         "Lead Developer",
				Technologies: "React, Node.js, MongoDB",
				Overview:     "Built a scalable e-commerce platform serving 100k+ users",
				Responsibilities: []string{
					"Architected the system using microservices",
					"Implemented real-time inventory management",
					"Optimized database queries for better performance",
				},
			},
			{
				Name:         "Cloud Migration Project",
				Role:         "Technical Lead",
				Technologies: "AWS, Docker, Kubernetes",
				Overview:     "Led migration of legacy systems to cloud infrastructure",
				Responsibilities: []string{
					"Designed cloud architecture",
					"Implemented containerization strategy",
					"Reduced operational costs by 40%",
				},
			},
		},
	}
}

// BlankEntry returns the empty entry the "add" controls insert for a list.
// list is a repeatable section name or ResponsibilitiesField.
func BlankEntry(list string) (any, bool) {
	switch list {
	case string(SectionExperience):
		return Experience{}, true
	case string(SectionEducation):
		return Education{}, true
	case string(SectionSkills):
		return SkillCategory{}, true
	case string(SectionAwards):
		return Award{}, true
	case string(SectionProjects):
		return Project{Responsibilities: []string{""}}, true
	case ResponsibilitiesField:
		return "", true
	default:
		return nil, false
	}
}
