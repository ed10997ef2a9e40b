package preview

import (
	"sort"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-resume/pkg/model"
)

const (
	rootClass  = "resume-template"
	logoClass  = "resume-logo"
	entryClass = "entry"
)

// Renderer turns documents into visual trees.
type Renderer struct {
	logoSrc     string
	logoAlt     string
	theme       *theme.RendererConfig
	constraints Constraints
}

// NewRenderer builds a Renderer with the on-screen constraints.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		constraints: DefaultConstraints(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Constraints returns the constraints Render applies.
func (r *Renderer) Constraints() Constraints {
	return r.constraints
}

// Theme returns the configured theme, if any.
func (r *Renderer) Theme() *theme.RendererConfig {
	return r.theme
}

// Render projects doc into a new tree rooted at div.resume-template.
func (r *Renderer) Render(doc model.Document) *html.Node {
	root := el(atom.Div, rootClass)
	if style := r.themeStyle(); style != "" {
		setAttr(root, "style", style)
	}

	body := el(atom.Div, "resume-body",
		r.header(doc.PersonalInfo),
		r.summary(doc.Summary),
		r.experience(doc.Experience),
		r.education(doc.Education),
		r.skills(doc.Skills),
		r.awards(doc.Awards),
		r.projects(doc.Projects),
	)
	root.AppendChild(body)

	r.constraints.Apply(root)
	return root
}

// clean keeps user text verbatim. Text nodes are escaped on serialisation.
func (r *Renderer) clean(value string) *html.Node {
	return text(value)
}

func (r *Renderer) para(class, value string) *html.Node {
	return el(atom.P, class, r.clean(value))
}

func (r *Renderer) header(info model.PersonalInfo) *html.Node {
	identity := el(atom.Div, "identity",
		el(atom.H1, "name", r.clean(info.Name)),
		r.para("location", info.Location),
		r.para("title", info.Title),
		el(atom.Div, "contact",
			r.para("email", info.Email),
			r.para("phone", info.Phone),
		),
	)
	header := withAttrs(el(atom.Div, "resume-header section", identity),
		attr{"data-section", string(model.SectionPersonalInfo)})
	if r.logoSrc != "" {
		header.AppendChild(withAttrs(el(atom.Img, logoClass),
			attr{"src", r.logoSrc},
			attr{"alt", r.logoAlt},
		))
	}
	return header
}

func section(name model.Section, children ...*html.Node) *html.Node {
	node := withAttrs(el(atom.Div, "section"), attr{"data-section", string(name)})
	node.AppendChild(el(atom.H2, "section-title", text(name.Heading())))
	for _, child := range children {
		node.AppendChild(child)
	}
	return node
}

func entry(tag atom.Atom, class string, index int, children ...*html.Node) *html.Node {
	if class != "" {
		class = entryClass + " " + class
	} else {
		class = entryClass
	}
	node := withAttrs(el(tag, class, children...), attr{"data-index", strconv.Itoa(index)})
	return node
}

func (r *Renderer) dates(start, end string) *html.Node {
	return el(atom.P, "dates", r.clean(start+" - "+end))
}

func (r *Renderer) summary(value string) *html.Node {
	return section(model.SectionSummary, r.para("summary", value))
}

func (r *Renderer) experience(list []model.Experience) *html.Node {
	node := section(model.SectionExperience)
	for i, item := range list {
		node.AppendChild(entry(atom.Div, "", i,
			el(atom.Div, "entry-head",
				el(atom.Div, "",
					el(atom.H3, "entry-title", r.clean(item.Position)),
					r.para("entry-subtitle", item.Company),
				),
				r.dates(item.StartDate, item.EndDate),
			),
			r.para("description", item.Description),
		))
	}
	return node
}

func (r *Renderer) education(list []model.Education) *html.Node {
	node := section(model.SectionEducation)
	for i, item := range list {
		node.AppendChild(entry(atom.Div, "", i,
			el(atom.H3, "entry-title", r.clean(item.Degree)),
			r.para("entry-subtitle", item.Institution),
			r.dates(item.StartDate, item.EndDate),
		))
	}
	return node
}

func (r *Renderer) skills(list []model.SkillCategory) *html.Node {
	group := el(atom.Div, "skills")
	for i, item := range list {
		group.AppendChild(entry(atom.Div, "", i,
			r.para("label", item.Category),
			r.para("value", item.List),
		))
	}
	return section(model.SectionSkills, group)
}

func (r *Renderer) awards(list []model.Award) *html.Node {
	items := el(atom.Ul, "awards")
	for i, item := range list {
		items.AppendChild(entry(atom.Li, "", i, r.clean(item.Name)))
	}
	return section(model.SectionAwards, items)
}

func (r *Renderer) projects(list []model.Project) *html.Node {
	node := section(model.SectionProjects)
	for i, item := range list {
		responsibilities := el(atom.Ul, "responsibilities")
		for j, line := range item.Responsibilities {
			responsibilities.AppendChild(withAttrs(el(atom.Li, "", r.clean(line)),
				attr{"data-index", strconv.Itoa(j)}))
		}
		card := el(atom.Div, "project-card",
			el(atom.Div, "project-grid",
				r.field("Project", item.Name),
				r.field("Role", item.Role),
				r.field("Technologies Used", item.Technologies),
			),
			r.field("Overview", item.Overview),
			el(atom.Div, "field",
				el(atom.P, "label", text("Responsibilities")),
				responsibilities,
			),
		)
		node.AppendChild(entry(atom.Div, "project", i, card))
	}
	return node
}

func (r *Renderer) field(label, value string) *html.Node {
	return el(atom.Div, "field",
		el(atom.P, "label", text(label)),
		r.para("value", value),
	)
}

// themeStyle lists the theme's CSS variables sorted by name.
func (r *Renderer) themeStyle() string {
	if r.theme == nil || len(r.theme.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(r.theme.CSSVars))
	for key := range r.theme.CSSVars {
		if strings.TrimSpace(key) != "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	decls := make([]declaration, 0, len(keys))
	for _, key := range keys {
		decls = append(decls, declaration{property: strings.ToLower(strings.TrimSpace(key)), value: strings.TrimSpace(r.theme.CSSVars[key])})
	}
	return formatStyle(decls)
}
