package form

import (
	"fmt"
	"reflect"

	"github.com/goliatone/go-resume/pkg/model"
	"github.com/goliatone/go-resume/pkg/validation"
)

// Listener receives the document after each committed mutation.
type Listener func(model.Document)

type subscription struct {
	id int
	fn Listener
}

// Controller holds the authoritative document and the section UI state.
type Controller struct {
	doc       model.Document
	expanded  map[model.Section]bool
	listeners []subscription
	nextID    int
	logger    Logger
}

// New creates a controller seeded with a copy of doc. Only the personal
// information section starts expanded.
func New(doc model.Document, opts ...Option) *Controller {
	c := &Controller{
		doc:      doc.Clone(),
		expanded: map[model.Section]bool{model.SectionPersonalInfo: true},
		logger:   nopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Document returns a copy of the current document.
func (c *Controller) Document() model.Document {
	return c.doc.Clone()
}

// Errors validates the current document.
func (c *Controller) Errors() validation.Errors {
	return validation.Validate(c.doc)
}

// Value returns a copy of the value stored at path.
func (c *Controller) Value(path string) (any, bool) {
	doc := c.doc.Clone()
	target, err := resolve(reflect.ValueOf(&doc).Elem(), validation.PathSegments(path))
	if err != nil {
		return nil, false
	}
	return target.Interface(), true
}

// Len returns the length of the list at listPath, or -1 when the path does
// not address a list.
func (c *Controller) Len(listPath string) int {
	target, err := resolve(reflect.ValueOf(&c.doc).Elem(), validation.PathSegments(listPath))
	if err != nil || target.Kind() != reflect.Slice {
		return -1
	}
	return target.Len()
}

// Subscribe registers fn and returns a function that removes it. Listeners
// run synchronously, in subscription order.
func (c *Controller) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range c.listeners {
			if sub.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// Replace swaps in a copy of doc as the current document.
func (c *Controller) Replace(doc model.Document) {
	c.commit(doc.Clone())
}

// SetField replaces the value at path. value must be assignable to the
// field's type ("projects.1.responsibilities.0" takes a string,
// "experience.0" takes a model.Experience).
func (c *Controller) SetField(path string, value any) bool {
	segments := validation.PathSegments(path)
	if len(segments) == 0 {
		return c.reject("set", path, fmt.Errorf("form: empty path"))
	}
	return c.mutate("set", path, func(root reflect.Value) error {
		target, err := resolve(root, segments)
		if err != nil {
			return err
		}
		rv, err := coerce(value, target.Type())
		if err != nil {
			return err
		}
		target.Set(rv)
		return nil
	})
}

// Append adds entry at the end of the list at listPath.
func (c *Controller) Append(listPath string, entry any) bool {
	return c.mutate("append", listPath, func(root reflect.Value) error {
		list, err := resolveList(root, listPath)
		if err != nil {
			return err
		}
		rv, err := coerce(entry, list.Type().Elem())
		if err != nil {
			return err
		}
		list.Set(reflect.Append(list, rv))
		return nil
	})
}

// AppendBlank appends the empty entry used by the form's add controls.
func (c *Controller) AppendBlank(listPath string) bool {
	entry, ok := model.BlankEntry(lastField(validation.PathSegments(listPath)))
	if !ok {
		return c.reject("append", listPath, fmt.Errorf("form: %q has no blank entry", listPath))
	}
	return c.Append(listPath, entry)
}

// Remove deletes the entry at index. Indexes outside [0, len) and missing
// parents leave the document untouched.
func (c *Controller) Remove(listPath string, index int) bool {
	return c.mutate("remove", listPath, func(root reflect.Value) error {
		list, err := resolveList(root, listPath)
		if err != nil {
			return err
		}
		if index < 0 || index >= list.Len() {
			return fmt.Errorf("form: index %d out of range [0,%d)", index, list.Len())
		}
		next := reflect.MakeSlice(list.Type(), 0, list.Len()-1)
		next = reflect.AppendSlice(next, list.Slice(0, index))
		next = reflect.AppendSlice(next, list.Slice(index+1, list.Len()))
		list.Set(next)
		return nil
	})
}

// AppendExperience appends an experience entry.
func (c *Controller) AppendExperience(entry model.Experience) bool {
	return c.Append(string(model.SectionExperience), entry)
}

// AppendEducation appends an education entry.
func (c *Controller) AppendEducation(entry model.Education) bool {
	return c.Append(string(model.SectionEducation), entry)
}

// AppendSkill appends a skill category.
func (c *Controller) AppendSkill(entry model.SkillCategory) bool {
	return c.Append(string(model.SectionSkills), entry)
}

// AppendAward appends an award.
func (c *Controller) AppendAward(entry model.Award) bool {
	return c.Append(string(model.SectionAwards), entry)
}

// AppendProject appends a project.
func (c *Controller) AppendProject(entry model.Project) bool {
	return c.Append(string(model.SectionProjects), entry)
}

// AppendResponsibility appends text to the responsibilities of a project.
func (c *Controller) AppendResponsibility(project int, text string) bool {
	return c.Append(ResponsibilitiesPath(project), text)
}

// RemoveResponsibility removes one responsibility of a project. A missing
// project is a no-op.
func (c *Controller) RemoveResponsibility(project, index int) bool {
	return c.Remove(ResponsibilitiesPath(project), index)
}

// ResponsibilitiesPath returns the list path of a project's responsibilities.
func ResponsibilitiesPath(project int) string {
	return fmt.Sprintf("%s.%d.%s", model.SectionProjects, project, model.ResponsibilitiesField)
}

func resolveList(root reflect.Value, listPath string) (reflect.Value, error) {
	segments := validation.PathSegments(listPath)
	if len(segments) == 0 {
		return reflect.Value{}, fmt.Errorf("form: empty list path")
	}
	list, err := resolve(root, segments)
	if err != nil {
		return reflect.Value{}, err
	}
	if list.Kind() != reflect.Slice {
		return reflect.Value{}, fmt.Errorf("form: %q is not a list", listPath)
	}
	return list, nil
}

// mutate applies change to a copy of the document and commits it only when
// change succeeds. The result is cloned again so slices handed in by the
// caller are not shared with the committed document.
func (c *Controller) mutate(op, path string, change func(root reflect.Value) error) bool {
	next := c.doc.Clone()
	if err := change(reflect.ValueOf(&next).Elem()); err != nil {
		return c.reject(op, path, err)
	}
	c.commit(next.Clone())
	return true
}

func (c *Controller) reject(op, path string, err error) bool {
	c.logger.Debugf("form: %s %q ignored: %v", op, path, err)
	return false
}

func (c *Controller) commit(next model.Document) {
	c.doc = next
	listeners := append([]subscription(nil), c.listeners...)
	for _, sub := range listeners {
		sub.fn(c.doc.Clone())
	}
}
