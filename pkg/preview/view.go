package preview

import (
	"sync"

	"golang.org/x/net/html"

	"github.com/goliatone/go-resume/pkg/model"
)

// View is the live preview: the latest rendered tree plus the viewport
// constraints currently applied to it. It is safe for concurrent use.
type View struct {
	mu          sync.RWMutex
	renderer    *Renderer
	tree        *html.Node
	doc         model.Document
	constraints Constraints
	generation  uint64
}

// NewView renders doc with renderer and applies the renderer's constraints.
func NewView(renderer *Renderer, doc model.Document) *View {
	if renderer == nil {
		renderer = NewRenderer()
	}
	v := &View{
		renderer:    renderer,
		constraints: renderer.Constraints(),
	}
	v.Update(doc)
	return v
}

// Update re-renders the tree from doc, keeping the current constraints.
// Its signature matches form listeners so a View can subscribe directly.
func (v *View) Update(doc model.Document) {
	tree := v.renderer.Render(doc)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.constraints.Apply(tree)
	v.tree = tree
	v.doc = doc.Clone()
	v.generation++
}

// Tree returns the current tree. Callers must treat it as read-only; use
// Snapshot for a private copy.
func (v *View) Tree() *html.Node {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.tree
}

// Snapshot returns a deep copy of the current tree.
func (v *View) Snapshot() *html.Node {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Clone(v.tree)
}

// Document returns a copy of the document behind the current tree.
func (v *View) Document() model.Document {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.doc.Clone()
}

// Generation counts renders, starting at one for the initial render.
func (v *View) Generation() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.generation
}

// Constraints returns the constraints applied to the tree.
func (v *View) Constraints() Constraints {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.constraints
}

// Renderer returns the renderer behind the view.
func (v *View) Renderer() *Renderer {
	return v.renderer
}

// Lift applies override until the returned function is called, which puts
// back the constraints in place before the call. The restore function may
// be called more than once.
func (v *View) Lift(override Constraints) (restore func()) {
	v.mu.Lock()
	previous := v.constraints
	v.setConstraints(override)
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			v.setConstraints(previous)
		})
	}
}

// setConstraints replaces the constraints on a fresh copy of the tree, so
// trees handed out earlier are never modified.
func (v *View) setConstraints(c Constraints) {
	v.constraints = c
	if v.tree == nil {
		return
	}
	tree := Clone(v.tree)
	c.Apply(tree)
	v.tree = tree
}
