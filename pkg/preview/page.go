package preview

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/goliatone/go-resume/internal/templates"
)

//go:embed templates/*.html
var embedded embed.FS

// Templates exposes the embedded page templates.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(fmt.Sprintf("preview: embedded templates: %v", err))
	}
	return sub
}

var pageEngine = sync.OnceValues(func() (*templates.Engine, error) {
	return templates.New(templates.WithName("preview"), templates.WithFS(Templates()))
})

// fragmentPolicy admits the markup the renderer emits: layout elements,
// class, style and data-* attributes and the logo image.
var fragmentPolicy = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class", "style").Globally()
	p.AllowDataAttributes()
	p.AllowDataURIImages()
	return p
})

// Fragment serialises tree and sanitises the result for pages that insert it
// as raw markup.
func Fragment(tree *html.Node) (string, error) {
	raw, err := Serialize(tree)
	if err != nil {
		return "", err
	}
	return fragmentPolicy().Sanitize(string(raw)), nil
}

// PageData describes the shell wrapped around a tree by Page.
type PageData struct {
	Title string
	// Print selects the print stylesheet (no page chrome, A4 sizing).
	Print bool
}

// Page renders tree inside a complete HTML document with the preview
// stylesheet. Theme variables already live on the tree's root element.
func Page(tree *html.Node, data PageData) ([]byte, error) {
	fragment, err := Fragment(tree)
	if err != nil {
		return nil, err
	}
	engine, err := pageEngine()
	if err != nil {
		return nil, fmt.Errorf("preview: page engine: %w", err)
	}
	title := strings.TrimSpace(data.Title)
	if title == "" {
		title = "Resume"
	}
	out, err := engine.Render("page", map[string]any{
		"title":  title,
		"print":  data.Print,
		"resume": fragment,
	})
	if err != nil {
		return nil, fmt.Errorf("preview: render page: %w", err)
	}
	return []byte(out), nil
}

// Stylesheet returns the preview CSS so other pages can inline it.
func Stylesheet() (string, error) {
	engine, err := pageEngine()
	if err != nil {
		return "", fmt.Errorf("preview: page engine: %w", err)
	}
	out, err := engine.Render("stylesheet", nil)
	if err != nil {
		return "", fmt.Errorf("preview: render stylesheet: %w", err)
	}
	return out, nil
}

// Title derives a page title from the name shown in the tree.
func Title(tree *html.Node) string {
	name := strings.TrimSpace(TextContent(Find(tree, ByClass("name"))))
	if name == "" {
		return "Resume"
	}
	return name + " - Resume"
}
