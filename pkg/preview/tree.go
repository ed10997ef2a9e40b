package preview

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type attr struct {
	key, val string
}

func el(tag atom.Atom, class string, children ...*html.Node) *html.Node {
	node := &html.Node{Type: html.ElementNode, DataAtom: tag, Data: tag.String()}
	if class != "" {
		node.Attr = append(node.Attr, html.Attribute{Key: "class", Val: class})
	}
	for _, child := range children {
		if child != nil {
			node.AppendChild(child)
		}
	}
	return node
}

func withAttrs(node *html.Node, attrs ...attr) *html.Node {
	for _, a := range attrs {
		setAttr(node, a.key, a.val)
	}
	return node
}

func text(value string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: value}
}

// Attr returns the value of key on node.
func Attr(node *html.Node, key string) (string, bool) {
	if node == nil {
		return "", false
	}
	for _, a := range node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(node *html.Node, key, val string) {
	for i, a := range node.Attr {
		if a.Namespace == "" && a.Key == key {
			node.Attr[i].Val = val
			return
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(node *html.Node, key string) {
	for i, a := range node.Attr {
		if a.Namespace == "" && a.Key == key {
			node.Attr = append(node.Attr[:i], node.Attr[i+1:]...)
			return
		}
	}
}

// HasClass reports whether node carries class.
func HasClass(node *html.Node, class string) bool {
	value, ok := Attr(node, "class")
	if !ok {
		return false
	}
	for _, field := range strings.Fields(value) {
		if field == class {
			return true
		}
	}
	return false
}

// Find returns the first node, in document order, matching match.
func Find(root *html.Node, match func(*html.Node) bool) *html.Node {
	if root == nil {
		return nil
	}
	if match(root) {
		return root
	}
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if found := Find(child, match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node matching match in document order.
func FindAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if match(node) {
			out = append(out, node)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// ByClass matches element nodes carrying class.
func ByClass(class string) func(*html.Node) bool {
	return func(node *html.Node) bool {
		return node.Type == html.ElementNode && HasClass(node, class)
	}
}

// BySection matches the block rendered for section.
func BySection(section string) func(*html.Node) bool {
	return func(node *html.Node) bool {
		value, ok := Attr(node, "data-section")
		return ok && node.Type == html.ElementNode && value == section
	}
}

// Children returns the element children of node matching match.
func Children(node *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	if node == nil {
		return out
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if match(child) {
			out = append(out, child)
		}
	}
	return out
}

// TextContent concatenates the text below node.
func TextContent(node *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if node != nil {
		walk(node)
	}
	return buf.String()
}

// Clone returns a deep copy of node detached from any parent.
func Clone(node *html.Node) *html.Node {
	if node == nil {
		return nil
	}
	out := &html.Node{
		Type:      node.Type,
		DataAtom:  node.DataAtom,
		Data:      node.Data,
		Namespace: node.Namespace,
	}
	if len(node.Attr) > 0 {
		out.Attr = append([]html.Attribute(nil), node.Attr...)
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		out.AppendChild(Clone(child))
	}
	return out
}

// Serialize renders node and its descendants as HTML.
func Serialize(node *html.Node) ([]byte, error) {
	if node == nil {
		return nil, fmt.Errorf("preview: nil tree")
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		return nil, fmt.Errorf("preview: serialize tree: %w", err)
	}
	return buf.Bytes(), nil
}
