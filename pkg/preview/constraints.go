package preview

import "golang.org/x/net/html"

// Constraints are the inline styles that size the preview on screen. Empty
// values mean "unset" and remove the property from the tree.
type Constraints struct {
	Height   string `json:"height" yaml:"height"`
	Overflow string `json:"overflow" yaml:"overflow"`
	Logo     Logo   `json:"logo" yaml:"logo"`
}

// Logo sizes the header image.
type Logo struct {
	Width     string `json:"width,omitempty" yaml:"width,omitempty"`
	Height    string `json:"height,omitempty" yaml:"height,omitempty"`
	ObjectFit string `json:"objectFit,omitempty" yaml:"objectFit,omitempty"`
}

// DefaultConstraints is the scrolling on-screen viewport.
func DefaultConstraints() Constraints {
	return Constraints{Height: "800px", Overflow: "auto"}
}

// ExportConstraints shows the full content and pins the logo size used in
// printed output.
func ExportConstraints() Constraints {
	return Constraints{
		Height:   "auto",
		Overflow: "visible",
		Logo: Logo{
			Width:     "160px",
			Height:    "40px",
			ObjectFit: "contain",
		},
	}
}

// Apply writes the constraints onto a rendered tree.
func (c Constraints) Apply(root *html.Node) {
	if root == nil {
		return
	}
	SetStyleProperty(root, "height", c.Height)
	SetStyleProperty(root, "overflow", c.Overflow)
	if logo := Find(root, ByClass(logoClass)); logo != nil {
		SetStyleProperty(logo, "width", c.Logo.Width)
		SetStyleProperty(logo, "height", c.Logo.Height)
		SetStyleProperty(logo, "object-fit", c.Logo.ObjectFit)
	}
}

// ReadConstraints reports the constraints currently set on a tree.
func ReadConstraints(root *html.Node) Constraints {
	out := Constraints{
		Height:   StyleProperty(root, "height"),
		Overflow: StyleProperty(root, "overflow"),
	}
	if logo := Find(root, ByClass(logoClass)); logo != nil {
		out.Logo = Logo{
			Width:     StyleProperty(logo, "width"),
			Height:    StyleProperty(logo, "height"),
			ObjectFit: StyleProperty(logo, "object-fit"),
		}
	}
	return out
}
