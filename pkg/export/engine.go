package export

import (
	"context"

	"golang.org/x/net/html"
)

// Snapshot is the isolated capture handed to an engine. Tree is a private
// copy of the preview tree and HTML the complete print page built from it.
type Snapshot struct {
	Tree  *html.Node
	HTML  []byte
	Title string
}

// Engine converts a snapshot into document bytes.
type Engine interface {
	Render(ctx context.Context, snapshot Snapshot, cfg Config) ([]byte, error)
}

// EngineFunc adapts a function to Engine.
type EngineFunc func(ctx context.Context, snapshot Snapshot, cfg Config) ([]byte, error)

// Render calls f.
func (f EngineFunc) Render(ctx context.Context, snapshot Snapshot, cfg Config) ([]byte, error) {
	return f(ctx, snapshot, cfg)
}

// HTMLEngine returns the print page unchanged. Useful to inspect what a PDF
// engine would receive.
type HTMLEngine struct{}

// Render returns a copy of the snapshot's page.
func (HTMLEngine) Render(ctx context.Context, snapshot Snapshot, _ Config) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(snapshot.HTML) == 0 {
		return nil, NewError(KindInternal, "snapshot has no page", nil)
	}
	return append([]byte(nil), snapshot.HTML...), nil
}
