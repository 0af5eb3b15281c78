// Package demos holds the screens shown as tabs in the demo window. Every
// screen is rooted in a FernBSP container.
package demos

import (
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/Akaiko1/fern-layout-demo/internal/config"
	"github.com/Akaiko1/fern-layout-demo/internal/grid"
)

// Screen is a built demo.
type Screen struct {
	Name    string
	Root    *fyne.Container
	Content fyne.CanvasObject
}

// Demo is a named screen constructor.
type Demo struct {
	Name  string
	Build func() *Screen
}

// Registry keeps demos in display order.
type Registry struct {
	demos []Demo
}

// NewRegistry returns the standard set of demos configured by cfg.
func NewRegistry(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Registry{demos: []Demo{
		{Name: "Grid", Build: func() *Screen {
			g := grid.New(cfg)
			return &Screen{Root: g.Columns, Content: g.Content}
		}},
		{Name: "Layout nodes", Build: func() *Screen { return MultipleLayoutNode() }},
		{Name: "Modifier order", Build: func() *Screen { return ModifierOrder() }},
		{Name: "Mutable state", Build: func() *Screen { return NewMutableState().Screen }},
		{Name: "Split", Build: func() *Screen { return Split() }},
	}}
}

// Demos returns the registered demos in order.
func (r *Registry) Demos() []Demo {
	return r.demos
}

// Names returns the demo names in order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.demos))
	for i, d := range r.demos {
		names[i] = d.Name
	}
	return names
}

// Build constructs the named demo.
func (r *Registry) Build(name string) (*Screen, error) {
	for _, d := range r.demos {
		if d.Name == name {
			s := d.Build()
			s.Name = d.Name
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown demo %q", name)
}
