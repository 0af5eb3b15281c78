// Package grid builds the animated cell grid: equal-width columns, each a
// stack of hover boxes on a dark background.
package grid

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	fynelayout "fyne.io/fyne/v2/layout"

	"github.com/Akaiko1/fern-layout-demo/internal/config"
	"github.com/Akaiko1/fern-layout-demo/internal/hover"
	"github.com/Akaiko1/fern-layout-demo/internal/layout"
)

// Background is the dark fill behind the cells.
var Background = color.NRGBA{R: 0x27, G: 0x23, B: 0x29, A: 0xff}

// Grid holds the container and its cells in column-major order.
type Grid struct {
	Columns *fyne.Container
	Cells   [][]*hover.HoverBox
	Content fyne.CanvasObject
}

// Style converts the animation settings of cfg into a hover style.
func Style(cfg *config.Config) hover.Style {
	s := hover.DefaultStyle()
	s.Idle = hover.Frame{Side: cfg.IdleSize, Alpha: cfg.IdleAlpha}
	s.Active = hover.Frame{Side: cfg.ActiveSize, Alpha: cfg.ActiveAlpha}
	s.Duration = cfg.AnimationTime
	return s
}

// New creates cfg.GridColumns columns of cfg.GridRows cells each.
func New(cfg *config.Config) *Grid {
	style := Style(cfg)
	g := &Grid{Cells: make([][]*hover.HoverBox, cfg.GridColumns)}

	columns := make([]fyne.CanvasObject, cfg.GridColumns)
	for c := range columns {
		cells := make([]fyne.CanvasObject, cfg.GridRows)
		g.Cells[c] = make([]*hover.HoverBox, cfg.GridRows)
		for r := range cells {
			box := hover.NewHoverBox(style)
			g.Cells[c][r] = box
			cells[r] = box
		}
		columns[c] = container.New(fynelayout.NewGridLayoutWithColumns(1), cells...)
	}

	g.Columns = layout.NewFernBSPContainer(columns...)
	g.Content = container.NewStack(canvas.NewRectangle(Background), g.Columns)
	return g
}

// Cell returns the box at column c, row r, or nil when out of range.
func (g *Grid) Cell(c, r int) *hover.HoverBox {
	if c < 0 || c >= len(g.Cells) || r < 0 || r >= len(g.Cells[c]) {
		return nil
	}
	return g.Cells[c][r]
}
