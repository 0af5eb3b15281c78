package demos

import (
	"image/color"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/Akaiko1/fern-layout-demo/internal/grid"
	"github.com/Akaiko1/fern-layout-demo/internal/layout"
)

var (
	light = color.NRGBA{R: 0xf7, G: 0xf2, B: 0xfa, A: 0xff}
	red   = color.NRGBA{R: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
)

// MultipleLayoutNode gives two labels and two buttons a quarter of the width each.
func MultipleLayoutNode() *Screen {
	root := layout.NewFernBSPContainer(
		widget.NewLabel("Text"),
		widget.NewButton("Button", func() {}),
		widget.NewLabel("Text 2"),
		widget.NewButton("Button 2", func() {}),
	)
	return &Screen{Root: root, Content: root}
}

// Split fills two equal columns with the dark and light theme colours.
func Split() *Screen {
	root := layout.NewFernBSPContainer(
		canvas.NewRectangle(grid.Background),
		canvas.NewRectangle(light),
	)
	return &Screen{Root: root, Content: root}
}

// ModifierOrder shows how applying padding before or after a fixed size
// changes the result: the left box pads a 32 unit square, the right box
// pads inside it.
func ModifierOrder() *Screen {
	root := layout.NewFernBSPContainer(
		container.NewCenter(Bordered(32+2*8, 32)),
		container.NewCenter(Bordered(32, 32-2*8)),
	)
	return &Screen{Root: root, Content: root}
}

// Bordered draws a red outline of side outer with a centred blue outline of side inner.
func Bordered(outer, inner float32) *fyne.Container {
	o := outline(red, outer)
	i := outline(blue, inner)
	return container.NewStack(o, container.NewCenter(i))
}

func outline(c color.Color, side float32) *canvas.Rectangle {
	r := canvas.NewRectangle(color.Transparent)
	r.StrokeColor = c
	r.StrokeWidth = 1
	r.SetMinSize(fyne.NewSquareSize(side))
	return r
}

// MutableState contrasts an observable list with a plain slice. Appending to
// the observable list updates its label; appending to the slice does not.
type MutableState struct {
	*Screen

	List       binding.IntList
	ListLabel  *widget.Label
	ListAppend *widget.Button

	Array       []int
	ArrayLabel  *widget.Label
	ArrayAppend *widget.Button
}

// NewMutableState builds the two side by side columns.
func NewMutableState() *MutableState {
	m := &MutableState{
		List:       binding.NewIntList(),
		ListLabel:  widget.NewLabel(""),
		ArrayLabel: widget.NewLabel(""),
	}
	m.List.AddListener(binding.NewDataListener(func() {
		vals, err := m.List.Get()
		if err != nil {
			return
		}
		m.ListLabel.SetText(join(vals))
	}))
	m.ListAppend = widget.NewButton("Append", func() {
		if err := m.List.Append(0); err != nil {
			log.Printf("Failed to append to observable list: %v", err)
		}
	})
	m.ArrayAppend = widget.NewButton("Append", func() {
		m.Array = append(m.Array, 0)
	})

	root := layout.NewFernBSPContainer(
		container.NewCenter(container.NewVBox(m.ListLabel, m.ListAppend)),
		container.NewCenter(container.NewVBox(m.ArrayLabel, m.ArrayAppend)),
	)
	m.Screen = &Screen{Root: root, Content: root}
	return m
}

func join(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
