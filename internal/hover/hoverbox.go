// Package hover provides a box whose centred square grows and brightens
// while the pointer is over it.
package hover

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Style describes the idle and active looks of a HoverBox.
type Style struct {
	Idle     Frame
	Active   Frame
	Duration time.Duration
	Color    color.NRGBA
}

// DefaultStyle is a white square going from 12 units at quarter opacity to 28 units opaque.
func DefaultStyle() Style {
	return Style{
		Idle:     Frame{Side: 12, Alpha: 0.25},
		Active:   Frame{Side: 28, Alpha: 1},
		Duration: 300 * time.Millisecond,
		Color:    color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// retarget starts a tween at the frame currently on screen and ends at the
// idle or active look.
func (s Style) retarget(current Frame, active bool) Tween {
	if active {
		return Tween{From: current, To: s.Active}
	}
	return Tween{From: current, To: s.Idle}
}

var _ desktop.Hoverable = (*HoverBox)(nil)

// HoverBox is an empty area with an animated square in its centre.
type HoverBox struct {
	widget.BaseWidget

	style  Style
	active bool
	frame  Frame
	anim   *fyne.Animation
}

// NewHoverBox creates an idle HoverBox.
func NewHoverBox(style Style) *HoverBox {
	b := &HoverBox{style: style, frame: style.Idle}
	b.ExtendBaseWidget(b)
	return b
}

// Active reports whether the pointer is currently over the box.
func (b *HoverBox) Active() bool {
	return b.active
}

// Frame returns the currently displayed square state.
func (b *HoverBox) Frame() Frame {
	return b.frame
}

// MouseIn is called when a desktop pointer enters the widget.
func (b *HoverBox) MouseIn(*desktop.MouseEvent) {
	b.setActive(true)
}

// MouseMoved is called when a desktop pointer hovers over the widget.
func (b *HoverBox) MouseMoved(*desktop.MouseEvent) {}

// MouseOut is called when a desktop pointer exits the widget.
func (b *HoverBox) MouseOut() {
	b.setActive(false)
}

// setActive animates from whatever is on screen now toward the new target,
// so a quick in/out reverses smoothly instead of jumping.
func (b *HoverBox) setActive(active bool) {
	if b.active == active {
		return
	}
	b.active = active
	if b.anim != nil {
		b.anim.Stop()
		b.anim = nil
	}

	tw := b.style.retarget(b.frame, active)
	if b.style.Duration <= 0 {
		b.show(tw.To)
		return
	}

	b.anim = fyne.NewAnimation(b.style.Duration, func(p float32) {
		b.show(tw.At(p))
	})
	b.anim.Curve = fyne.AnimationEaseInOut
	b.anim.Start()
}

func (b *HoverBox) show(f Frame) {
	b.frame = f
	b.Refresh()
}

// CreateRenderer is a private method to Fyne which links this widget to its renderer.
func (b *HoverBox) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)
	square := canvas.NewRectangle(b.fill())
	r := &hoverRenderer{box: b, square: square, objects: []fyne.CanvasObject{square}}
	return r
}

func (b *HoverBox) fill() color.Color {
	c := b.style.Color
	c.A = uint8(float32(c.A) * b.frame.Alpha)
	return c
}

type hoverRenderer struct {
	box     *HoverBox
	square  *canvas.Rectangle
	objects []fyne.CanvasObject
}

func (r *hoverRenderer) Layout(size fyne.Size) {
	side := r.box.frame.Side
	r.square.Resize(fyne.NewSquareSize(side))
	r.square.Move(fyne.NewPos((size.Width-side)/2, (size.Height-side)/2))
}

func (r *hoverRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(fyne.Max(r.box.style.Active.Side, r.box.style.Idle.Side))
}

func (r *hoverRenderer) Refresh() {
	r.square.FillColor = r.box.fill()
	r.Layout(r.box.Size())
	r.square.Refresh()
}

func (r *hoverRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *hoverRenderer) Destroy() {}
