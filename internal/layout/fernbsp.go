// Package layout adapts the equal-width partitioner to Fyne containers.
package layout

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/Akaiko1/fern-layout-demo/internal/partition"
)

// FernBSP lays out visible objects in a single row of equal-width columns.
type FernBSP struct{}

// NewFernBSP returns a new FernBSP layout.
func NewFernBSP() *FernBSP {
	return &FernBSP{}
}

// NewFernBSPContainer creates a container using a FernBSP layout.
func NewFernBSPContainer(objects ...fyne.CanvasObject) *fyne.Container {
	return container.New(NewFernBSP(), objects...)
}

// Layout is called to pack all child objects into a specified size.
func (f *FernBSP) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	f.Measure(objects, size).PlaceAll(placer{})
}

// Measure runs the partitioner over the visible objects without moving them.
func (f *FernBSP) Measure(objects []fyne.CanvasObject, size fyne.Size) partition.Result {
	children := make([]partition.Measurable, 0, len(objects))
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		children = append(children, &object{o})
	}
	return partition.Partition(children, Constraints(size))
}

// MinSize gives every column room for the widest visible child.
func (f *FernBSP) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var widest, tallest float32
	n := 0
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		n++
		ms := o.MinSize()
		widest = fyne.Max(widest, ms.Width)
		tallest = fyne.Max(tallest, ms.Height)
	}
	return fyne.NewSize(widest*float32(n), tallest)
}

// Constraints converts a container size into a tight partition constraint.
// Fyne lays a container out at exactly one size, so min equals max on both
// axes. Fractional units are truncated.
func Constraints(size fyne.Size) partition.Constraints {
	w, h := int(size.Width), int(size.Height)
	return partition.Constraints{
		MinWidth:  w,
		MaxWidth:  w,
		MinHeight: h,
		MaxHeight: h,
	}
}

type object struct {
	fyne.CanvasObject
}

// Measure picks the object's min size, rounded up, within c.
func (o *object) Measure(c partition.Constraints) partition.Size {
	ms := o.MinSize()
	return partition.Size{
		Width:  bound(int(math.Ceil(float64(ms.Width))), c.MinWidth, c.MaxWidth),
		Height: bound(int(math.Ceil(float64(ms.Height))), c.MinHeight, c.MaxHeight),
	}
}

type placer struct{}

func (placer) Place(child partition.Measurable, size partition.Size, x, y int) {
	o := child.(*object)
	o.Resize(fyne.NewSize(float32(size.Width), float32(size.Height)))
	o.Move(fyne.NewPos(float32(x), float32(y)))
}

func bound(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
