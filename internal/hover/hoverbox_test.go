package hover

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instant() Style {
	s := DefaultStyle()
	s.Duration = 0
	return s
}

func TestTweenAt(t *testing.T) {
	tw := Tween{From: Frame{Side: 12, Alpha: 0.25}, To: Frame{Side: 28, Alpha: 1}}

	assert.Equal(t, tw.From, tw.At(0))
	assert.Equal(t, tw.To, tw.At(1))
	assert.Equal(t, tw.From, tw.At(-3))
	assert.Equal(t, tw.To, tw.At(2))

	mid := tw.At(0.5)
	assert.InDelta(t, 20, mid.Side, 1e-5)
	assert.InDelta(t, 0.625, mid.Alpha, 1e-5)
}

func TestRetargetStartsFromCurrentFrame(t *testing.T) {
	s := DefaultStyle()
	mid := Frame{Side: 20, Alpha: 0.625}

	out := s.retarget(mid, false)
	assert.Equal(t, mid, out.From)
	assert.Equal(t, s.Idle, out.To)
	assert.Equal(t, mid, out.At(0))

	in := s.retarget(mid, true)
	assert.Equal(t, mid, in.From)
	assert.Equal(t, s.Active, in.To)

	half := out.At(0.5)
	assert.InDelta(t, 16, half.Side, 1e-5)
	assert.InDelta(t, 0.4375, half.Alpha, 1e-5)
}

func TestHoverBoxTogglesOnPointer(t *testing.T) {
	test.NewTempApp(t)

	b := NewHoverBox(instant())
	assert.False(t, b.Active())
	assert.Equal(t, DefaultStyle().Idle, b.Frame())

	b.MouseIn(&desktop.MouseEvent{})
	assert.True(t, b.Active())
	assert.Equal(t, DefaultStyle().Active, b.Frame())

	b.MouseMoved(&desktop.MouseEvent{})
	assert.True(t, b.Active())

	b.MouseOut()
	assert.False(t, b.Active())
	assert.Equal(t, DefaultStyle().Idle, b.Frame())
}

func TestHoverBoxRendersCentredSquare(t *testing.T) {
	test.NewTempApp(t)

	b := NewHoverBox(instant())
	r := test.WidgetRenderer(b)
	b.Resize(fyne.NewSize(100, 60))
	r.Layout(b.Size())

	require.Len(t, r.Objects(), 1)
	sq := r.Objects()[0].(*canvas.Rectangle)
	assert.Equal(t, fyne.NewSquareSize(12), sq.Size())
	assert.Equal(t, fyne.NewPos(44, 24), sq.Position())
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 63}, sq.FillColor)

	b.MouseIn(&desktop.MouseEvent{})
	assert.Equal(t, fyne.NewSquareSize(28), sq.Size())
	assert.Equal(t, fyne.NewPos(36, 16), sq.Position())
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, sq.FillColor)

	assert.Equal(t, fyne.NewSquareSize(28), b.MinSize())
}
