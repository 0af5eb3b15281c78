package hover

// Frame is one rendered state of the hover square.
type Frame struct {
	Side  float32
	Alpha float32
}

// Tween interpolates linearly between two frames.
type Tween struct {
	From Frame
	To   Frame
}

// At returns the frame for progress p, clamped to [0,1].
func (t Tween) At(p float32) Frame {
	if p <= 0 {
		return t.From
	}
	if p >= 1 {
		return t.To
	}
	return Frame{
		Side:  lerp(t.From.Side, t.To.Side, p),
		Alpha: lerp(t.From.Alpha, t.To.Alpha, p),
	}
}

func lerp(a, b, p float32) float32 {
	return a + (b-a)*p
}
