package clipboard

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestSetContent(t *testing.T) {
	a := test.NewTempApp(t)

	m := NewFyneManager(a.Clipboard())
	assert.NoError(t, m.SetContent("residual gap: 1"))
	assert.Equal(t, "residual gap: 1", a.Clipboard().Content())
}

func TestSetContentWithoutClipboard(t *testing.T) {
	assert.EqualError(t, NewFyneManager(nil).SetContent("x"), "clipboard is not available, layout report not copied")
}
