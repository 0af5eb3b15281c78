package grid

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akaiko1/fern-layout-demo/internal/config"
)

func TestNewBuildsColumns(t *testing.T) {
	test.NewTempApp(t)

	cfg := config.DefaultConfig()
	cfg.GridColumns = 4
	cfg.GridRows = 3
	g := New(cfg)

	require.Len(t, g.Columns.Objects, 4)
	require.Len(t, g.Cells, 4)
	for _, col := range g.Cells {
		assert.Len(t, col, 3)
	}
	assert.NotNil(t, g.Cell(3, 2))
	assert.Nil(t, g.Cell(4, 0))
	assert.Nil(t, g.Cell(0, -1))

	g.Content.Resize(fyne.NewSize(402, 300))
	assert.Equal(t, fyne.NewPos(100, 0), g.Columns.Objects[1].Position())
	assert.Equal(t, fyne.NewSize(100, 300), g.Columns.Objects[3].Size())
}

func TestNewWithoutColumns(t *testing.T) {
	test.NewTempApp(t)

	cfg := config.DefaultConfig()
	cfg.GridColumns = 0
	g := New(cfg)

	assert.Empty(t, g.Columns.Objects)
	g.Content.Resize(fyne.NewSize(200, 100))
	assert.Equal(t, fyne.NewSize(200, 100), g.Columns.Size())
}

func TestStyleFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ActiveSize = 40
	s := Style(cfg)
	assert.Equal(t, float32(40), s.Active.Side)
	assert.Equal(t, float32(12), s.Idle.Side)
	assert.Equal(t, cfg.AnimationTime, s.Duration)
}
