package report

import (
	"fmt"
	"strings"

	"github.com/Akaiko1/fern-layout-demo/internal/partition"
)

const (
	rowBranch     = "├──"
	rowLastBranch = "└──"
)

// Renderer turns a layout pass into text.
type Renderer interface {
	Render(title string, res partition.Result) string
}

// TextRenderer lists every placement as one line below a header.
type TextRenderer struct{}

// Render writes the parent size, one line per child and the unfilled gap on the right.
func (r *TextRenderer) Render(title string, res partition.Result) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Layout for: %s\n", title))
	builder.WriteString(strings.Repeat("=", 50) + "\n\n")
	builder.WriteString(fmt.Sprintf("parent %dx%d, %d children\n", res.Width, res.Height, len(res.Placements)))

	for i, pl := range res.Placements {
		connector := rowBranch
		if i == len(res.Placements)-1 {
			connector = rowLastBranch
		}
		builder.WriteString(fmt.Sprintf("%s #%d at (%d,%d) size %dx%d\n",
			connector, i, pl.X, pl.Y, pl.Size.Width, pl.Size.Height))
	}

	builder.WriteString(fmt.Sprintf("\nresidual gap: %d\n", res.Width-res.Cursor()))
	return builder.String()
}
