package clipboard

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// Manager receives the rendered layout report when the user asks to copy it.
type Manager interface {
	SetContent(content string) error
}

// FyneManager puts layout reports on the application clipboard.
type FyneManager struct {
	clipboard fyne.Clipboard
}

// NewFyneManager wraps the app clipboard. Pass nil when running without a
// display; SetContent then reports the missing clipboard instead of panicking.
func NewFyneManager(clipboard fyne.Clipboard) *FyneManager {
	return &FyneManager{clipboard: clipboard}
}

// SetContent replaces the clipboard text with a report.
func (c *FyneManager) SetContent(report string) error {
	if c.clipboard == nil {
		return fmt.Errorf("clipboard is not available, layout report not copied")
	}
	c.clipboard.SetContent(report)
	return nil
}
