package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Akaiko1/fern-layout-demo/internal/clipboard"
	"github.com/Akaiko1/fern-layout-demo/internal/config"
	"github.com/Akaiko1/fern-layout-demo/internal/demos"
	"github.com/Akaiko1/fern-layout-demo/internal/layout"
	"github.com/Akaiko1/fern-layout-demo/internal/report"
)

const (
	msgCopySuccess = "Layout report copied to clipboard!"
	msgNoDemo      = "No demo is selected."
)

// DemoApp is the main window: one tab per demo plus a small toolbar.
type DemoApp struct {
	// Core components
	app    fyne.App
	window fyne.Window
	config *config.Config

	// Services
	registry  *demos.Registry
	renderer  report.Renderer
	clipboard clipboard.Manager

	// UI components
	tabs        *container.AppTabs
	statusLabel *widget.Label

	// State - UI thread only, no synchronization needed
	screens map[*container.TabItem]*demos.Screen
}

// NewDemoApp creates a DemoApp backed by a new Fyne application.
func NewDemoApp(cfg *config.Config) *DemoApp {
	return newDemoApp(app.New(), cfg)
}

func newDemoApp(fyneApp fyne.App, cfg *config.Config) *DemoApp {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	fyneApp.SetIcon(theme.GridIcon())

	window := fyneApp.NewWindow(cfg.Title)
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	return &DemoApp{
		app:         fyneApp,
		window:      window,
		config:      cfg,
		registry:    demos.NewRegistry(cfg),
		renderer:    &report.TextRenderer{},
		clipboard:   clipboard.NewFyneManager(fyneApp.Clipboard()),
		statusLabel: widget.NewLabel("Hover over the grid cells"),
		screens:     make(map[*container.TabItem]*demos.Screen),
	}
}

// Run shows the window and blocks until it is closed.
func (a *DemoApp) Run() {
	a.window.SetContent(a.createMainContent())
	a.window.ShowAndRun()
}

// createMainContent builds the toolbar and the demo tabs.
func (a *DemoApp) createMainContent() fyne.CanvasObject {
	copyBtn := widget.NewButtonWithIcon("Copy layout report", theme.ContentCopyIcon(), a.handleCopyReport)
	resetBtn := widget.NewButtonWithIcon("Reset demo", theme.ViewRefreshIcon(), a.handleReset)
	buttons := container.NewGridWithColumns(2, copyBtn, resetBtn)

	a.tabs = container.NewAppTabs()
	for _, d := range a.registry.Demos() {
		screen, err := a.registry.Build(d.Name)
		if err != nil {
			log.Printf("Skipping demo %s: %v", d.Name, err)
			continue
		}
		item := container.NewTabItem(d.Name, screen.Content)
		a.screens[item] = screen
		a.tabs.Append(item)
	}
	a.tabs.OnSelected = func(item *container.TabItem) {
		a.statusLabel.SetText("Showing: " + item.Text)
	}
	a.selectDemo(a.config.StartDemo)

	header := container.NewVBox(buttons, a.statusLabel)
	return container.NewBorder(header, nil, nil, nil, a.tabs)
}

// selectDemo switches to the named tab, falling back to the first one.
func (a *DemoApp) selectDemo(name string) {
	for _, item := range a.tabs.Items {
		if item.Text == name {
			a.tabs.Select(item)
			return
		}
	}
	if name != "" {
		log.Printf("Warning: start demo %q not found", name)
	}
	if a.tabs.Selected() == nil && len(a.tabs.Items) > 0 {
		a.tabs.SelectIndex(0)
	}
}

// currentScreen returns the screen of the selected tab.
func (a *DemoApp) currentScreen() *demos.Screen {
	if a.tabs == nil || a.tabs.Selected() == nil {
		return nil
	}
	return a.screens[a.tabs.Selected()]
}

// layoutReport measures the selected demo at its current size.
func (a *DemoApp) layoutReport() (string, error) {
	screen := a.currentScreen()
	if screen == nil {
		return "", errors.New(msgNoDemo)
	}
	bsp, ok := screen.Root.Layout.(*layout.FernBSP)
	if !ok {
		return "", fmt.Errorf("demo %q is not laid out by FernBSP", screen.Name)
	}
	res := bsp.Measure(screen.Root.Objects, screen.Root.Size())
	return a.renderer.Render(screen.Name, res), nil
}

// handleCopyReport copies the layout report of the selected demo.
func (a *DemoApp) handleCopyReport() {
	text, err := a.layoutReport()
	if err != nil {
		a.showError("Report Error", err)
		return
	}

	if err := a.clipboard.SetContent(text); err != nil {
		a.showError("Clipboard Error", err)
		return
	}

	log.Printf("Copied layout report for %s", a.currentScreen().Name)
	a.statusLabel.SetText(msgCopySuccess)
}

// handleReset rebuilds the selected demo, dropping any state it held.
func (a *DemoApp) handleReset() {
	item := a.tabs.Selected()
	if item == nil {
		return
	}
	screen, err := a.registry.Build(item.Text)
	if err != nil {
		a.showError("Reset Error", err)
		return
	}
	a.screens[item] = screen
	item.Content = screen.Content
	a.tabs.Refresh()
	a.statusLabel.SetText("Reset: " + item.Text)
}

// showError shows an error dialog.
func (a *DemoApp) showError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), a.window)
}
