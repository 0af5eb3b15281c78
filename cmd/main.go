// Package main runs the FernBSP layout demo: equal-width columns, hover
// animations and a grid of animated cells, built with Fyne.
package main

import (
	"log"

	"github.com/Akaiko1/fern-layout-demo/internal/config"
	"github.com/Akaiko1/fern-layout-demo/internal/ui"
)

func main() {
	log.Println("Starting FernBSP demo...")

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	log.Printf("Config: Window=%dx%d, Grid=%dx%d, Demo=%s",
		cfg.WindowWidth, cfg.WindowHeight, cfg.GridColumns, cfg.GridRows, cfg.StartDemo)

	app := ui.NewDemoApp(cfg)
	log.Println("App created, starting UI...")

	app.Run()
}
