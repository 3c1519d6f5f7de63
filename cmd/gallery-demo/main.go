package main

import (
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bellroy/infinite-gallery/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// stdout belongs to the TUI; logs go to a file.
	f, err := tea.LogToFile(cfg.LogFile, "gallery-demo")
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	defer f.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	slog.Info("starting", "slides", len(cfg.Gallery.Slides), "wrap", cfg.Gallery.WrapStrategy)

	p := tea.NewProgram(newAppModel(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
