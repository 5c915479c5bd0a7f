package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexislopes/hoaxify-tui/internal/api"
	"github.com/alexislopes/hoaxify-tui/internal/config"
	"github.com/alexislopes/hoaxify-tui/internal/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bundle, err := i18n.Load()
	if err != nil {
		log.Fatalf("locales: %v", err)
	}
	if err := bundle.SetLanguage(cfg.UI.Language); err != nil {
		// An unknown preference falls back to English.
		_ = bundle.SetLanguage(i18n.LangEnglish)
	}

	// Persist the language preference whenever it is switched in the TUI.
	bundle.Subscribe(func(lang string) {
		cfg.UI.Language = lang
		if err := config.Save(cfg); err != nil {
			log.Printf("save language preference: %v", err)
		}
	})

	if os.Getenv("HOAXIFY_DEBUG") != "" {
		f, err := tea.LogToFile("hoaxify-debug.log", "hoaxify")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
	} else {
		// The alt screen owns the terminal; discard stray log output.
		log.SetOutput(io.Discard)
	}

	client := api.NewClient(cfg.Server.BaseURL, cfg.Server.Timeout())
	p := tea.NewProgram(newModel(bundle, client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
