package main

import (
	"context"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"shortforge/config"
	"shortforge/sheets"
	"shortforge/tui"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	serviceAccount, err := os.ReadFile(config.ServiceAccountFile())
	if err != nil {
		log.Fatalf("❌ Failed to read service account: %v", err)
	}

	queue, err := sheets.NewQueue(context.Background(), serviceAccount, config.SheetID(), config.SheetTab())
	if err != nil {
		log.Fatalf("❌ Failed to open queue: %v", err)
	}

	program := tea.NewProgram(tui.NewModel(queue))
	if _, err := program.Run(); err != nil {
		log.Fatalf("❌ TUI error: %v", err)
	}
}
