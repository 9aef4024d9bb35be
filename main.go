package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lsi/pkg/cli"
	"lsi/pkg/config"
	"lsi/pkg/store"
	"lsi/pkg/ui"
	"lsi/pkg/utils"
)

func main() {
	args := cli.ParseArgs()

	utils.InitLogger(args.Verbose)
	defer utils.CloseLogger()

	// Load configuration
	cfg, styles, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The -file flag wins over the configured location
	todoPath := cfg.TodoFile
	if args.File != "" {
		todoPath = args.File
	}

	// Handle one-shot CLI commands first
	if cli.HandleCommands(todoPath, args) {
		return
	}

	s := store.New(todoPath)
	if err := s.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	m := ui.NewModel(s, cfg, styles, ui.Options{
		Simple:        args.Simple,
		InitialFilter: args.Filter,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if args.Watch {
		events, err := s.Watch(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching file: %v\n", err)
			os.Exit(1)
		}
		m.SetFileEvents(events)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if args.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
