package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lsi/pkg/store"
)

// exportTask is the JSON shape for a single exported task.
type exportTask struct {
	Line           int      `json:"line"`
	Done           bool     `json:"done"`
	Priority       string   `json:"priority,omitempty"`
	CompletionDate string   `json:"completion_date,omitempty"`
	CreationDate   string   `json:"creation_date,omitempty"`
	Text           string   `json:"text"`
	Contexts       []string `json:"contexts,omitempty"`
	Projects       []string `json:"projects,omitempty"`
}

// HandleExportCommand processes --export commands
func HandleExportCommand(todoPath, filename, exportType string) {
	s := store.New(todoPath)
	if err := s.Load(); err != nil {
		fmt.Printf("Error loading tasks: %v\n", err)
		os.Exit(1)
	}
	items := s.Items()

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	var content []byte
	var err error

	switch exportType {
	case "json":
		tasks := make([]exportTask, 0, len(items))
		for _, it := range items {
			t := exportTask{
				Line:           it.SourceLine,
				Done:           it.Done,
				CompletionDate: it.CompletionDate,
				CreationDate:   it.CreationDate,
				Text:           it.Text,
				Contexts:       it.Contexts(),
				Projects:       it.Projects(),
			}
			if it.Priority != 0 {
				t.Priority = string(it.Priority)
			}
			tasks = append(tasks, t)
		}
		content, err = json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling tasks to JSON: %v\n", err)
			os.Exit(1)
		}
	case "txt":
		var lines []string
		for _, it := range items {
			status := " "
			if it.Done {
				status = "x"
			}
			lines = append(lines, fmt.Sprintf("- [%s] %s", status, it.Text))
		}
		content = []byte(strings.TrimSpace(strings.Join(lines, "\n")))
	default:
		fmt.Printf("Unknown export type: %s\n", exportType)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d task(s) to %s\n", len(items), filename)
}
