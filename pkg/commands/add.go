package commands

import (
	"fmt"
	"os"
	"time"

	"lsi/pkg/todotxt"
)

// HandleAddTask processes the --add command
func HandleAddTask(todoPath string, taskText string, priStr string, dateStr string) {
	item := todotxt.Item{Text: taskText}

	if priStr != "" {
		if len(priStr) != 1 || priStr[0] < 'A' || priStr[0] > 'Z' {
			fmt.Printf("Invalid priority %q: expected a single letter A-Z\n", priStr)
			os.Exit(1)
		}
		item.Priority = priStr[0]
	}

	if dateStr != "" {
		if _, err := time.Parse(todotxt.DateLayout, dateStr); err != nil {
			fmt.Printf("Error parsing date: %v\n", err)
			os.Exit(1)
		}
		item.CreationDate = dateStr
	} else {
		// Default to today
		item.CreationDate = time.Now().Format(todotxt.DateLayout)
	}

	if err := appendLines(todoPath, []string{item.String()}); err != nil {
		fmt.Printf("Error adding task: %v\n", err)
		os.Exit(1)
	}
}

// appendLines appends lines to the todo file, creating it if needed.
func appendLines(todoPath string, lines []string) error {
	f, err := os.OpenFile(todoPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			return err
		}
	}
	return nil
}
