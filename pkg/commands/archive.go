package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lsi/pkg/todotxt"
)

// HandleArchiveCommand processes the --archive command. Completed tasks are
// moved from the todo file to done.txt next to it.
func HandleArchiveCommand(todoPath string, skipConfirm bool) {
	content, err := os.ReadFile(todoPath)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	var keep, done []string
	for i, line := range lines {
		if todotxt.Parse(line, i+1).Done {
			done = append(done, line)
		} else {
			keep = append(keep, line)
		}
	}

	if len(done) == 0 {
		fmt.Println("No completed tasks to archive.")
		return
	}

	donePath := filepath.Join(filepath.Dir(todoPath), "done.txt")

	// Show confirmation unless --yes flag is used
	if !skipConfirm {
		fmt.Printf("Move %d completed task(s) to %s? (y/N): ", len(done), donePath)
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Operation cancelled.")
			return
		}
	}

	if err := appendLines(donePath, done); err != nil {
		fmt.Printf("Error writing %s: %v\n", donePath, err)
		os.Exit(1)
	}

	out := ""
	if len(keep) > 0 {
		out = strings.Join(keep, "\n") + "\n"
	}
	if err := os.WriteFile(todoPath, []byte(out), 0644); err != nil {
		fmt.Printf("Error rewriting %s: %v\n", todoPath, err)
		os.Exit(1)
	}

	fmt.Printf("Successfully archived %d task(s)\n", len(done))
}
