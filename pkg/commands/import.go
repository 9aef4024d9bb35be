package commands

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"lsi/pkg/todotxt"
)

// HandleImportCommand processes --import commands
func HandleImportCommand(todoPath, filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	lines := strings.Split(string(content), "\n")
	var currentDate string
	var imported []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Check if line contains a date (DD.MM.YYYY: or YYYY-MM-DD: format)
		dateRegex := regexp.MustCompile(`(?:(\d{2})\.(\d{2})\.(\d{4})|(\d{4})-(\d{2})-(\d{2})):?`)
		if dateMatch := dateRegex.FindStringSubmatch(line); dateMatch != nil {
			var day, month, year int
			if dateMatch[1] != "" {
				day, _ = strconv.Atoi(dateMatch[1])
				month, _ = strconv.Atoi(dateMatch[2])
				year, _ = strconv.Atoi(dateMatch[3])
			} else {
				year, _ = strconv.Atoi(dateMatch[4])
				month, _ = strconv.Atoi(dateMatch[5])
				day, _ = strconv.Atoi(dateMatch[6])
			}
			currentDate = fmt.Sprintf("%04d-%02d-%02d", year, month, day)
			continue
		}

		// Check if line is a task (starts with -)
		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, " - ") {
			taskText := strings.TrimPrefix(strings.TrimSpace(line), "- ")
			if taskText == "" {
				continue
			}

			done := false
			if strings.HasPrefix(taskText, "[x]") {
				done = true
				taskText = strings.TrimSpace(strings.TrimPrefix(taskText, "[x]"))
			} else if strings.HasPrefix(taskText, "[ ]") {
				taskText = strings.TrimSpace(strings.TrimPrefix(taskText, "[ ]"))
			}
			if taskText == "" {
				continue
			}

			item := todotxt.Item{
				Done:         done,
				CreationDate: currentDate,
				Text:         taskText,
			}
			if done {
				item.CompletionDate = currentDate
			}
			imported = append(imported, item.String())
		}
	}

	if err := appendLines(todoPath, imported); err != nil {
		fmt.Printf("Error writing tasks: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d task(s) from %s\n", len(imported), filename)
}
