package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadExplicitConfig(t *testing.T) {
	dir := t.TempDir()
	stylesPath := filepath.Join(dir, "styles.json")
	configPath := filepath.Join(dir, "config.json")

	raw := map[string]any{
		"todo_file":   "/tasks/todo.txt",
		"styles_file": stylesPath,
		"keymap":      map[string]string{"Quit": "x"},
	}
	data, _ := json.Marshal(raw)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, styles, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TodoFile != "/tasks/todo.txt" {
		t.Errorf("TodoFile = %q", cfg.TodoFile)
	}
	if cfg.KeyMap["Quit"] != "x" {
		t.Errorf("KeyMap override lost: %v", cfg.KeyMap)
	}
	// First load creates the styles file with defaults.
	if _, err := os.Stat(stylesPath); err != nil {
		t.Errorf("styles file not created: %v", err)
	}
	if len(styles.PriorityColors) != 5 {
		t.Errorf("priority palette = %v", styles.PriorityColors)
	}
}

func TestLoadStylesReadsExisting(t *testing.T) {
	dir := t.TempDir()
	stylesPath := filepath.Join(dir, "styles.json")

	custom := DefaultStyles()
	custom.AccentColor = "99"
	data, _ := json.MarshalIndent(custom, "", "  ")
	if err := os.WriteFile(stylesPath, data, 0644); err != nil {
		t.Fatal(err)
	}

	styles, err := loadStyles(stylesPath)
	if err != nil {
		t.Fatalf("loadStyles: %v", err)
	}
	if styles.AccentColor != "99" {
		t.Errorf("AccentColor = %q, want 99", styles.AccentColor)
	}
}

func TestLoadStylesFillsEmptyPalette(t *testing.T) {
	dir := t.TempDir()
	stylesPath := filepath.Join(dir, "styles.json")
	if err := os.WriteFile(stylesPath, []byte(`{"accent_color":"1"}`), 0644); err != nil {
		t.Fatal(err)
	}

	styles, err := loadStyles(stylesPath)
	if err != nil {
		t.Fatalf("loadStyles: %v", err)
	}
	if len(styles.PriorityColors) != 5 {
		t.Errorf("empty palette not defaulted: %v", styles.PriorityColors)
	}
}
