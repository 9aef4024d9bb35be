package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"lsi/pkg/keymaps"
)

// Config holds the application configuration
type Config struct {
	TodoFile   string            `mapstructure:"todo_file" json:"todo_file"`
	KeyMap     map[string]string `mapstructure:"keymap" json:"keymap"`
	StylesFile string            `mapstructure:"styles_file" json:"styles_file"`
}

// Styles holds the application colors and styling information
type Styles struct {
	// Per-priority line colors: A, B, C, D, then everything else.
	PriorityColors []string `json:"priority_colors"`

	// Text colors
	NormalTextColor   string `json:"normal_text_color"`
	SelectedTextColor string `json:"selected_text_color"`
	SelectedBgColor   string `json:"selected_bg_color"`
	LineNumberColor   string `json:"line_number_color"`
	DoneColor         string `json:"done_color"`
	ErrorColor        string `json:"error_color"`
	AccentColor       string `json:"accent_color"`
	BorderColor       string `json:"border_color"`

	// Project and context colors
	ProjectColor string `json:"project_color"`
	ContextColor string `json:"context_color"`
}

// Load loads the application configuration from the specified path, creating
// a default config file on first run. An empty configPath means the default
// location under ~/.config/lsi.
func Load(configPath string) (Config, Styles, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, Styles{}, err
	}
	configDir := filepath.Join(homeDir, ".config", "lsi")

	config := Config{
		TodoFile:   "todo.txt",
		KeyMap:     keymaps.GetDefaultKeyMappings(),
		StylesFile: filepath.Join(configDir, "styles.json"),
	}

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return config, Styles{}, err
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && configPath == "" {
			// First run: write the defaults so the user has something to edit.
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return config, Styles{}, err
			}
			v.Set("todo_file", config.TodoFile)
			v.Set("keymap", config.KeyMap)
			v.Set("styles_file", config.StylesFile)
			if err := v.WriteConfigAs(filepath.Join(configDir, "config.json")); err != nil {
				return config, Styles{}, err
			}
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, Styles{}, fmt.Errorf("error parsing config: %w", err)
	}

	styles, err := loadStyles(config.StylesFile)
	if err != nil {
		return config, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return config, styles, nil
}

// DefaultStyles returns the built-in color scheme. The priority palette
// follows the classic lsi colors.
func DefaultStyles() Styles {
	return Styles{
		PriorityColors:    []string{"#F5D761", "#A4F54C", "#78C1F3", "#837CC5", "#CCCCCC"},
		NormalTextColor:   "#CCCCCC",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		LineNumberColor:   "240",
		DoneColor:         "243",
		ErrorColor:        "9",
		AccentColor:       "205",
		BorderColor:       "240",
		ProjectColor:      "2",
		ContextColor:      "4",
	}
}

// loadStyles loads the application styles from the specified path
func loadStyles(stylesPath string) (Styles, error) {
	defaultStyles := DefaultStyles()

	// Try to read the styles file
	stylesData, err := os.ReadFile(stylesPath)
	if err != nil {
		// If the file doesn't exist, create it with default values
		if os.IsNotExist(err) {
			stylesDir := filepath.Dir(stylesPath)
			if err := os.MkdirAll(stylesDir, 0755); err != nil {
				return defaultStyles, err
			}

			stylesData, err = json.MarshalIndent(defaultStyles, "", "  ")
			if err != nil {
				return defaultStyles, err
			}

			if err := os.WriteFile(stylesPath, stylesData, 0644); err != nil {
				return defaultStyles, err
			}

			return defaultStyles, nil
		}
		return defaultStyles, err
	}

	// File exists, parse it
	var loadedStyles Styles
	if err := json.Unmarshal(stylesData, &loadedStyles); err != nil {
		return defaultStyles, err
	}
	if len(loadedStyles.PriorityColors) == 0 {
		loadedStyles.PriorityColors = defaultStyles.PriorityColors
	}

	return loadedStyles, nil
}
