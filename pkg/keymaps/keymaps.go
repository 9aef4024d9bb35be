package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"CursorUp":      {"k,up", "move up"},
	"CursorDown":    {"j,down", "move down"},
	"Home":          {"home", "jump to first item"},
	"End":           {"end", "jump to last item"},
	"Filter":        {"/", "edit filter"},
	"Quit":          {"q,esc", "clear filter / quit"},
	"Reload":        {"r", "reload file"},
	"Edit":          {"e", "open in editor"},
	"OpenURL":       {"n", "open url in item"},
	"MarkDone":      {"d", "mark done"},
	"IncPriority":   {"=", "next priority"},
	"DecPriority":   {"-", "previous priority"},
	"ClearPriority": {"0", "clear priority"},
	"Dialog":        {"space,enter", "item actions"},
	"ToggleSort":    {"s", "toggle priority sort"},
	"ShowHelp":      {"ctrl+b", "show/hide commands"},
}

type KeyMap struct {
	CursorUp      key.Binding
	CursorDown    key.Binding
	Home          key.Binding
	End           key.Binding
	Filter        key.Binding
	Quit          key.Binding
	Reload        key.Binding
	Edit          key.Binding
	OpenURL       key.Binding
	MarkDone      key.Binding
	IncPriority   key.Binding
	DecPriority   key.Binding
	ClearPriority key.Binding
	Dialog        key.Binding
	ToggleSort    key.Binding
	ShowHelp      key.Binding
}

// BuildKeyMap resolves the default definitions against config overrides.
func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		switch action {
		case "CursorUp":
			km.CursorUp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CursorDown":
			km.CursorDown = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Home":
			km.Home = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "End":
			km.End = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Filter":
			km.Filter = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Quit":
			km.Quit = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Reload":
			km.Reload = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Edit":
			km.Edit = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "OpenURL":
			km.OpenURL = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "MarkDone":
			km.MarkDone = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "IncPriority":
			km.IncPriority = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "DecPriority":
			km.DecPriority = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ClearPriority":
			km.ClearPriority = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Dialog":
			km.Dialog = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleSort":
			km.ToggleSort = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ShowHelp":
			km.ShowHelp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		k = strings.TrimSpace(k)
		// Bubble Tea reports the space key as " ", which a comma-separated
		// config value cannot express.
		if k == "space" {
			k = " "
		}
		keys[i] = k
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
