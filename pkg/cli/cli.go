package cli

import (
	"flag"
	"strings"

	"lsi/pkg/commands"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Verbose    bool

	// Session options
	File   string
	Simple bool
	Mouse  bool
	Watch  bool
	Filter string // positional: initial filter text

	// Task operations
	AddTask      string
	DateFlag     string
	PriorityFlag string

	// Archive operation
	Archive bool
	YesFlag bool

	// Import/Export operations
	ImportFile string
	ExportFile string
	TypeFlag   string
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	// Define command line flags
	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// Session options
	flag.StringVar(&args.File, "file", "", "Path to todo.txt file")
	flag.BoolVar(&args.Simple, "simple", false, "Plain display without colors")
	flag.BoolVar(&args.Mouse, "mouse", false, "Enable mouse support")
	flag.BoolVar(&args.Watch, "watch", false, "Reload when the file changes externally")

	// Task operations
	flag.StringVar(&args.AddTask, "add", "", "Add a new task and exit")
	flag.StringVar(&args.DateFlag, "date", "", "Creation date for -add (YYYY-MM-DD format)")
	flag.StringVar(&args.PriorityFlag, "pri", "", "Priority letter for -add (A-Z)")

	// Archive operation
	flag.BoolVar(&args.Archive, "archive", false, "Move completed tasks to done.txt and exit")
	flag.BoolVar(&args.YesFlag, "yes", false, "Skip confirmation")

	// Import/Export operations
	flag.StringVar(&args.ImportFile, "import", "", "Import tasks from a markdown checklist file")
	flag.StringVar(&args.ExportFile, "export", "", "Export tasks to file")
	flag.StringVar(&args.TypeFlag, "type", "json", "Export file type (json, txt)")

	flag.Parse()

	// Anything left over is the initial filter text
	args.Filter = strings.Join(flag.Args(), " ")

	return args
}

// HandleCommands processes CLI commands and returns true if a command was handled
func HandleCommands(todoPath string, args *Args) bool {
	if args.AddTask != "" {
		commands.HandleAddTask(todoPath, args.AddTask, args.PriorityFlag, args.DateFlag)
		return true
	}

	if args.Archive {
		commands.HandleArchiveCommand(todoPath, args.YesFlag)
		return true
	}

	if args.ImportFile != "" {
		commands.HandleImportCommand(todoPath, args.ImportFile)
		return true
	}

	if args.ExportFile != "" {
		commands.HandleExportCommand(todoPath, args.ExportFile, args.TypeFlag)
		return true
	}

	// No CLI command was handled
	return false
}
