package utils

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Log is the shared debug logger. It discards everything until InitLogger
// enables verbose mode, so callers can log unconditionally.
var (
	Log = log.NewWithOptions(io.Discard, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "lsi",
	})
	logFile *os.File
)

// InitLogger routes debug output to a dated file under /tmp when verbose
// mode is enabled. Terminal output would fight the TUI for the screen.
func InitLogger(verbose bool) {
	if !verbose {
		return
	}

	name := fmt.Sprintf("/tmp/lsi_%s.log", time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file: %v\n", err)
		return
	}
	logFile = f
	Log.SetOutput(f)
	Log.Debug("verbose logging enabled")
}

// CloseLogger closes the log file if one was opened.
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
		Log.SetOutput(io.Discard)
	}
}
