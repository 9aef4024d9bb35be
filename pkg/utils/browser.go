package utils

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenBrowserURL opens the URL with the platform's default handler.
func OpenBrowserURL(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	Log.Debug("opening url", "url", url)
	return cmd.Start()
}
