package report

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// fallbackDirName sits under the user home when the requested export
// directory cannot be created. The report is written there instead of
// failing the run.
const fallbackDirName = "backrep-reports"

// EnsureExportDir makes sure a writable export directory exists. It
// returns the directory to use and whether the fallback was taken; the
// caller is expected to warn the user when it was.
func EnsureExportDir(requested string) (string, bool, error) {
	if err := os.MkdirAll(requested, 0755); err == nil {
		return requested, false, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, fmt.Errorf("failed to create export directory %q and no home directory for fallback: %w", requested, err)
	}
	fallback := filepath.Join(home, fallbackDirName)
	if err := os.MkdirAll(fallback, 0755); err != nil {
		return "", false, fmt.Errorf("failed to create export directory %q and fallback %q: %w", requested, fallback, err)
	}
	return fallback, true, nil
}

// RevealFolder opens the directory in the OS file manager. Best effort:
// callers ignore the error in headless environments.
func RevealFolder(dir string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", dir)
	case "windows":
		cmd = exec.Command("explorer", dir)
	case "linux":
		cmd = exec.Command("xdg-open", dir)
	default:
		return fmt.Errorf("folder reveal is not supported on %s", runtime.GOOS)
	}
	return cmd.Start()
}
