/* pkg/logger/paths.go */

package logger

import (
	"os"
	"path/filepath"
	"runtime"

	cerr "github.com/cockroachdb/errors"
)

const logFileName = "keysmith.log"

// PlatformLogPaths returns candidate log paths in order of priority.
func PlatformLogPaths() []string {
	switch runtime.GOOS {
	case "darwin", "linux":
		return []string{
			xdgStatePath(logFileName),             // user-local, e.g. ~/.local/state/keysmith/keysmith.log
			filepath.Join(".", logFileName),       // current working dir, ideal for devs
			filepath.Join(os.TempDir(), "keysmith", logFileName), // ephemeral
		}
	case "windows":
		return []string{
			filepath.Join(os.Getenv("LOCALAPPDATA"), "keysmith", logFileName),
			filepath.Join(".", logFileName),
		}
	default:
		return []string{filepath.Join(".", logFileName)}
	}
}

// FindWritableLogPath returns the first candidate whose directory exists or
// can be created with owner-only permissions.
func FindWritableLogPath() (string, error) {
	for _, path := range PlatformLogPaths() {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0700); err != nil {
			continue
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			continue
		}
		file.Close()
		return path, nil
	}
	return "", cerr.New("no writable log path found")
}

func xdgStatePath(name string) string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "keysmith", name)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", name)
	}
	return filepath.Join(home, ".local", "state", "keysmith", name)
}
