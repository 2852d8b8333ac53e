// Package config resolves where worklog keeps its files and reads the
// user's settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
)

// AppName names the per-user configuration directory.
const AppName = "worklog"

// ErrNoHome is returned when no per-user directory can be determined.
var ErrNoHome = errors.New("could not determine a per-user configuration directory")

// Location is the per-user configuration directory. It is resolved once at
// startup and passed to whatever needs a path.
type Location struct {
	Dir string // e.g. ~/.config/worklog
}

// Resolve finds the configuration directory for app and creates it if
// needed. It is %APPDATA%\app on Windows and ~/.config/app elsewhere.
func Resolve(app string) (Location, error) {
	base, err := baseDir(runtime.GOOS)
	if err != nil {
		return Location{}, err
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Location{}, fmt.Errorf("could not create %s directory: %w", app, err)
	}
	return Location{Dir: dir}, nil
}

func baseDir(goos string) (string, error) {
	if goos == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("%w: APPDATA is not set", ErrNoHome)
		}
		return appData, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHome, err)
	}
	if home == "" {
		return "", ErrNoHome
	}
	return filepath.Join(home, ".config"), nil
}

// Path returns the path of name inside the directory.
func (l Location) Path(name string) string {
	return filepath.Join(l.Dir, name)
}
