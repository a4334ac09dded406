package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/misterclayt0n/overload/internal/models"
)

// SessionDir is where the current session file lives. Tests point it
// elsewhere.
var SessionDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "overload"), nil
}

func getSessionPath() (string, error) {
	dir, err := SessionDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "current_session.toml"), nil
}

func SaveSessionState(state *models.SessionState) error {
	path, err := getSessionPath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(state)
}

func LoadSessionState() (*models.SessionState, error) {
	path, err := getSessionPath()
	if err != nil {
		return nil, err
	}

	var state models.SessionState
	if _, err := toml.DecodeFile(path, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// ClearSessionState removes the session file. Clearing with no session is
// not an error.
func ClearSessionState() error {
	path, err := getSessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func SessionExists() bool {
	path, err := getSessionPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}
