package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ViewState is the last address shown, persisted across runs
type ViewState struct {
	Address string    `toml:"address"`
	SavedAt time.Time `toml:"saved_at"`
}

// LoadViewState reads the state file. A missing file yields nil without error.
func LoadViewState(path string) (*ViewState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var vs ViewState
	if err := toml.Unmarshal(data, &vs); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	return &vs, nil
}

// SaveViewState writes the state file, creating its directory if needed
func SaveViewState(path string, vs ViewState) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := toml.Marshal(vs)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}
