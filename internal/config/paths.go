package config

import (
	"os"
	"path/filepath"
	"strings"
)

// homeEnv overrides the gridpad home directory (used by tests and CI).
const homeEnv = "GRIDPAD_HOME"

// Paths holds all the file system paths used by the application
type Paths struct {
	Home       string // ~/.gridpad
	ConfigPath string // ~/.gridpad/config.json
	LogDir     string // ~/.gridpad/logs
	PassagesDB string // ~/.gridpad/passages.db
	ExportDir  string // where raw selection exports land; defaults to the working directory
}

// DefaultPaths returns the default paths configuration
func DefaultPaths() (*Paths, error) {
	root := strings.TrimSpace(os.Getenv(homeEnv))
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		root = filepath.Join(home, ".gridpad")
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = root
	}

	return &Paths{
		Home:       root,
		ConfigPath: filepath.Join(root, "config.json"),
		LogDir:     filepath.Join(root, "logs"),
		PassagesDB: filepath.Join(root, "passages.db"),
		ExportDir:  cwd,
	}, nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Home,
		p.LogDir,
		p.ExportDir,
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}
