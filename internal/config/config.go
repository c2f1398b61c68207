package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/andyrewlee/gridpad/internal/embed"
	"github.com/andyrewlee/gridpad/internal/rank"
)

// KeyMapConfig holds user overrides for keybindings.
type KeyMapConfig struct {
	Bindings map[string][]string `json:"bindings,omitempty"`
}

// BindingFor returns the configured keys for an action, if present.
func (k KeyMapConfig) BindingFor(action string) ([]string, bool) {
	if len(k.Bindings) == 0 {
		return nil, false
	}
	if keys, ok := k.Bindings[action]; ok {
		return keys, true
	}
	if keys, ok := k.Bindings[strings.ToLower(action)]; ok {
		return keys, true
	}
	return nil, false
}

// Search modes.
const (
	SearchSubstring = "substring"
	SearchFuzzy     = "fuzzy"
)

// GridConfig controls how the sheet is displayed.
type GridConfig struct {
	ColumnWidth    int
	ShowRowNumbers bool
}

// PollConfig describes the background endpoint poll.
type PollConfig struct {
	Enabled  bool
	URL      string
	Interval time.Duration
	Timeout  time.Duration
	// TokenAccount names the keychain entry holding an optional bearer token.
	TokenAccount string
}

// PassagesConfig points at the embeddings endpoint used for passage search.
type PassagesConfig struct {
	EmbedURL string
	Model    string
	Timeout  time.Duration
	Top      int
	Method   string
}

// SearchConfig holds the autocomplete word list.
type SearchConfig struct {
	Items []string
	Mode  string
}

// Config holds the application configuration
type Config struct {
	Paths    *Paths
	DataPath string
	LogLevel string
	Grid     GridConfig
	Poll     PollConfig
	Search   SearchConfig
	Passages PassagesConfig
	KeyMap   KeyMapConfig
	UI       UISettings
}

// DefaultSearchItems is the built-in suggestion list.
var DefaultSearchItems = []string{"Apple", "Banana", "Orange", "Mango", "Grapes"}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}

	return &Config{
		Paths:    paths,
		LogLevel: "debug",
		Grid: GridConfig{
			ColumnWidth:    10,
			ShowRowNumbers: true,
		},
		Poll: PollConfig{
			Enabled:      true,
			URL:          "http://127.0.0.1:8000/data.php",
			Interval:     5 * time.Second,
			Timeout:      4 * time.Second,
			TokenAccount: "default",
		},
		Search: SearchConfig{
			Items: append([]string(nil), DefaultSearchItems...),
			Mode:  SearchSubstring,
		},
		Passages: PassagesConfig{
			EmbedURL: embed.DefaultURL,
			Model:    embed.DefaultModel,
			Timeout:  30 * time.Second,
			Top:      5,
			Method:   string(rank.Cosine),
		},
		KeyMap: KeyMapConfig{},
		UI:     defaultUISettings(),
	}, nil
}

// fileConfig mirrors config.json. Pointer fields distinguish "unset" from zero.
type fileConfig struct {
	DataPath  *string `json:"data_path"`
	ExportDir *string `json:"export_dir"`
	LogLevel  *string `json:"log_level"`
	Grid      struct {
		ColumnWidth    *int  `json:"column_width"`
		ShowRowNumbers *bool `json:"show_row_numbers"`
	} `json:"grid"`
	Poll struct {
		Enabled      *bool   `json:"enabled"`
		URL          *string `json:"url"`
		IntervalMs   *int    `json:"interval_ms"`
		TimeoutMs    *int    `json:"timeout_ms"`
		TokenAccount *string `json:"token_account"`
	} `json:"poll"`
	Search struct {
		Items []string `json:"items"`
		Mode  *string  `json:"mode"`
	} `json:"search"`
	Passages struct {
		DBPath    *string `json:"db_path"`
		EmbedURL  *string `json:"embed_url"`
		Model     *string `json:"model"`
		TimeoutMs *int    `json:"timeout_ms"`
		Top       *int    `json:"top"`
		Method    *string `json:"method"`
	} `json:"passages"`
	KeyMap KeyMapConfig `json:"keymap,omitempty"`
}

// Load loads config overrides from ~/.gridpad/config.json if present.
func Load() (*Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.applyFile(cfg.Paths.ConfigPath); err != nil {
		return nil, err
	}
	cfg.UI = loadUISettings(cfg.Paths.ConfigPath)
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var user fileConfig
	if err := json.Unmarshal(data, &user); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if user.DataPath != nil {
		c.DataPath = *user.DataPath
	}
	if user.ExportDir != nil && *user.ExportDir != "" {
		c.Paths.ExportDir = *user.ExportDir
	}
	if user.LogLevel != nil {
		c.LogLevel = *user.LogLevel
	}
	if v := user.Grid.ColumnWidth; v != nil && *v >= 3 {
		c.Grid.ColumnWidth = *v
	}
	if v := user.Grid.ShowRowNumbers; v != nil {
		c.Grid.ShowRowNumbers = *v
	}
	if v := user.Poll.Enabled; v != nil {
		c.Poll.Enabled = *v
	}
	if v := user.Poll.URL; v != nil {
		c.Poll.URL = strings.TrimSpace(*v)
	}
	if v := user.Poll.IntervalMs; v != nil && *v > 0 {
		c.Poll.Interval = time.Duration(*v) * time.Millisecond
	}
	if v := user.Poll.TimeoutMs; v != nil && *v > 0 {
		c.Poll.Timeout = time.Duration(*v) * time.Millisecond
	}
	if v := user.Poll.TokenAccount; v != nil {
		c.Poll.TokenAccount = *v
	}
	if len(user.Search.Items) > 0 {
		c.Search.Items = user.Search.Items
	}
	if v := user.Search.Mode; v != nil {
		switch strings.ToLower(*v) {
		case SearchFuzzy:
			c.Search.Mode = SearchFuzzy
		case SearchSubstring:
			c.Search.Mode = SearchSubstring
		default:
			return fmt.Errorf("parse %s: unknown search mode %q", path, *v)
		}
	}
	if v := user.Passages.DBPath; v != nil && *v != "" {
		c.Paths.PassagesDB = *v
	}
	if v := user.Passages.EmbedURL; v != nil && strings.TrimSpace(*v) != "" {
		c.Passages.EmbedURL = strings.TrimSpace(*v)
	}
	if v := user.Passages.Model; v != nil && *v != "" {
		c.Passages.Model = *v
	}
	if v := user.Passages.TimeoutMs; v != nil && *v > 0 {
		c.Passages.Timeout = time.Duration(*v) * time.Millisecond
	}
	if v := user.Passages.Top; v != nil && *v > 0 {
		c.Passages.Top = *v
	}
	if v := user.Passages.Method; v != nil {
		m, err := rank.ParseMethod(*v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		c.Passages.Method = string(m)
	}
	if len(user.KeyMap.Bindings) > 0 {
		c.KeyMap = user.KeyMap
	}
	return nil
}
