package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/daybook/internal/journal"
)

// FileName is the configuration file name inside the daybook config dir.
const FileName = "config.yaml"

// Config is the resolved application configuration.
type Config struct {
	// Journal is the path of the journal file.
	Journal string
	// Formatting holds the journal-level formatting options.
	Formatting journal.Config
}

// fileConfig is the on-disk YAML schema. Pointer fields distinguish absent
// keys from explicit zero values.
type fileConfig struct {
	Journal    string `yaml:"journal"`
	TagSymbols string `yaml:"tagsymbols"`
	TimeFormat string `yaml:"timeformat"`
	LineWrap   *int   `yaml:"linewrap"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Journal:    DefaultJournalPath(),
		Formatting: journal.DefaultConfig(),
	}
}

// DefaultJournalPath returns ~/journal.txt, or journal.txt in the working
// directory when the home directory cannot be resolved.
func DefaultJournalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "journal.txt"
	}
	return filepath.Join(home, "journal.txt")
}

// Load reads config.yaml from dir. A missing file yields the defaults;
// absent keys keep their default values and unknown keys are ignored.
func Load(dir string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if fc.Journal != "" {
		cfg.Journal = ExpandHome(fc.Journal)
	}
	if fc.TagSymbols != "" {
		cfg.Formatting.TagSymbols = fc.TagSymbols
	}
	if fc.TimeFormat != "" {
		cfg.Formatting.TimeFormat = fc.TimeFormat
	}
	if fc.LineWrap != nil {
		cfg.Formatting.LineWrap = *fc.LineWrap
	}
	return cfg, nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
