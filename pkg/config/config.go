package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the per-batch settings an operator edits between trade shows.
type Config struct {
	SalesTeam string `toml:"sales_team"`
	Tag       string `toml:"tag"`
	OutputDir string `toml:"output_dir"`

	// SalesReps maps a filename prefix to the salesperson's full name.
	SalesReps map[string]string `toml:"sales_reps"`

	Exclusions Exclusions `toml:"exclusions"`

	// SizeAliases maps exact header spellings to canonical size abbreviations,
	// consulted before token matching. New spreadsheet variants get an entry
	// here instead of a code change.
	SizeAliases map[string]string `toml:"size_aliases"`

	// SizeFallbacks are directed substitutions tried when an exact
	// (parent, size) lookup misses. Directed: S→SM does not imply SM→S.
	SizeFallbacks map[string]string `toml:"size_fallbacks"`
}

// Exclusions configures which master rows are dropped before indexing.
type Exclusions struct {
	StatusColumns []string `toml:"status_columns"`
	StatusValue   string   `toml:"status_value"`
	Collection    string   `toml:"collection"`
	SKUSubstring  string   `toml:"sku_substring"`
}

// Default returns the built-in configuration, matching the current wholesale
// batch setup.
func Default() Config {
	return Config{
		SalesTeam: "Wholesale",
		Tag:       "SURFJAN26",
		OutputDir: "output",
		SalesReps: map[string]string{
			"JC":  "Jada Claiborne",
			"JC1": "Janelle Clasby",
			"AK":  "Alyssa Kallal",
			"AG":  "Angela Gonzales",
			"CF":  "Christina Freberg",
		},
		Exclusions: Exclusions{
			StatusColumns: []string{"Season", "FAHO24 Status", "SPSU25 Status", "FAHO25 Status", "SPSU26 Status"},
			StatusValue:   "EXCLUSIVE",
			Collection:    "HAREM PANTS",
			SKUSubstring:  "HIC",
		},
		SizeAliases: map[string]string{
			"S (SM)":  "S",
			"L (LXL)": "L",
		},
		SizeFallbacks: map[string]string{
			"S": "SM",
			"L": "LXL",
		},
	}
}

// Load reads a TOML config file, filling unset fields from Default. A missing
// file is not an error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.SalesTeam == "" {
		cfg.SalesTeam = Default().SalesTeam
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = Default().OutputDir
	}
	return cfg, nil
}
