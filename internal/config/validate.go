package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// MaxTableSeats is the most players a single 52-card deck can serve
// alongside the dealer.
const MaxTableSeats = 25

// StandardTableSeats is the seat count of a regular casino table
const StandardTableSeats = 7

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	Path    string
	Results ValidationResults
}

func NewValidator(path string) *Validator {
	return &Validator{
		Path:    path,
		Results: ValidationResults{},
	}
}

// Validate decodes the file and checks every setting. A file that cannot
// be read or parsed is returned as an error rather than a result.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.Path); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("config file not found: %s", v.Path)
	}

	config := Default()
	meta, err := toml.DecodeFile(v.Path, config)
	if err != nil {
		return v.Results, fmt.Errorf("error parsing %s: %w", v.Path, err)
	}

	for _, key := range meta.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("unknown key: %s", key.String()))
	}

	v.ValidateConfig(config)
	return v.Results, nil
}

// ValidateConfig checks an already decoded configuration.
func (v *Validator) ValidateConfig(c *Config) {
	if c.MinPlayers < 1 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("min_players must be at least 1, got %d", c.MinPlayers))
	}

	if c.MaxPlayers < c.MinPlayers {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("max_players (%d) must not be lower than min_players (%d)", c.MaxPlayers, c.MinPlayers))
	}

	if c.MaxPlayers > MaxTableSeats {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("max_players must not exceed %d, a single deck cannot deal more hands", MaxTableSeats))
	} else if c.MaxPlayers > StandardTableSeats {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("max_players %d is more than a standard table of %d seats", c.MaxPlayers, StandardTableSeats))
	}

	if !logLevels[c.LogLevel] {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("unsupported log_level: %q (supported: debug, info, warn, error)", c.LogLevel))
	}
}
