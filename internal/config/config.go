// Package config loads session configuration from HCL files: one table
// block plus any number of named opponent blocks.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/dquillman/Q-Poker/internal/game"
)

// Config is the complete session configuration.
type Config struct {
	Table     *TableSettings   `hcl:"table,block"`
	Opponents []OpponentConfig `hcl:"opponent,block"`
}

// TableSettings contains table-level configuration.
type TableSettings struct {
	SmallBlind    int    `hcl:"small_blind,optional"`
	BigBlind      int    `hcl:"big_blind,optional"`
	StartingChips int    `hcl:"starting_chips,optional"`
	MaxHands      int    `hcl:"max_hands,optional"`
	ActionDelayMs int    `hcl:"action_delay_ms,optional"`
	PlayerName    string `hcl:"player_name,optional"`
	LogLevel      string `hcl:"log_level,optional"`
}

// OpponentConfig defines one scripted opponent and its playing traits.
// Traits are scalars in [0,1].
type OpponentConfig struct {
	Name           string  `hcl:"name,label"`
	Tightness      float64 `hcl:"tightness,optional"`
	Aggression     float64 `hcl:"aggression,optional"`
	BluffFrequency float64 `hcl:"bluff_frequency,optional"`
}

// Default returns the configuration used when no file is present: a 5/10
// table and three opponents with distinct temperaments.
func Default() *Config {
	return &Config{
		Table: &TableSettings{
			SmallBlind:    5,
			BigBlind:      10,
			StartingChips: 1000,
			PlayerName:    "You",
			LogLevel:      "info",
		},
		Opponents: []OpponentConfig{
			{Name: "Rock", Tightness: 0.8, Aggression: 0.2, BluffFrequency: 0.02},
			{Name: "Gambler", Tightness: 0.2, Aggression: 0.7, BluffFrequency: 0.2},
			{Name: "Steady", Tightness: 0.5, Aggression: 0.5, BluffFrequency: 0.1},
		},
	}
}

// Load reads configuration from an HCL file. A missing file is not an
// error: the defaults apply.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults for anything omitted.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if config.Table == nil {
		config.Table = defaults.Table
	} else {
		if config.Table.SmallBlind == 0 {
			config.Table.SmallBlind = defaults.Table.SmallBlind
		}
		if config.Table.BigBlind == 0 {
			config.Table.BigBlind = defaults.Table.BigBlind
		}
		if config.Table.StartingChips == 0 {
			config.Table.StartingChips = defaults.Table.StartingChips
		}
		if config.Table.PlayerName == "" {
			config.Table.PlayerName = defaults.Table.PlayerName
		}
		if config.Table.LogLevel == "" {
			config.Table.LogLevel = defaults.Table.LogLevel
		}
	}
	if len(config.Opponents) == 0 {
		config.Opponents = defaults.Opponents
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks blinds, stacks and trait ranges.
func (c *Config) Validate() error {
	t := c.Table
	if t.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive, got %d", t.SmallBlind)
	}
	if t.BigBlind <= t.SmallBlind {
		return fmt.Errorf("big blind (%d) must be greater than small blind (%d)", t.BigBlind, t.SmallBlind)
	}
	if t.StartingChips < t.BigBlind {
		return fmt.Errorf("starting chips (%d) must cover the big blind (%d)", t.StartingChips, t.BigBlind)
	}
	if t.MaxHands < 0 {
		return fmt.Errorf("max hands cannot be negative, got %d", t.MaxHands)
	}
	if len(c.Opponents) == 0 {
		return fmt.Errorf("at least one opponent must be configured")
	}
	for _, o := range c.Opponents {
		for name, v := range map[string]float64{
			"tightness":       o.Tightness,
			"aggression":      o.Aggression,
			"bluff_frequency": o.BluffFrequency,
		} {
			if v < 0 || v > 1 {
				return fmt.Errorf("opponent %s: %s must be in [0,1], got %g", o.Name, name, v)
			}
		}
	}
	return nil
}

// BuildPlayers seats the controlled player first, then the configured
// opponents, all with the table's starting stack.
func (c *Config) BuildPlayers() []*game.Player {
	players := make([]*game.Player, 0, len(c.Opponents)+1)
	players = append(players, &game.Player{
		Seat:       0,
		Name:       c.Table.PlayerName,
		Chips:      c.Table.StartingChips,
		Controlled: true,
	})
	for i, o := range c.Opponents {
		players = append(players, &game.Player{
			Seat:  i + 1,
			Name:  o.Name,
			Chips: c.Table.StartingChips,
			Traits: game.Traits{
				Tightness:      o.Tightness,
				Aggression:     o.Aggression,
				BluffFrequency: o.BluffFrequency,
			},
		})
	}
	return players
}
