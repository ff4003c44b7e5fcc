package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cluedo-dealer/internal/cards"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// GameConfig holds the static definitions for a game of Cluedo.
type GameConfig struct {
	Suspects []string `json:"suspects" hcl:"suspects"`
	Weapons  []string `json:"weapons" hcl:"weapons"`
	Rooms    []string `json:"rooms" hcl:"rooms"`

	// ActiveSeats names the seats playing when none are given on the command line.
	ActiveSeats          []string `json:"active_seats,omitempty" hcl:"active_seats,optional"`
	CaseInsensitiveSeats bool     `json:"case_insensitive_seats,omitempty" hcl:"case_insensitive_seats,optional"`
	StrictSeats          bool     `json:"strict_seats,omitempty" hcl:"strict_seats,optional"`
}

// Load reads and parses the game configuration from a .json or .hcl file.
func Load(path string) (*GameConfig, error) {
	var cfg GameConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}
		diags = gohcl.DecodeBody(file.Body, nil, &cfg)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode JSON: %w", err)
		}
	}

	sort.Strings(cfg.Suspects)
	sort.Strings(cfg.Weapons)
	sort.Strings(cfg.Rooms)
	return &cfg, nil
}

// Universe validates the card lists and builds the card universe from them.
func (c *GameConfig) Universe() (*cards.Universe, error) {
	return cards.NewUniverse(
		c.CardListForCategory(cards.CategorySuspect),
		c.CardListForCategory(cards.CategoryWeapon),
		c.CardListForCategory(cards.CategoryRoom),
	)
}

// DeepCopy creates a new GameConfig with all slices copied to prevent shared state.
func (c *GameConfig) DeepCopy() *GameConfig {
	newCfg := *c
	newCfg.Suspects = append([]string(nil), c.Suspects...)
	newCfg.Weapons = append([]string(nil), c.Weapons...)
	newCfg.Rooms = append([]string(nil), c.Rooms...)
	newCfg.ActiveSeats = append([]string(nil), c.ActiveSeats...)
	return &newCfg
}

// CardListForCategory is a helper to get the correct card list from the config.
func (c *GameConfig) CardListForCategory(cat cards.Category) []string {
	switch cat {
	case cards.CategorySuspect:
		return c.Suspects
	case cards.CategoryWeapon:
		return c.Weapons
	case cards.CategoryRoom:
		return c.Rooms
	default:
		return nil
	}
}
