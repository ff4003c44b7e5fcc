package config

import (
	"os"
	"path/filepath"
	"testing"

	"cluedo-dealer/internal/cards"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultJSON(t *testing.T) {
	cfg, err := Load("../../default_config.json")
	require.NoError(t, err)

	t.Run("category lists are sorted", func(t *testing.T) {
		assert.Equal(t, "Colonel Mustard", cfg.Suspects[0])
		assert.Equal(t, "Ballroom", cfg.Rooms[0])
		assert.IsNonDecreasing(t, cfg.Weapons)
	})

	t.Run("it builds the reference universe", func(t *testing.T) {
		u, err := cfg.Universe()
		require.NoError(t, err)
		assert.Len(t, u.Cards(cards.CategorySuspect), 6)
		assert.Len(t, u.Cards(cards.CategoryWeapon), 5)
		assert.Len(t, u.Cards(cards.CategoryRoom), 9)
	})

	assert.Len(t, cfg.ActiveSeats, 6)
}

func TestLoadHCLMatchesJSON(t *testing.T) {
	jsonCfg, err := Load("../../default_config.json")
	require.NoError(t, err)
	hclCfg, err := Load(filepath.Join("testdata", "game.hcl"))
	require.NoError(t, err)

	assert.Equal(t, jsonCfg.Suspects, hclCfg.Suspects)
	assert.Equal(t, jsonCfg.Weapons, hclCfg.Weapons)
	assert.Equal(t, jsonCfg.Rooms, hclCfg.Rooms)
	assert.Equal(t, []string{"Scarlet", "Plum"}, hclCfg.ActiveSeats)
	assert.True(t, hclCfg.CaseInsensitiveSeats)
	assert.False(t, hclCfg.StrictSeats)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("malformed HCL", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.hcl")
		require.NoError(t, os.WriteFile(path, []byte("suspects = [\n"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("an empty category loads but cannot form a universe", func(t *testing.T) {
		cfg, err := Load(filepath.Join("testdata", "empty_weapons.json"))
		require.NoError(t, err)

		_, err = cfg.Universe()
		assert.ErrorIs(t, err, cards.ErrConfiguration)
	})
}

func TestDeepCopy(t *testing.T) {
	cfg, err := Load("../../default_config.json")
	require.NoError(t, err)

	cp := cfg.DeepCopy()
	cp.Suspects[0] = "Changed"
	cp.ActiveSeats[0] = "nobody"

	assert.Equal(t, "Colonel Mustard", cfg.Suspects[0])
	assert.Equal(t, "scarlet", cfg.ActiveSeats[0])
	assert.Equal(t, cfg.Rooms, cp.CardListForCategory(cards.CategoryRoom))
}
