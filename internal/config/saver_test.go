package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnDeved/gts-go/internal/data"
	"github.com/JohnDeved/gts-go/internal/pkm"
	"github.com/JohnDeved/gts-go/internal/pkmtype"
)

func init() {
	data.Dir = "../../data"
}

func sampleTestPokemon(t *testing.T) *pkm.Pokemon {
	t.Helper()
	p := &pkm.Pokemon{
		Species:     1,
		TrainerID:   1,
		SecretID:    2,
		Language:    pkmtype.English,
		Gender:      pkmtype.Male,
		Nickname:    "BULBASAUR",
		OriginGame:  pkmtype.Diamond,
		TrainerName: "ASH",
		Ball:        pkmtype.PokeBall,
	}
	p.SetPID(0x1A000)
	return p
}

func TestFileSaverSavesNewFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSaver(dir)
	require.NoError(t, err)

	saved, err := s.Save(sampleTestPokemon(t))
	require.NoError(t, err)
	assert.True(t, saved)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".pk4"))
}

func TestFileSaverSkipsIdenticalDeposit(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSaver(dir)
	require.NoError(t, err)

	p := sampleTestPokemon(t)
	saved, err := s.Save(p)
	require.NoError(t, err)
	require.True(t, saved)

	saved, err = s.Save(p)
	require.NoError(t, err)
	assert.False(t, saved)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileSaverWritesAtomicallyViaTempFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSaver(dir)
	require.NoError(t, err)

	_, err = s.Save(sampleTestPokemon(t))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".gtsd-save-"), "temp file left behind: %s", filepath.Join(dir, e.Name()))
	}
}
