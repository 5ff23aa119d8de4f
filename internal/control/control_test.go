package control

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnDeved/gts-go/internal/chooser"
	"github.com/JohnDeved/gts-go/internal/data"
	"github.com/JohnDeved/gts-go/internal/pkm"
	"github.com/JohnDeved/gts-go/internal/pkmtype"
)

func init() {
	data.Dir = "../../data"
}

func TestHandlerStagesValidFile(t *testing.T) {
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
	raw, err := p.Serialize()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "bulbasaur.pkm")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	ch := chooser.New()
	srv := httptest.NewServer(Handler(ch))
	defer srv.Close()

	require.NoError(t, Stage(srv.Listener.Addr().String(), path))

	staged, ok := ch.Current()
	require.True(t, ok)
	assert.Equal(t, p.Species, staged.Species)
}

func TestHandlerRejectsUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-pokemon.txt")
	require.NoError(t, os.WriteFile(path, []byte("hi"), 0o644))

	ch := chooser.New()
	srv := httptest.NewServer(Handler(ch))
	defer srv.Close()

	err := Stage(srv.Listener.Addr().String(), path)
	assert.Error(t, err)

	_, ok := ch.Current()
	assert.False(t, ok)
}
