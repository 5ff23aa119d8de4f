package gts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnDeved/gts-go/internal/pkm"
	"github.com/JohnDeved/gts-go/internal/pkmtype"
)

func sampleGen4Pokemon(t *testing.T) *pkm.Pokemon {
	t.Helper()
	p := &pkm.Pokemon{
		Species:       1,
		TrainerID:     12345,
		SecretID:      54321,
		Language:      pkmtype.English,
		Gender:        pkmtype.Male,
		Nickname:      "BULBASAUR",
		OriginGame:    pkmtype.Diamond,
		TrainerName:   "ASH",
		Ball:          pkmtype.PokeBall,
		TrainerGender: pkmtype.Male,
	}
	p.SetPID(0x1A000)
	return p
}

func TestGTSDataSerialize_Gen4(t *testing.T) {
	p := sampleGen4Pokemon(t)
	d := FromPokemon(p)
	assert.Equal(t, "Japan", d.Country)
	assert.Nil(t, d.TrainerSecretID)

	raw, err := d.Serialize(false)
	require.NoError(t, err)
	assert.Len(t, raw, gen4DataLen)
}

func TestGTSDataSerialize_Gen5RequiresSecretID(t *testing.T) {
	p := sampleGen4Pokemon(t)
	p.OriginGame = pkmtype.Black
	d := FromPokemon(p)
	require.NotNil(t, d.TrainerSecretID)
	require.NotNil(t, d.UnityTowerFloors)

	raw, err := d.Serialize(true)
	require.NoError(t, err)
	assert.Len(t, raw, gen5DataLen)
}

func TestReceptionSerialize_Gen4(t *testing.T) {
	p := sampleGen4Pokemon(t)
	r := NewReception(p)
	assert.False(t, r.IsGen5)

	raw, err := r.Serialize()
	require.NoError(t, err)
	assert.Len(t, raw, pkm.Gen4PartyLen+gen4DataLen)
}

func TestReceptionSerialize_Gen5PadsWireBody(t *testing.T) {
	p := sampleGen4Pokemon(t)
	p.OriginGame = pkmtype.Black
	r := NewReception(p)
	assert.True(t, r.IsGen5)

	raw, err := r.Serialize()
	require.NoError(t, err)
	assert.Len(t, raw, pkm.Gen5PartyLen+0x10+gen5DataLen)
}
