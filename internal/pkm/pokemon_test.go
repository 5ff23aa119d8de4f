package pkm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnDeved/gts-go/internal/pkmtype"
)

func sampleBoxed(t *testing.T) *Pokemon {
	t.Helper()
	p := &Pokemon{
		Species:       1, // Bulbasaur.
		Item:          0,
		TrainerID:     12345,
		SecretID:      54321,
		Experience:    1000,
		Friendship:    70,
		AbilitySlot:   0,
		Language:      pkmtype.English,
		EVs:           pkmtype.Stats{HP: 4, Atk: 0, Def: 0, Spe: 0, SpA: 0, SpD: 0},
		IVs:           pkmtype.Stats{HP: 31, Atk: 31, Def: 31, Spe: 31, SpA: 31, SpD: 31},
		Gender:        pkmtype.Male,
		Nickname:      "BULBASAUR",
		OriginGame:    pkmtype.Diamond,
		TrainerName:   "ASH",
		Ball:          pkmtype.PokeBall,
		TrainerGender: pkmtype.Male,
	}
	p.SetPID(0x1A000) // mod 25 == 0 (Hardy), matches shuffle order test's PID family.
	return p
}

// Property 1 (spec.md §8): Deserialize(Serialize(p)) reproduces p's
// fields exactly. A boxed source record (p.IsParty false) gets its
// Level/Stats derived by Serialize -- party-stat derivation, per
// spec.md §4.2 -- so the round trip always comes back as a party
// record with non-zero derived stats.
func TestSerializeDeserializeRoundTrip_Boxed(t *testing.T) {
	p := sampleBoxed(t)
	raw, err := p.Serialize()
	require.NoError(t, err)
	assert.Len(t, raw, Gen4PartyLen)

	got, err := Deserialize(raw)
	require.NoError(t, err)

	assert.Equal(t, p.PID, got.PID)
	assert.Equal(t, p.Species, got.Species)
	assert.Equal(t, p.TrainerID, got.TrainerID)
	assert.Equal(t, p.SecretID, got.SecretID)
	assert.Equal(t, p.Nickname, got.Nickname)
	assert.Equal(t, p.TrainerName, got.TrainerName)
	assert.Equal(t, p.IVs, got.IVs)
	assert.Equal(t, p.EVs, got.EVs)
	assert.Equal(t, p.Gender, got.Gender)
	assert.Equal(t, p.Nature.ID, got.Nature.ID)
	assert.True(t, got.IsParty)
	assert.NotZero(t, got.Level)
	assert.Equal(t, got.Stats.HP, got.CurrentHP)
	assert.NotZero(t, got.Stats.HP)
}

// Property 1 for a Gen-4 party record: the stat block and PartyTail must
// survive untouched.
func TestSerializeDeserializeRoundTrip_Gen4Party(t *testing.T) {
	p := sampleBoxed(t)
	p.IsParty = true
	p.Level = 36
	p.CurrentHP = 90
	p.Stats = pkmtype.Stats{HP: 90, Atk: 60, Def: 55, Spe: 58, SpA: 65, SpD: 64}
	p.PartyTail = make([]byte, Gen4PartyLen-offStatsBlock-12)
	for i := range p.PartyTail {
		p.PartyTail[i] = byte(i + 1)
	}

	raw, err := p.Serialize()
	require.NoError(t, err)
	assert.Len(t, raw, Gen4PartyLen)

	got, err := Deserialize(raw)
	require.NoError(t, err)
	assert.True(t, got.IsParty)
	assert.Equal(t, p.Level, got.Level)
	assert.Equal(t, p.CurrentHP, got.CurrentHP)
	assert.Equal(t, p.Stats, got.Stats)
	assert.Equal(t, p.PartyTail, got.PartyTail)
}

// ToWire/FromWire must round-trip a plain record through both the
// encrypted and the encryption-bypass packaging (spec.md §4.4).
func TestToWireFromWireRoundTrip(t *testing.T) {
	p := sampleBoxed(t)
	plain, err := p.Serialize()
	require.NoError(t, err)

	for _, bypass := range []bool{false, true} {
		wire := ToWire(plain, bypass)
		assert.NotEqual(t, plain, wire)
		back := FromWire(wire)
		assert.Equal(t, plain, back)
	}
}

func TestDeserializeRejectsBadLength(t *testing.T) {
	_, err := Deserialize(make([]byte, 10))
	assert.ErrorIs(t, err, ErrMalformedLength)
}
