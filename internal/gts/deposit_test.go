package gts

import (
	"encoding/base64"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnDeved/gts-go/internal/pkm"
	"github.com/JohnDeved/gts-go/internal/pkmtype"
)

// asPartyRecord fills in the fields a 220-byte Gen-4 party record needs,
// since a GTS deposit always carries the in-battle form.
func asPartyRecord(p *pkm.Pokemon) *pkm.Pokemon {
	p.IsParty = true
	p.Level = 36
	p.CurrentHP = 90
	p.Stats = pkmtype.Stats{HP: 90, Atk: 60, Def: 55, Spe: 58, SpA: 65, SpD: 64}
	p.PartyTail = make([]byte, pkm.Gen4PartyLen-0x90-12)
	return p
}

// buildGen4Deposit assembles a Base64 deposit payload the way a DS
// cartridge would, so DepositFromBase64 can be exercised against known
// inputs without a real capture.
func buildGen4Deposit(t *testing.T, p *pkm.Pokemon, profileID uint32) string {
	t.Helper()
	plain, err := p.Serialize()
	require.NoError(t, err)
	wire := pkm.ToWire(plain, p.EncryptionBypass)
	require.Len(t, wire, gen4PkmEnd-gen4PkmOffset)

	body := make([]byte, gen4DepositBodyEnd-gen4DepositBodyOff)
	binary.LittleEndian.PutUint32(body[0:], profileID)
	copy(body[gen4PkmOffset:gen4PkmEnd], wire)

	var checksum uint32 = 0xCAFEBABE
	seed := checksum | checksum<<16
	encrypted := decryptSecondaryCipher(body, seed) // the cipher is its own inverse.

	raw := make([]byte, gen4DepositBodyOff+len(encrypted))
	binary.BigEndian.PutUint32(raw[0:], checksum^gen4XorConstant)
	copy(raw[gen4DepositBodyOff:], encrypted)

	return base64.URLEncoding.EncodeToString(raw)
}

func TestDepositFromBase64_Gen4(t *testing.T) {
	p := asPartyRecord(sampleGen4Pokemon(t))
	encoded := buildGen4Deposit(t, p, 0x11223344)

	dep, err := DepositFromBase64(encoded, false)
	require.NoError(t, err)
	assert.EqualValues(t, 0xCAFEBABE, dep.GTSChecksum)
	assert.EqualValues(t, 0x11223344, dep.ProfileID)
	assert.Equal(t, p.Species, dep.Pokemon.Species)
	assert.Equal(t, p.PID, dep.Pokemon.PID)
	assert.Equal(t, p.TrainerName, dep.Pokemon.TrainerName)
}

func TestDepositFromBase64_RejectsShortPayload(t *testing.T) {
	_, err := DepositFromBase64(base64.URLEncoding.EncodeToString([]byte{1, 2, 3}), false)
	assert.ErrorIs(t, err, ErrMalformedDeposit)
}

func TestDepositFromBase64_RejectsBadBase64(t *testing.T) {
	_, err := DepositFromBase64("not valid base64!!", false)
	assert.ErrorIs(t, err, ErrMalformedDeposit)
}
