package gts

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/JohnDeved/gts-go/internal/pkm"
)

// Deposit is a Pokémon received from a game's GTS deposit, plus the two
// header fields the wire format carries but this system has no use for
// (kept for reference, mirroring gts-rs's GTSDeposit).
type Deposit struct {
	GTSChecksum uint32
	ProfileID   uint32
	Pokemon     *pkm.Pokemon
}

// DepositFromBase64 decodes a URL-safe Base64 deposit payload per
// spec.md §4.5: XOR the leading checksum with the generation constant,
// run the Gen-4-only secondary stream cipher, slice out the inner
// Pokémon blob, and decode it through the record codec.
func DepositFromBase64(encoded string, isGen5 bool) (*Deposit, error) {
	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: base64 decode failed: %v", ErrMalformedDeposit, err)
	}
	if len(raw) < 4 {
		return nil, fmt.Errorf("%w: payload too short (%d bytes)", ErrMalformedDeposit, len(raw))
	}

	xorConstant := uint32(gen4XorConstant)
	if isGen5 {
		xorConstant = gen5XorConstant
	}
	gtsChecksum := binary.BigEndian.Uint32(raw[0:4]) ^ xorConstant

	body := raw
	pkmOffset, pkmEnd := gen5PkmOffset, gen5PkmEnd
	if !isGen5 {
		if len(raw) < gen4DepositBodyEnd {
			return nil, fmt.Errorf("%w: Gen-4 payload too short (%d bytes)", ErrMalformedDeposit, len(raw))
		}
		seed := gtsChecksum | gtsChecksum<<16
		body = decryptSecondaryCipher(raw[gen4DepositBodyOff:gen4DepositBodyEnd], seed)
		pkmOffset, pkmEnd = gen4PkmOffset, gen4PkmEnd
	}

	if len(body) < pkmEnd {
		return nil, fmt.Errorf("%w: decrypted body too short (%d bytes)", ErrMalformedDeposit, len(body))
	}
	profileID := binary.LittleEndian.Uint32(body[0:4])

	plain := pkm.FromWire(body[pkmOffset:pkmEnd])
	pokemon, err := pkm.Deserialize(plain)
	if err != nil {
		return nil, err
	}

	return &Deposit{GTSChecksum: gtsChecksum, ProfileID: profileID, Pokemon: pokemon}, nil
}

// decryptSecondaryCipher runs the Gen-4 deposit's header cipher (spec.md
// §4.5): a word-sized LCG producing a bytewise keystream, distinct from
// the block-shuffle cipher in internal/pkm/cipher.go.
func decryptSecondaryCipher(encrypted []byte, state uint32) []byte {
	out := make([]byte, len(encrypted))
	for i, b := range encrypted {
		state = (state*0x45 + 0x1111) & 0x7FFFFFFF
		keybyte := uint8(state >> 16)
		out[i] = b ^ keybyte
	}
	return out
}
