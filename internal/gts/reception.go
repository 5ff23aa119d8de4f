package gts

import "github.com/JohnDeved/gts-go/internal/pkm"

// Reception is a Pokémon packaged for sending to a game: the encrypted
// record plus its GTS metadata, ready to serve as a result.asp body
// (spec.md §4.5, §6).
type Reception struct {
	Pokemon *pkm.Pokemon
	Data    *Data
	IsGen5  bool
}

// NewReception builds a Reception from p, synthesizing its GTS metadata
// via FromPokemon.
func NewReception(p *pkm.Pokemon) *Reception {
	return &Reception{
		Pokemon: p,
		Data:    FromPokemon(p),
		IsGen5:  p.IsGen5Boxed(),
	}
}

// Serialize encodes the full wire body: encrypted Pokémon record, a
// 0x10 zero-byte pad for Gen-5 only, then the serialized GTSData
// (spec.md §4.5).
func (r *Reception) Serialize() ([]byte, error) {
	plain, err := r.Pokemon.Serialize()
	if err != nil {
		return nil, err
	}
	wire := pkm.ToWire(plain, r.Pokemon.EncryptionBypass)

	out := append([]byte(nil), wire...)
	if r.IsGen5 {
		out = append(out, make([]byte, 0x10)...)
	}

	gtsData, err := r.Data.Serialize(r.IsGen5)
	if err != nil {
		return nil, err
	}
	return append(out, gtsData...), nil
}
