package gts

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/JohnDeved/gts-go/internal/data"
	"github.com/JohnDeved/gts-go/internal/pkm"
	"github.com/JohnDeved/gts-go/internal/pkmtype"
)

// Data is the GTS metadata accompanying a Pokémon reception: who is
// sending it, to whom, and what the matchmaking "request" slot looks
// like. Grounded on gts-rs's GTSData (spec.md §4.5).
type Data struct {
	PkmID  uint16
	Gender pkmtype.Gender
	Level  uint8

	ReqPkmID  uint16
	ReqGender pkmtype.Gender
	ReqMin    uint8
	ReqMax    uint8

	TrainerGender pkmtype.Gender
	DepositedAt   time.Time
	TradedAt      time.Time
	ProfileID     uint32

	TrainerID       uint16
	TrainerSecretID *uint16 // non-nil only for Gen-5.
	TrainerName     string

	Country string
	Region  string

	TrainerClass pkmtype.TrainerClass
	IsExchanged  bool
	Game         pkmtype.Game
	Language     pkmtype.Language

	// UnityTowerFloors is Gen-5 only (non-nil), per spec.md §4.5; the
	// offsets at 0x09, 0x0B, and Gen-5 0x3A have no known meaning (see
	// DESIGN.md's Open Question decision) and are left zero.
	UnityTowerFloors *uint8
}

// FromPokemon synthesizes the GTS metadata for a reception of p, filling
// in fields derivable from the Pokémon and randomizing the rest per
// spec.md §4.5: a random requested-species id in the generation's valid
// range, and a random profile id generated via google/uuid truncated to
// 32 bits (see SPEC_FULL.md §4.5).
func FromPokemon(p *pkm.Pokemon) *Data {
	isGen5 := p.IsGen5Boxed()

	country, region := "Japan", "Hokkaido (Sapporo)"
	if isGen5 {
		country = "United States of America"
		switch p.OriginGame {
		case pkmtype.White2, pkmtype.Black2:
			region = "New Jersey"
		default:
			region = "New York"
		}
	}

	var reqPkmID uint16
	if isGen5 {
		reqPkmID = uint16(1 + rand.IntN(649))
	} else {
		reqPkmID = uint16(1 + rand.IntN(493))
	}

	profileID := binary.LittleEndian.Uint32(uuid.New()[:4])

	d := &Data{
		PkmID:         p.Species,
		Gender:        p.Gender,
		Level:         p.Level,
		ReqPkmID:      reqPkmID,
		ReqGender:     pkmtype.Genderless,
		ReqMin:        1,
		ReqMax:        100,
		TrainerGender: p.TrainerGender,
		DepositedAt:   time.Date(2000+int(p.MetDate.Year), time.Month(p.MetDate.Month), int(p.MetDate.Day), 0, 0, 0, 0, time.UTC),
		TradedAt:      time.Now().UTC(),
		ProfileID:     profileID,
		TrainerID:     p.TrainerID,
		TrainerName:   p.TrainerName,
		Country:       country,
		Region:        region,
		TrainerClass:  pkmtype.TrainerClassFromIDs(p.TrainerID, p.SecretID),
		IsExchanged:   true,
		Game:          p.OriginGame,
		Language:      p.Language,
	}
	if isGen5 {
		secretID := p.SecretID
		d.TrainerSecretID = &secretID
		zero := uint8(0)
		d.UnityTowerFloors = &zero
	}
	return d
}

// Serialize encodes d into the reception wire layout: 0x38 bytes for
// Gen-4, 0x3C for Gen-5 (spec.md §4.5).
func (d *Data) Serialize(isGen5 bool) ([]byte, error) {
	length := gen4DataLen
	if isGen5 {
		length = gen5DataLen
	}
	out := make([]byte, length)

	binary.LittleEndian.PutUint16(out[offPkmID:], d.PkmID)
	out[offGender] = uint8(d.Gender)
	out[offLevel] = d.Level
	binary.LittleEndian.PutUint16(out[offReqPkmID:], d.ReqPkmID)
	out[offReqGender] = uint8(d.ReqGender) + 1
	out[offReqMinLevel] = d.ReqMin
	out[offReqMaxLevel] = d.ReqMax
	out[offTrainerGen] = uint8(d.TrainerGender)
	binary.BigEndian.PutUint64(out[offDepositedAt:], uint64(d.DepositedAt.Unix()))
	binary.BigEndian.PutUint64(out[offTradedAt:], uint64(d.TradedAt.Unix()))
	binary.LittleEndian.PutUint32(out[offProfileID:], d.ProfileID)

	name, err := pkm.EncodeName(d.TrainerName, trainerNameFieldLen, isGen5)
	if err != nil {
		return nil, err
	}

	country, region, ok := geonetCodes(d.Country, d.Region)
	if !ok {
		return nil, fmt.Errorf("%w: %s / %s", ErrInvalidGeonet, d.Country, d.Region)
	}

	if !isGen5 {
		binary.LittleEndian.PutUint16(out[gen4OffTrainerID:], d.TrainerID)
		copy(out[gen4OffTrainerName:], name)
		out[gen4OffCountry] = country
		out[gen4OffRegion] = region
		out[gen4OffClass] = uint8(d.TrainerClass)
		out[gen4OffExchanged] = boolByte(d.IsExchanged)
		out[gen4OffGame] = uint8(d.Game)
		out[gen4OffLanguage] = uint8(d.Language)
		return out, nil
	}

	binary.LittleEndian.PutUint16(out[gen5OffTrainerID:], d.TrainerID)
	if d.TrainerSecretID == nil {
		return nil, fmt.Errorf("gts: trainer secret id is required for a Gen-5 reception")
	}
	binary.LittleEndian.PutUint16(out[gen5OffSecretID:], *d.TrainerSecretID)
	copy(out[gen5OffTrainerName:], name)
	out[gen5OffCountry] = country
	out[gen5OffRegion] = region
	out[gen5OffClass] = uint8(d.TrainerClass)
	out[gen5OffExchanged] = boolByte(d.IsExchanged)
	out[gen5OffGame] = uint8(d.Game)
	out[gen5OffLanguage] = uint8(d.Language)
	if d.UnityTowerFloors == nil {
		return nil, fmt.Errorf("gts: unity tower floors is required for a Gen-5 reception")
	}
	out[gen5OffUnityTower] = *d.UnityTowerFloors
	return out, nil
}

// Deserialize decodes the reception wire layout back into a Data. It is
// not used by any production path in this module -- the Gen-5 size here
// is asserted per spec.md §9 but unverified against a real capture, and
// the Gen-4 deposit path never actually sends this layout (see
// DESIGN.md's Open Question decisions) -- but is kept for test fixtures
// and for tooling that replays a captured reception.
func Deserialize(raw []byte, isGen5 bool) (*Data, error) {
	wantLen := Gen4DepositLen
	if isGen5 {
		wantLen = Gen5DepositLen
	}
	if len(raw) != wantLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedDeposit, len(raw), wantLen)
	}

	d := &Data{
		PkmID:    binary.LittleEndian.Uint16(raw[offPkmID:]),
		Level:    raw[offLevel],
		ReqPkmID: binary.LittleEndian.Uint16(raw[offReqPkmID:]),
		ReqMin:   raw[offReqMinLevel],
		ReqMax:   raw[offReqMaxLevel],
	}

	gender, ok := pkmtype.GenderFromByte(raw[offGender] - 1)
	if !ok {
		return nil, fmt.Errorf("%w: gender byte 0x%02X", ErrInvalidEnum, raw[offGender])
	}
	d.Gender = gender

	reqGender, ok := pkmtype.GenderFromByte(raw[offReqGender] - 1)
	if !ok {
		return nil, fmt.Errorf("%w: requested gender byte 0x%02X", ErrInvalidEnum, raw[offReqGender])
	}
	d.ReqGender = reqGender

	trainerGender, ok := pkmtype.GenderFromByte(raw[offTrainerGen])
	if !ok {
		return nil, fmt.Errorf("%w: trainer gender byte 0x%02X", ErrInvalidEnum, raw[offTrainerGen])
	}
	d.TrainerGender = trainerGender

	d.DepositedAt = time.Unix(int64(binary.BigEndian.Uint64(raw[offDepositedAt:])), 0).UTC()
	d.TradedAt = time.Unix(int64(binary.BigEndian.Uint64(raw[offTradedAt:])), 0).UTC()
	d.ProfileID = binary.LittleEndian.Uint32(raw[offProfileID:])

	var (
		nameOff, countryOff, regionOff, classOff, exchOff, gameOff, langOff int
	)
	if !isGen5 {
		d.TrainerID = binary.LittleEndian.Uint16(raw[gen4OffTrainerID:])
		nameOff, countryOff, regionOff = gen4OffTrainerName, gen4OffCountry, gen4OffRegion
		classOff, exchOff, gameOff, langOff = gen4OffClass, gen4OffExchanged, gen4OffGame, gen4OffLanguage
	} else {
		d.TrainerID = binary.LittleEndian.Uint16(raw[gen5OffTrainerID:])
		secretID := binary.LittleEndian.Uint16(raw[gen5OffSecretID:])
		d.TrainerSecretID = &secretID
		nameOff, countryOff, regionOff = gen5OffTrainerName, gen5OffCountry, gen5OffRegion
		classOff, exchOff, gameOff, langOff = gen5OffClass, gen5OffExchanged, gen5OffGame, gen5OffLanguage
	}

	name, err := pkm.DecodeName(raw[nameOff:nameOff+trainerNameFieldLen], isGen5)
	if err != nil {
		return nil, err
	}
	d.TrainerName = name

	country, region, ok := geonetNames(raw[countryOff], raw[regionOff])
	if !ok {
		return nil, fmt.Errorf("%w: country %d region %d", ErrInvalidGeonet, raw[countryOff], raw[regionOff])
	}
	d.Country, d.Region = country, region

	class := pkmtype.TrainerClass(raw[classOff])
	if int(class) >= pkmtype.TrainerClassCount {
		return nil, fmt.Errorf("%w: trainer class %d", ErrInvalidEnum, raw[classOff])
	}
	d.TrainerClass = class
	d.IsExchanged = raw[exchOff] != 0

	game, ok := pkmtype.GameFromByte(raw[gameOff])
	if !ok {
		return nil, fmt.Errorf("%w: game byte 0x%02X", ErrInvalidEnum, raw[gameOff])
	}
	d.Game = game

	lang, ok := pkmtype.LanguageFromByte(raw[langOff])
	if !ok {
		return nil, fmt.Errorf("%w: language byte 0x%02X", ErrInvalidEnum, raw[langOff])
	}
	d.Language = lang

	if isGen5 {
		floors := raw[gen5OffUnityTower]
		d.UnityTowerFloors = &floors
	}

	return d, nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// geonetCodes resolves a (country, region) display-name pair to the
// byte indices the wire format stores.
func geonetCodes(country, region string) (countryIdx, regionIdx uint8, ok bool) {
	g := data.GeonetGen5()
	for ci, c := range g.Countries {
		if c != country {
			continue
		}
		for ri, r := range g.States[c] {
			if r == region {
				return uint8(ci), uint8(ri), true
			}
		}
		return 0, 0, false
	}
	return 0, 0, false
}

// geonetNames is the inverse of geonetCodes.
func geonetNames(countryIdx, regionIdx uint8) (country, region string, ok bool) {
	g := data.GeonetGen5()
	region, ok = g.Region(countryIdx, regionIdx)
	if !ok {
		return "", "", false
	}
	country, _ = g.Country(countryIdx)
	return country, region, true
}
