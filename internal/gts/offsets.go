package gts

// GTSData wire lengths (spec.md §4.5).
const (
	gen4DataLen = 0x38
	gen5DataLen = 0x3C
)

// Shared header offsets (both generations).
const (
	offPkmID       = 0x00
	offGender      = 0x02
	offLevel       = 0x03
	offReqPkmID    = 0x04
	offReqGender   = 0x06
	offReqMinLevel = 0x07
	offReqMaxLevel = 0x08
	offTrainerGen  = 0x0A
	offDepositedAt = 0x0C // i64 big-endian Unix seconds.
	offTradedAt    = 0x14 // i64 big-endian Unix seconds.
	offProfileID   = 0x1C // u32 little-endian.
)

// Gen-4 layout: trainer name at 0x20..0x30, trainer id at 0x30..0x32,
// then country/region/class/exchanged/game/language at 0x32..0x38.
const (
	gen4OffTrainerName = 0x20
	gen4OffTrainerID   = 0x30
	gen4OffCountry     = 0x32
	gen4OffRegion      = 0x33
	gen4OffClass       = 0x34
	gen4OffExchanged   = 0x35
	gen4OffGame        = 0x36
	gen4OffLanguage    = 0x37
)

// Gen-5 layout: trainer id/secret id at 0x20..0x24, trainer name at
// 0x24..0x34, then the same tail fields shifted +2, plus Unity Tower
// floors at 0x3B.
const (
	gen5OffTrainerID   = 0x20
	gen5OffSecretID    = 0x22
	gen5OffTrainerName = 0x24
	gen5OffCountry     = 0x34
	gen5OffRegion      = 0x35
	gen5OffClass       = 0x36
	gen5OffExchanged   = 0x37
	gen5OffGame        = 0x38
	gen5OffLanguage    = 0x39
	gen5OffUnityTower  = 0x3B
)

const trainerNameFieldLen = 0x30 - 0x20 // 16 bytes, both generations.

// Deposit wire constants (spec.md §4.5).
const (
	gen4XorConstant = 0x4A3B2C1D
	gen5XorConstant = 0x2DB842B2

	gen4DepositBodyOff = 0x04 // start of the secondary-ciphered region.
	gen4DepositBodyEnd = 0xF4
	gen4PkmOffset      = 0x04 // within the decrypted body (profile id occupies 0x00..0x04).
	gen4PkmEnd         = 0xF0

	gen5PkmOffset = 0x0C
	gen5PkmEnd    = 0xE8

	// Gen5DepositLen and Gen4DepositLen are the deposit-wire sizes
	// asserted for GTSData.Deserialize (spec.md §9: the Gen-5 path is
	// unverified against a real capture).
	Gen4DepositLen = 0x124
	Gen5DepositLen = 0x128
)
