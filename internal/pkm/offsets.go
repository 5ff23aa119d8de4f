package pkm

// Record sizes, per spec.md §4.3.
const (
	BoxedLen     = 0x88 // "boxed" (PC storage) record length, all generations.
	Gen4PartyLen = 0xEC // Gen-4 "party" (in-battle) record length.
	Gen5PartyLen = 0xDC // Gen-5 "party" record length.
)

// IsGen5SpeciesThreshold is the species id above which a record is
// always interpreted as Gen-5, even if it happens to arrive at a
// Gen-4-sized length (spec.md §7: "for Pokémon with species id > 493,
// force Gen-5 interpretation even in a Gen-4-sized record").
const IsGen5SpeciesThreshold = 493

// Block A offsets (0x00-0x28).
const (
	offPID          = 0x00
	offFlags        = 0x04
	offChecksum     = 0x06
	offSpecies      = 0x08
	offItem         = 0x0A
	offTrainerID    = 0x0C
	offSecretID     = 0x0E
	offExperience   = 0x10
	offFriendship   = 0x14
	offAbility      = 0x15
	offMarkings     = 0x16
	offLanguage     = 0x17
	offEVs          = 0x18 // 6 bytes
	offContestStats = 0x1E // 6 bytes
	offRibbonsSinnoh1 = 0x24 // u32
)

const (
	flagEncryptionBypass = 1 << 0
	flagBadEgg           = 1 << 1
)

// Block B offsets (0x28-0x48).
const (
	offMoves        = 0x28 // 4 x u16
	offMovePP       = 0x30 // 4 x u8
	offMovePPUps    = 0x34 // 4 x u8
	offPackedIVs    = 0x38 // u32
	offRibbonsHoenn = 0x3C // u32, low 6 bits of the first byte are ribbons.
	offFlags40      = 0x40
	offGenByte41    = 0x41 // Gen-4: shiny leaf bitfield. Gen-5: nature id.
	offLocationsG5  = 0x44 // 2 x u16 (egg, met) -- "Platinum/HGSS/Gen-5 slot".
)

const (
	packedIVBitsPerStat = 5
	packedIVEggBit      = 1 << 30
	packedIVNicknameBit = 1 << 31
)

const (
	flags40FatefulBit  = 1 << 0
	flags40GenderShift = 1
	flags40GenderMask  = 0b11 << flags40GenderShift
	flags40FormShift   = 3
)

// Block C offsets (0x48-0x68).
const (
	offNickname      = 0x48 // 22 bytes: 11 u16 code units, 0xFFFF-terminated.
	nicknameByteLen  = 22
	offOriginGame    = 0x5F
	offRibbonsSinnoh2 = 0x60 // u32
)

// Block D offsets (0x68-0x88).
const (
	offTrainerName     = 0x68 // 16 bytes.
	trainerNameByteLen = 16
	offEggDate         = 0x78 // 3 bytes: year-2000, month, day.
	offMetDate         = 0x7B // 3 bytes.
	offLocationsDP     = 0x7E // 2 x u16 (egg, met) -- plain "DP slot".
	offPokerus         = 0x82
	offBallPrimary     = 0x83
	offMetLevelGender  = 0x84 // bits 0-6 met level, bit 7 trainer gender.
	offEncounterType   = 0x85
	offBallHGSS        = 0x86
	offPerformance     = 0x87
)

const (
	metLevelGenderMask = 0x7F
	trainerGenderBit   = 1 << 7
)

// Party tail offsets (0x88-end), present only in 220/236-byte records.
const (
	offLevel       = 0x8C
	offCurrentHP   = 0x8E
	offStatsBlock  = 0x90 // 6 x u16: HP, Atk, Def, Spe, SpA, SpD.
)
