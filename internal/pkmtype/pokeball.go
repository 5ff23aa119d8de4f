package pkmtype

// Pokeball enumerates the 25 Poké Ball variants a Gen-4/5 Pokémon can be
// caught in. The nine balls introduced in HeartGold/SoulSilver
// (FirstHGSSBall..) need special on-disk handling: spec.md §4.3 block D
// stores the plain ball code at 0x83 with the real HGSS ball duplicated
// at 0x86, because older-generation readers that only understand 0x83
// must still see a valid (if generic) ball.
type Pokeball uint8

const (
	_ Pokeball = iota // 0 is not a valid ball id.
	MasterBall
	UltraBall
	GreatBall
	PokeBall
	SafariBall
	NetBall
	DiveBall
	NestBall
	RepeatBall
	TimerBall
	LuxuryBall
	PremierBall
	DuskBall
	HealBall
	QuickBall
	CherishBall
	// FirstHGSSBall is the first ball id introduced in HeartGold/
	// SoulSilver; balls at or above this id trigger the dual-byte
	// aliasing rule in the record codec.
	FirstHGSSBall
	HGSSHealBall   = FirstHGSSBall
	HGSSQuickBall  Pokeball = FirstHGSSBall + 1
	HGSSDuskBall   Pokeball = FirstHGSSBall + 2
	HGSSNetBall    Pokeball = FirstHGSSBall + 3
	HGSSNestBall   Pokeball = FirstHGSSBall + 4
	HGSSRepeatBall Pokeball = FirstHGSSBall + 5
	HGSSTimerBall  Pokeball = FirstHGSSBall + 6
	HGSSLuxuryBall Pokeball = FirstHGSSBall + 7
	HGSSPremierBall Pokeball = FirstHGSSBall + 8
)

var pokeballNames = map[Pokeball]string{
	MasterBall:  "Master Ball",
	UltraBall:   "Ultra Ball",
	GreatBall:   "Great Ball",
	PokeBall:    "Poké Ball",
	SafariBall:  "Safari Ball",
	NetBall:     "Net Ball",
	DiveBall:    "Dive Ball",
	NestBall:    "Nest Ball",
	RepeatBall:  "Repeat Ball",
	TimerBall:   "Timer Ball",
	LuxuryBall:  "Luxury Ball",
	PremierBall: "Premier Ball",
	DuskBall:    "Dusk Ball",
	HealBall:    "Heal Ball",
	QuickBall:   "Quick Ball",
	CherishBall: "Cherish Ball",

	HGSSHealBall:    "Heal Ball",
	HGSSQuickBall:   "Quick Ball",
	HGSSDuskBall:    "Dusk Ball",
	HGSSNetBall:     "Net Ball",
	HGSSNestBall:    "Nest Ball",
	HGSSRepeatBall:  "Repeat Ball",
	HGSSTimerBall:   "Timer Ball",
	HGSSLuxuryBall:  "Luxury Ball",
	HGSSPremierBall: "Premier Ball",
}

func (b Pokeball) String() string {
	if name, ok := pokeballNames[b]; ok {
		return name
	}
	return "Unknown"
}

// IsHGSS reports whether b is one of the nine balls introduced in
// HeartGold/SoulSilver, which require the dual-byte write at
// serialization time (plain code at 0x83, real ball at 0x86).
func (b Pokeball) IsHGSS() bool {
	return b >= FirstHGSSBall
}

// hgssPlainCode maps each HGSS ball to the pre-HGSS ball id sharing its
// display name, the value the record codec writes at 0x83 so that a
// reader that only understands the original 16 balls still sees a
// sensibly named one.
var hgssPlainCode = map[Pokeball]Pokeball{
	HGSSHealBall:    HealBall,
	HGSSQuickBall:   QuickBall,
	HGSSDuskBall:    DuskBall,
	HGSSNetBall:     NetBall,
	HGSSNestBall:    NestBall,
	HGSSRepeatBall:  RepeatBall,
	HGSSTimerBall:   TimerBall,
	HGSSLuxuryBall:  LuxuryBall,
	HGSSPremierBall: PremierBall,
}

// PlainCode returns the ball id to write at 0x83 for b: b itself for any
// pre-HGSS ball, or the pre-HGSS ball of the same name for an HGSS ball.
func (b Pokeball) PlainCode() Pokeball {
	if plain, ok := hgssPlainCode[b]; ok {
		return plain
	}
	return b
}

func PokeballFromByte(b uint8) (Pokeball, bool) {
	ball := Pokeball(b)
	_, ok := pokeballNames[ball]
	return ball, ok
}
