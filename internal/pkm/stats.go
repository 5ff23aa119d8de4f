package pkm

import (
	"fmt"

	"github.com/JohnDeved/gts-go/internal/data"
	"github.com/JohnDeved/gts-go/internal/pkmtype"
)

// generateStats derives the current-stats block for a party record from
// base stats, level, EVs, and IVs, then applies the nature's ±10% floor
// modifier. Grounded on gts-rs's Pokemon::generate_stats; HP is never the
// nature-affected stat, which mustNotHappen enforces.
func generateStats(base data.BaseStatsRow, level uint8, evs, ivs pkmtype.Stats, nature pkmtype.Nature) pkmtype.Stats {
	l := uint32(level)

	hp := (uint32(ivs.HP) + 2*uint32(base[1]) + uint32(evs.HP)/4) * l / 100 + 10

	computeOther := func(iv, baseStat, ev uint16) uint32 {
		return (uint32(iv)+2*uint32(baseStat)+uint32(ev))/4*l/100 + 5
	}

	atk := computeOther(ivs.Atk, uint16(base[2]), evs.Atk)
	def := computeOther(ivs.Def, uint16(base[3]), evs.Def)
	spa := computeOther(ivs.SpA, uint16(base[4]), evs.SpA)
	spd := computeOther(ivs.SpD, uint16(base[5]), evs.SpD)
	spe := computeOther(ivs.Spe, uint16(base[6]), evs.Spe)

	out := pkmtype.Stats{HP: uint16(hp), Atk: uint16(atk), Def: uint16(def), SpA: uint16(spa), SpD: uint16(spd), Spe: uint16(spe)}

	// Applied unconditionally per spec.md §4.2 and the Rust original's
	// nature match arms: for a neutral nature Increased == Decreased,
	// so the same stat takes both the 1.1 and the 0.9 floor in
	// sequence rather than being left alone.
	applyNatureModifier(&out, nature.Increased, 1.1)
	applyNatureModifier(&out, nature.Decreased, 0.9)
	return out
}

func applyNatureModifier(stats *pkmtype.Stats, stat pkmtype.Stat, factor float32) {
	if stat == pkmtype.HP {
		mustNotHappen("a nature must never affect HP")
	}
	v := stats.Get(stat)
	stats.Set(stat, uint16(float32(v)*factor)) // truncation == floor for non-negative values.
}

// mustNotHappen panics with msg, the idiomatic Go analogue of gts-rs's
// should_not_happen! macro for conditions the codec's own invariants
// rule out.
func mustNotHappen(msg string) {
	panic("pkm: invariant violated: " + msg)
}

// hiddenPower derives the hidden-power type index and power from the
// six IVs in the fixed order HP, Atk, Def, Spe, SpA, SpD (spec.md §4.2).
func hiddenPower(ivs pkmtype.Stats) (typeIndex int, power int) {
	ordered := [6]uint16{ivs.HP, ivs.Atk, ivs.Def, ivs.Spe, ivs.SpA, ivs.SpD}

	var typeSum, powerSum uint32
	for i, iv := range ordered {
		typeSum += uint32(iv%2) << i
		if iv%4 >= 2 {
			powerSum += 1 << i
		}
	}

	typeIndex = int(typeSum * 15 / 63)
	power = int(powerSum*40/63) + 30
	return typeIndex, power
}

// levelFromExperience returns the largest level L in [1,100] whose
// growth-curve threshold does not exceed experience, per invariant 3.
func levelFromExperience(growthClass int, experience uint32) (uint8, error) {
	curves := data.LevelCurves()
	if growthClass < 0 || growthClass > 5 {
		return 0, fmt.Errorf("%w: growth class %d out of range", ErrInvalidEnum, growthClass)
	}

	level := 1
	for l := 1; l <= 100; l++ {
		if curves[l][growthClass] > experience {
			break
		}
		level = l
	}
	return uint8(level), nil
}
