package pkmtype

// Nature is the (id, increased-stat, decreased-stat) triple derived from
// a nature's row in the NATURE_MODIFIERS table.
type Nature struct {
	ID      uint16
	Name    string
	Increased Stat
	Decreased Stat
	// Neutral is true for the five natures whose modifier row is all
	// 1.0 (Hardy, Docile, Serious, Bashful, Quirky); Increased and
	// Decreased both equal the stat at index ID/6 in that case, per
	// spec.md §4.2, and carry no actual effect.
	Neutral bool
}

// NatureFromModifiers derives the Nature triple for id from its 5-entry
// modifier row (ordered Atk, Def, Spe, SpA, SpD per spec.md §4.1). This
// mirrors gts-rs's Nature::new: scan for the 1.1 and 0.9 entries; if
// none are found the nature is neutral and both slots fall back to the
// stat at index id/6.
func NatureFromModifiers(id uint16, name string, modifiers [5]float32) Nature {
	n := Nature{ID: id, Name: name}

	var incIdx, decIdx = -1, -1
	for i, m := range modifiers {
		switch {
		case m > 1.0:
			incIdx = i
		case m < 1.0:
			decIdx = i
		}
	}

	if incIdx == -1 && decIdx == -1 {
		n.Neutral = true
		fallback, _ := StatFromNatureIndex(int(id) / 6)
		n.Increased = fallback
		n.Decreased = fallback
		return n
	}

	inc, ok := StatFromNatureIndex(incIdx)
	if !ok {
		panic("pkmtype: nature modifier row missing increased-stat entry")
	}
	dec, ok := StatFromNatureIndex(decIdx)
	if !ok {
		panic("pkmtype: nature modifier row missing decreased-stat entry")
	}
	n.Increased = inc
	n.Decreased = dec
	return n
}

// IDFromPID derives a nature id from a personality value, per invariant
// 1 of the data model: nature.id == pid mod 25.
func IDFromPID(pid uint32) uint16 {
	return uint16(pid % 25)
}
