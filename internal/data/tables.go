// Package data loads the process-wide static tables the codec needs:
// species, abilities, moves, natures, nature modifiers, items, base
// stats, level-experience curves, the Gen-4 character map, and geonet.
// Each table is read once from a JSON file under a configurable data
// directory (default "./data") via sync.OnceValues, the idiomatic Go
// analogue of the original's LazyLock statics; a load failure is fatal,
// matching gts-rs's data_maps.rs .expect(...) panics.
package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/JohnDeved/gts-go/internal/bimap"
	"github.com/JohnDeved/gts-go/internal/pkmtype"
)

// Dir is the directory static JSON tables are read from. It must be set
// (via configuration) before the first table access; it defaults to
// "./data", matching the original's relative "data/..." paths.
var Dir = "data"

func path(name string) string {
	return filepath.Join(Dir, name)
}

func readJSON[T any](name string) T {
	raw, err := os.ReadFile(path(name))
	if err != nil {
		panic(fmt.Sprintf("data: failed to read %s: %v", name, err))
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		panic(fmt.Sprintf("data: failed to parse %s: %v", name, err))
	}
	return v
}

func namesToBimap(names []string) *bimap.Map[uint16, string] {
	m := bimap.New[uint16, string]()
	for i, name := range names {
		m.Insert(uint16(i), name)
	}
	return m
}

var species = sync.OnceValue(func() *bimap.Map[uint16, string] {
	return namesToBimap(readJSON[[]string]("species.json"))
})

// Species returns the species name↔id table.
func Species() *bimap.Map[uint16, string] { return species() }

var abilities = sync.OnceValue(func() *bimap.Map[uint16, string] {
	return namesToBimap(readJSON[[]string]("abilities.json"))
})

// Abilities returns the ability name↔id table.
func Abilities() *bimap.Map[uint16, string] { return abilities() }

var moves = sync.OnceValue(func() []string {
	return readJSON[[]string]("moves.json")
})

// Moves returns the move id→name table (index = id).
func Moves() []string { return moves() }

var itemsGen4 = sync.OnceValue(func() *bimap.Map[uint16, string] {
	return namesToBimap(readJSON[[]string]("items.json"))
})

// ItemsGen4 returns the Gen-4 held-item name↔id table.
func ItemsGen4() *bimap.Map[uint16, string] { return itemsGen4() }

var itemsGen5 = sync.OnceValue(func() *bimap.Map[uint16, string] {
	return namesToBimap(readJSON[[]string]("itemsg5.json"))
})

// ItemsGen5 returns the Gen-5 held-item name↔id table.
func ItemsGen5() *bimap.Map[uint16, string] { return itemsGen5() }

var hiddenPowers = sync.OnceValue(func() []string {
	return readJSON[[]string]("hidden_power.json")
})

// HiddenPowers returns the hidden-power type name table (index = type id).
func HiddenPowers() []string { return hiddenPowers() }

var games = sync.OnceValue(func() *bimap.Map[uint16, string] {
	return namesToBimap(readJSON[[]string]("games.json"))
})

// Games returns the origin-game name↔id table (separate from
// pkmtype.Game's hardcoded discriminants; this table supplies display
// names for any id not covered by pkmtype's non-contiguous constants).
func Games() *bimap.Map[uint16, string] { return games() }

// BaseStats is one row per species: [growthClass, HP, Atk, Def, SpA, SpD, Spe].
type BaseStatsRow [7]uint8

var baseStats = sync.OnceValue(func() []BaseStatsRow {
	return readJSON[[]BaseStatsRow]("base_stats.json")
})

// BaseStats returns the per-species base stat table, indexed by species id.
func BaseStats() []BaseStatsRow { return baseStats() }

// LevelCurves is [level 0..100][growth class 0..5] = experience threshold.
type LevelCurves [101][6]uint32

var levelCurves = sync.OnceValue(func() LevelCurves {
	return readJSON[LevelCurves]("level_curves.json")
})

// LevelCurves returns the 101x6 level-experience threshold table.
func LevelCurves() [101][6]uint32 { return levelCurves() }

var charMap = sync.OnceValue(func() *bimap.Map[uint16, rune] {
	raw := readJSON[struct {
		Characters map[string]string `json:"characters"`
	}]("char_map.json")
	m := bimap.New[uint16, rune]()
	for idHex, ch := range raw.Characters {
		var id uint16
		if _, err := fmt.Sscanf(idHex, "%x", &id); err != nil {
			panic(fmt.Sprintf("data: invalid character map id %q: %v", idHex, err))
		}
		runes := []rune(ch)
		if len(runes) == 0 {
			panic(fmt.Sprintf("data: empty character for id %q", idHex))
		}
		m.Insert(id, runes[0])
	}
	return m
})

// CharMap returns the Gen-4 custom character-map bimap.
func CharMap() *bimap.Map[uint16, rune] { return charMap() }

// NatureTable holds every nature, already derived from its modifier row.
type NatureTable struct {
	byID   [25]pkmtype.Nature
	byName map[string]uint16
}

// Nature looks up a nature by id.
func (t *NatureTable) Nature(id uint16) (pkmtype.Nature, bool) {
	if id >= 25 {
		return pkmtype.Nature{}, false
	}
	return t.byID[id], true
}

// NatureByName looks up a nature by display name.
func (t *NatureTable) NatureByName(name string) (pkmtype.Nature, bool) {
	id, ok := t.byName[name]
	if !ok {
		return pkmtype.Nature{}, false
	}
	return t.byID[id], true
}

var natures = sync.OnceValue(func() *NatureTable {
	names := readJSON[[]string]("natures.json")
	modifiers := readJSON[[][5]float32]("nature_modifiers.json")
	if len(names) != 25 || len(modifiers) != 25 {
		panic("data: natures.json and nature_modifiers.json must both have exactly 25 entries")
	}

	t := &NatureTable{byName: make(map[string]uint16, 25)}
	for i := range 25 {
		n := pkmtype.NatureFromModifiers(uint16(i), names[i], modifiers[i])
		t.byID[i] = n
		t.byName[names[i]] = uint16(i)
	}
	return t
})

// Natures returns the fully derived nature table.
func Natures() *NatureTable { return natures() }

// Geonet is the Gen-5 trainer-location table: an ordered country list,
// each with its own ordered per-country region list.
type Geonet struct {
	Countries []string            `json:"countries"`
	States    map[string][]string `json:"states"`
}

var geonetGen5 = sync.OnceValue(func() Geonet {
	return readJSON[Geonet]("geonet5.json")
})

// GeonetGen5 returns the Gen-5 geonet table.
func GeonetGen5() Geonet { return geonetGen5() }

// Country resolves a country byte index to its name.
func (g Geonet) Country(idx uint8) (string, bool) {
	if int(idx) >= len(g.Countries) {
		return "", false
	}
	return g.Countries[idx], true
}

// Region resolves a (country, region) byte index pair to the region name.
func (g Geonet) Region(countryIdx, regionIdx uint8) (string, bool) {
	country, ok := g.Country(countryIdx)
	if !ok {
		return "", false
	}
	states, ok := g.States[country]
	if !ok || int(regionIdx) >= len(states) {
		return "", false
	}
	return states[regionIdx], true
}
