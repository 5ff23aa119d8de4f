// Command gtsd impersonates the Nintendo GTS for Gen IV/V Pokémon
// games: it redirects gamestats2.gs.nintendowifi.net to itself via DNS
// and answers the GTS HTTP endpoints the game expects, so a .pkm file
// can be injected into a running game and a deposited Pokémon captured
// to disk (spec.md §1; SPEC_FULL.md §1 process shape).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
