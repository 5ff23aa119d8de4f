// Package config holds the process-wide setup cmd/gtsd wires together:
// privilege checks, logging, and the on-disk Pokémon save routine
// (spec.md §4.11, §5).
package config

import (
	"errors"

	"golang.org/x/sys/unix"
)

// errNotPrivileged is returned by RequirePrivilege when the process is
// not running as root and no override was requested.
var errNotPrivileged = errors.New("gtsd: refusing to bind DNS/HTTP ports without root (pass --insecure-skip-privilege-check to override)")

// RequirePrivilege mirrors the original's superuser check, which exists
// because `serve` binds UDP/53 and TCP/80 directly. skip bypasses it for
// container setups where those ports are already remapped to
// unprivileged host ports. Grounded on the pack's
// other_examples/997c923f_csku25-PokeDB__recordlib-record.go.go, which
// imports golang.org/x/sys/unix from a Pokémon-domain repo.
func RequirePrivilege(skip bool) error {
	if skip {
		return nil
	}
	if unix.Geteuid() != 0 {
		return errNotPrivileged
	}
	return nil
}
