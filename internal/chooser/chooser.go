// Package chooser tracks which .pkm/.pk4/.pk5 file is currently staged
// to be served by the next result.asp request, replacing the blocking
// stdin prompt loop in gts-rs's result_gen4/result_gen5 with a small
// terminal file picker (spec.md §4.9).
package chooser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JohnDeved/gts-go/internal/pkm"
)

var allowedExt = map[string]bool{".pkm": true, ".pk4": true, ".pk5": true}

// Chooser holds the currently staged Pokémon, if any. Safe for
// concurrent use: the HTTP shell reads Current() from request-handling
// goroutines while Run (or Stage, from `gtsd inject`) writes to it.
type Chooser struct {
	mu      sync.Mutex
	path    string
	pokemon *pkm.Pokemon
}

// New returns a Chooser with nothing staged.
func New() *Chooser {
	return &Chooser{}
}

// Stage validates path's extension, loads and decodes it, and records
// it as the file the next result.asp hit should serve.
func (c *Chooser) Stage(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !allowedExt[ext] {
		return fmt.Errorf("chooser: unsupported file extension %q (want .pkm, .pk4, or .pk5)", ext)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("chooser: reading %s: %w", path, err)
	}
	p, err := pkm.Deserialize(raw)
	if err != nil {
		return fmt.Errorf("chooser: decoding %s: %w", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.path, c.pokemon = path, p
	return nil
}

// Current returns the staged Pokémon, if any.
func (c *Chooser) Current() (*pkm.Pokemon, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pokemon, c.pokemon != nil
}

// Clear discards the staged file, so a subsequent result.asp hit falls
// back to "nothing staged" until something new is chosen.
func (c *Chooser) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.path, c.pokemon = "", nil
}

// Run launches the interactive filepicker TUI rooted at dir and stages
// whatever the user selects. If stdin is not a terminal, Run is a no-op
// so `gtsd serve` stays usable headless, driven purely by `gtsd inject`.
func (c *Chooser) Run(ctx context.Context, dir string) error {
	if !isTerminal() {
		return nil
	}

	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = []string{".pkm", ".pk4", ".pk5"}
	fp.ShowHidden = false

	p := tea.NewProgram(model{filepicker: fp, chooser: c}, tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func isTerminal() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
