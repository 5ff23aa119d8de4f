package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JohnDeved/gts-go/internal/data"
	"github.com/JohnDeved/gts-go/internal/pkm"
)

// FileSaver persists deposited Pokémon to dir as .pk4/.pk5 files,
// grounded on the original's Pokemon::save/save_file_exists (spec.md
// §5). It implements internal/httpgts.Saver.
type FileSaver struct {
	Dir string
}

// NewFileSaver returns a FileSaver rooted at dir, creating it if
// necessary.
func NewFileSaver(dir string) (*FileSaver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("config: creating save directory %s: %w", dir, err)
	}
	return &FileSaver{Dir: dir}, nil
}

// Save serializes p and writes it under s.Dir, named
// "<species>_<nickname>[!]_<timestamp>.<ext>" where "!" marks a shiny
// and the extension is pk4/pk5 per generation. If a file whose name has
// the "<species>_<nickname>[!]" prefix already holds identical byte
// contents, Save reports (false, nil) without writing again -- a
// deposit re-sent by the game is not an error (spec.md §7). The write
// itself is atomic: data lands in a temp file in s.Dir first, then
// os.Rename into place.
func (s *FileSaver) Save(p *pkm.Pokemon) (bool, error) {
	data, err := p.Serialize()
	if err != nil {
		return false, fmt.Errorf("config: serializing deposited Pokémon: %w", err)
	}

	baseName := saveBaseName(p)
	ext := "pk4"
	if p.IsGen5Boxed() {
		ext = "pk5"
	}

	exists, err := s.duplicateExists(baseName, ext, data)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	finalName := fmt.Sprintf("%s_%s.%s", baseName, time.Now().UTC().Format("2006-01-02_15-04-05"), ext)
	if err := writeFileAtomic(s.Dir, filepath.Join(s.Dir, finalName), data); err != nil {
		return false, err
	}
	return true, nil
}

func saveBaseName(p *pkm.Pokemon) string {
	species, ok := data.Species().Name(p.Species)
	if !ok {
		species = fmt.Sprintf("species%d", p.Species)
	}
	shinyMark := ""
	if p.Shiny {
		shinyMark = "!"
	}
	return fmt.Sprintf("%s_%s%s", species, p.Nickname, shinyMark)
}

// duplicateExists scans dir for any entry whose name starts with
// baseName and ends with ext, reporting whether one has byte-identical
// contents to data.
func (s *FileSaver) duplicateExists(baseName, ext string, data []byte) (bool, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return false, fmt.Errorf("config: listing save directory %s: %w", s.Dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, baseName) || !strings.HasSuffix(name, ext) {
			continue
		}
		existing, err := os.ReadFile(filepath.Join(s.Dir, name))
		if err != nil {
			return false, fmt.Errorf("config: reading existing save %s: %w", name, err)
		}
		if bytes.Equal(existing, data) {
			return true, nil
		}
	}
	return false, nil
}

func writeFileAtomic(dir, finalPath string, data []byte) error {
	tmp, err := os.CreateTemp(dir, ".gtsd-save-*")
	if err != nil {
		return fmt.Errorf("config: creating temp save file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("config: writing temp save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config: closing temp save file: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return fmt.Errorf("config: finalizing save to %s: %w", finalPath, err)
	}
	return nil
}
