package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	m "gooze.dev/pkg/subsume/internal/model"
	"gooze.dev/pkg/subsume/pkg"
)

const hashPrefixLen = 12

// sanitizedRow is the unit stored in the cache spill.
type sanitizedRow struct {
	Cells []string
}

// SanitizedCache keeps sanitized copies of input tables so repeated runs on
// an unchanged file skip parsing and sanitizing.
type SanitizedCache struct {
	dir m.Path
}

// NewSanitizedCache returns a cache rooted at dir.
func NewSanitizedCache(dir m.Path) *SanitizedCache {
	return &SanitizedCache{dir: dir}
}

// EntryPath is the cache file for source at the given content hash.
func (c *SanitizedCache) EntryPath(source m.Path, hash string) m.Path {
	short := hash
	if len(short) > hashPrefixLen {
		short = short[:hashPrefixLen]
	}

	name := fmt.Sprintf("%s_%s_sanitized.gob", filepath.Base(string(source)), short)

	return m.Path(filepath.Join(string(c.dir), name))
}

// Load returns the cached rows for source. ok is false on a cache miss.
func (c *SanitizedCache) Load(source m.Path, hash string) ([][]string, bool, error) {
	entry := c.EntryPath(source, hash)

	spill, err := pkg.OpenFileSpill[sanitizedRow](string(entry))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}

		return nil, false, err
	}

	defer func() {
		_ = spill.Close()
	}()

	rows := make([][]string, 0, spill.Len())

	err = spill.Range(func(_ uint64, row sanitizedRow) error {
		rows = append(rows, row.Cells)
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if len(rows) == 0 {
		return nil, false, nil
	}

	slog.Debug("sanitized cache hit", "source", source, "entry", entry, "rows", len(rows))

	return rows, true, nil
}

// Store writes rows as the cache entry for source, replacing any previous one.
func (c *SanitizedCache) Store(source m.Path, hash string, rows [][]string) error {
	entry := c.EntryPath(source, hash)

	spill, err := pkg.NewFileSpill[sanitizedRow](string(entry))
	if err != nil {
		return err
	}

	for _, row := range rows {
		if err := spill.Append(sanitizedRow{Cells: row}); err != nil {
			_ = spill.Close()
			return err
		}
	}

	if err := spill.Close(); err != nil {
		return err
	}

	slog.Debug("sanitized cache stored", "source", source, "entry", entry, "rows", len(rows))

	return nil
}
