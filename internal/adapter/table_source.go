// Package adapter contains the infrastructure adapters of subsume: reading
// mutant lists and kill matrices, caching sanitized inputs and persisting reports.
package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	m "gooze.dev/pkg/subsume/internal/model"
)

var (
	// ErrEmptyTable is returned for an input file without a header row.
	ErrEmptyTable = errors.New("table has no header row")
	// ErrColumnOutOfRange is returned when a configured column index does not exist.
	ErrColumnOutOfRange = errors.New("column index out of range")
)

// sanitizedFill replaces empty cells, mirroring a NaN fill with zero.
const sanitizedFill = "0"

// TableSource loads the two structured inputs of an analysis run.
type TableSource interface {
	// LoadMutants returns the distinct mutant ids in first-seen order.
	LoadMutants(ctx context.Context, src m.MutantListSource, opts m.LoadOptions) ([]m.MutantID, error)
	// LoadKills returns, per mutant, the tests whose kill status is 1.
	LoadKills(ctx context.Context, src m.KillMatrixSource, opts m.LoadOptions) (map[m.MutantID]m.TestSet, error)
}

// LocalTableSource reads CSV files from the local filesystem.
type LocalTableSource struct{}

// NewLocalTableSource constructs a LocalTableSource.
func NewLocalTableSource() *LocalTableSource {
	return &LocalTableSource{}
}

// LoadMutants implements TableSource.
func (s *LocalTableSource) LoadMutants(ctx context.Context, src m.MutantListSource, opts m.LoadOptions) ([]m.MutantID, error) {
	rows, err := s.readTable(ctx, src.Path, opts)
	if err != nil {
		return nil, err
	}

	if err := checkColumns(src.Path, rows, src.MutantColumn); err != nil {
		return nil, err
	}

	seen := make(map[m.MutantID]struct{})
	mutants := make([]m.MutantID, 0, len(rows))

	for _, row := range rows[1:] {
		cell := strings.TrimSpace(row[src.MutantColumn])
		if cell == "" {
			continue
		}

		id := m.MutantID(cell)
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		mutants = append(mutants, id)
	}

	slog.Info("loaded mutant list", "path", src.Path, "rows", len(rows)-1, "mutants", len(mutants))

	return mutants, nil
}

// LoadKills implements TableSource.
func (s *LocalTableSource) LoadKills(ctx context.Context, src m.KillMatrixSource, opts m.LoadOptions) (map[m.MutantID]m.TestSet, error) {
	rows, err := s.readTable(ctx, src.Path, opts)
	if err != nil {
		return nil, err
	}

	if err := checkColumns(src.Path, rows, src.MutantColumn, src.TestColumn, src.StatusColumn); err != nil {
		return nil, err
	}

	kills := make(map[m.MutantID]m.TestSet)
	killed := 0

	for _, row := range rows[1:] {
		if !IsKilled(row[src.StatusColumn]) {
			continue
		}

		mutant := m.MutantID(strings.TrimSpace(row[src.MutantColumn]))
		test := m.TestID(strings.TrimSpace(row[src.TestColumn]))

		if mutant == "" || test == "" {
			continue
		}

		if _, ok := kills[mutant]; !ok {
			kills[mutant] = m.NewTestSet()
		}

		kills[mutant].Add(test)
		killed++
	}

	slog.Info("loaded kill matrix", "path", src.Path, "rows", len(rows)-1, "killed", killed, "mutants", len(kills))

	return kills, nil
}

// IsKilled reports whether a kill status cell means "killed": the number 1
// in any float spelling, or a boolean true.
func IsKilled(cell string) bool {
	value := strings.TrimSpace(cell)

	if strings.EqualFold(value, "true") {
		return true
	}

	f, err := strconv.ParseFloat(value, 64)

	return err == nil && f == 1
}

func (s *LocalTableSource) readTable(ctx context.Context, path m.Path, opts m.LoadOptions) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cacheable := opts.Sanitize && opts.CacheDir != ""

	var (
		cache *SanitizedCache
		hash  string
	)

	if cacheable {
		var err error

		hash, err = HashFile(path)
		if err != nil {
			return nil, fmt.Errorf("hash %s: %w", path, err)
		}

		cache = NewSanitizedCache(opts.CacheDir)

		if opts.UseCache {
			rows, ok, err := cache.Load(path, hash)
			if err != nil {
				slog.Warn("ignoring unreadable cache entry", "path", path, "error", err)
			} else if ok {
				return rows, nil
			}
		}
	}

	rows, err := ReadCSV(path)
	if err != nil {
		return nil, err
	}

	if opts.Sanitize {
		Sanitize(rows)
	}

	if cacheable {
		if err := cache.Store(path, hash, rows); err != nil {
			return nil, fmt.Errorf("cache %s: %w", path, err)
		}
	}

	return rows, nil
}

// ReadCSV reads every record of a CSV file. Rows may have different lengths.
func ReadCSV(path m.Path) ([][]string, error) {
	file, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		rows = append(rows, record)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTable, path)
	}

	return rows, nil
}

// Sanitize fills empty data cells in place. The header row is left alone.
func Sanitize(rows [][]string) {
	for i := 1; i < len(rows); i++ {
		for j, cell := range rows[i] {
			if strings.TrimSpace(cell) == "" {
				rows[i][j] = sanitizedFill
			}
		}
	}
}

func checkColumns(path m.Path, rows [][]string, columns ...int) error {
	for i, row := range rows {
		for _, column := range columns {
			if column < 0 || column >= len(row) {
				return fmt.Errorf("%w: %s row %d has %d column(s), need index %d",
					ErrColumnOutOfRange, path, i+1, len(row), column)
			}
		}
	}

	return nil
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
