package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Cells []string
}

func TestFileSpill(t *testing.T) {
	t.Run("NewFileSpill creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cache", "nested", "rows.gob")

		spill, err := NewFileSpill[row](path)
		require.NoError(t, err)
		defer spill.Close()

		assert.Equal(t, path, spill.Path())
		assert.FileExists(t, path)
	})

	t.Run("Append and Get", func(t *testing.T) {
		spill, err := NewFileSpill[string](filepath.Join(t.TempDir(), "strings.gob"))
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append("first"))
		require.NoError(t, spill.Append("second"))

		val, err := spill.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "second", val)

		val, err = spill.Get(3)
		require.Error(t, err)
		assert.Empty(t, val)
	})

	t.Run("Range decodes each item fresh", func(t *testing.T) {
		spill, err := NewFileSpill[row](filepath.Join(t.TempDir(), "rows.gob"))
		require.NoError(t, err)
		defer spill.Close()

		want := []row{
			{Cells: []string{"mutant", "test", "killed"}},
			{Cells: []string{"m1", "t1"}},
			{Cells: []string{"m2", "t2", "0", "extra"}},
		}
		require.NoError(t, spill.AppendBatch(want))
		assert.Equal(t, uint64(3), spill.Len())

		var got []row

		err = spill.Range(func(_ uint64, item row) error {
			got = append(got, item)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Range callback error stops iteration", func(t *testing.T) {
		spill, err := NewFileSpill[int](filepath.Join(t.TempDir(), "ints.gob"))
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))

		stop := errors.New("stop")
		count := 0

		err = spill.Range(func(index uint64, _ int) error {
			count++
			if index == 1 {
				return stop
			}

			return nil
		})

		require.ErrorIs(t, err, stop)
		assert.Equal(t, 2, count)
	})

	t.Run("Data survives Close", func(t *testing.T) {
		spill, err := NewFileSpill[int](filepath.Join(t.TempDir(), "ints.gob"))
		require.NoError(t, err)

		require.NoError(t, spill.Append(7))
		require.NoError(t, spill.Close())
		require.NoError(t, spill.Close())

		val, err := spill.Get(0)
		require.NoError(t, err)
		assert.Equal(t, 7, val)
	})

	t.Run("NewFileSpill truncates an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ints.gob")

		first, err := NewFileSpill[int](path)
		require.NoError(t, err)
		require.NoError(t, first.AppendBatch([]int{1, 2, 3}))
		require.NoError(t, first.Close())

		second, err := NewFileSpill[int](path)
		require.NoError(t, err)
		require.NoError(t, second.Append(9))
		require.NoError(t, second.Close())

		reopened, err := OpenFileSpill[int](path)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), reopened.Len())
	})
}

func TestOpenFileSpill(t *testing.T) {
	t.Run("reopens and counts items", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rows.gob")

		spill, err := NewFileSpill[row](path)
		require.NoError(t, err)
		require.NoError(t, spill.Append(row{Cells: []string{"a", "b"}}))
		require.NoError(t, spill.Append(row{Cells: []string{"c"}}))
		require.NoError(t, spill.Close())

		reopened, err := OpenFileSpill[row](path)
		require.NoError(t, err)
		defer reopened.Close()

		assert.Equal(t, uint64(2), reopened.Len())

		item, err := reopened.Get(1)
		require.NoError(t, err)
		assert.Equal(t, []string{"c"}, item.Cells)
	})

	t.Run("is read-only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ints.gob")

		spill, err := NewFileSpill[int](path)
		require.NoError(t, err)
		require.NoError(t, spill.Close())

		reopened, err := OpenFileSpill[int](path)
		require.NoError(t, err)

		require.ErrorIs(t, reopened.Append(1), ErrReadOnly)
		assert.Zero(t, reopened.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := OpenFileSpill[int](filepath.Join(t.TempDir(), "missing.gob"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corrupt.gob")
		require.NoError(t, os.WriteFile(path, []byte("not gob at all"), 0o600))

		_, err := OpenFileSpill[row](path)
		require.Error(t, err)
	})
}

func BenchmarkAppendRow(b *testing.B) {
	spill, err := NewFileSpill[row](filepath.Join(b.TempDir(), "rows.gob"))
	if err != nil {
		b.Fatalf("failed to create filespill: %v", err)
	}
	defer spill.Close()

	item := row{Cells: []string{"mutant-0001", "TestSomething/case_17", "1"}}

	b.ResetTimer()

	for b.Loop() {
		_ = spill.Append(item)
	}
}

func BenchmarkRange(b *testing.B) {
	spill, err := NewFileSpill[row](filepath.Join(b.TempDir(), "rows.gob"))
	if err != nil {
		b.Fatalf("failed to create filespill: %v", err)
	}
	defer spill.Close()

	for range 1000 {
		_ = spill.Append(row{Cells: []string{"m", "t", "1"}})
	}

	b.ResetTimer()

	for b.Loop() {
		_ = spill.Range(func(uint64, row) error { return nil })
	}
}
