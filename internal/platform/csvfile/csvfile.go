// Package csvfile implements the store interfaces on top of one flat CSV
// file per store. This is the default backend: a single durable file with a
// header row, (re)initialized to an empty, correctly-schemed state whenever
// it is absent or structurally broken, never surfacing that recovery as an
// error to the caller.
//
// Each store serializes its writes through a single mutex, so concurrent
// sessions cannot lose appends to each other.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// readRows reads all data rows from path, validating the header. If the
// file is missing, empty, or structurally corrupt, it is rewritten as an
// empty store with the given header and no rows are returned.
//
// Callers must hold the store's mutex.
func readRows(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := initFile(path, header); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	records, readErr := csv.NewReader(f).ReadAll()
	if cerr := f.Close(); cerr != nil {
		return nil, fmt.Errorf("closing %s: %w", path, cerr)
	}

	if readErr != nil || len(records) == 0 || !equalRow(records[0], header) {
		// Corrupt or schemaless file: recover locally.
		if err := initFile(path, header); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return records[1:], nil
}

// appendRow appends one data row, creating the file with its header first
// if needed.
//
// Callers must hold the store's mutex.
func appendRow(path string, header, row []string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := initFile(path, header); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s for append: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		_ = f.Close()
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// initFile rewrites path as an empty store containing only the header row.
func initFile(path string, header []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("initializing %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing header to %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func equalRow(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
