// SPDX-License-Identifier: MIT
package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/katalvlaran/metro/core"
)

// File is a dataset stored at Path.
//
// With AllowMissing set, reading a file that does not exist yields zero
// records instead of an error; the ticket file uses this on first run.
type File struct {
	Path         string
	Format       Format
	AllowMissing bool
}

// ReadRecords loads every record in the file.
func (f File) ReadRecords() ([]core.Record, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		if f.AllowMissing && errors.Is(err, fs.ErrNotExist) {
			return []core.Record{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	defer fh.Close()

	recs, err := ReadRecords(fh, f.Format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}

	return recs, nil
}

// defaultMode is the permission of a file written for the first time.
const defaultMode fs.FileMode = 0o644

// WriteRecords replaces the file contents with header and records.
// An existing target keeps its permission bits. The target is left
// untouched if anything fails before the final rename.
func (f File) WriteRecords(header []string, records []core.Record) (err error) {
	mode := defaultMode
	if info, statErr := os.Stat(f.Path); statErr == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = WriteRecords(tmp, header, records, f.Format); err != nil {
		return fmt.Errorf("%s: %w", f.Path, err)
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err = os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return nil
}
