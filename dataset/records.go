// SPDX-License-Identifier: MIT
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/metro/core"
)

// ErrPersistence marks an unreadable or unwritable backing file.
var ErrPersistence = errors.New("dataset: persistence error")

// Format holds the field separator of a dataset. Separators inside list
// fields belong to the core.Network that parses them.
type Format struct {
	Delimiter rune
}

// DefaultFormat is comma-separated fields.
func DefaultFormat() Format {
	return Format{Delimiter: ','}
}

func (f Format) delimiter() rune {
	if f.Delimiter == 0 {
		return ','
	}

	return f.Delimiter
}

// ReadRecords parses r into records keyed by the lower-cased header names.
// An empty input yields no records. Malformed quoting or a row with fewer
// fields than the header is core.ErrDataFormat, a failing reader is
// ErrPersistence. Extra trailing fields are ignored.
func ReadRecords(r io.Reader, f Format) ([]core.Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = f.delimiter()
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%w: %w", core.ErrDataFormat, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if len(rows) == 0 {
		return []core.Record{}, nil
	}

	head := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		head[i] = strings.ToLower(strings.TrimSpace(h))
	}

	out := make([]core.Record, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		if len(row) < len(head) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				core.ErrDataFormat, n+2, len(row), len(head))
		}
		rec := make(core.Record, len(head))
		for i, h := range head {
			rec[h] = strings.TrimSpace(row[i])
		}
		out = append(out, rec)
	}

	return out, nil
}

// WriteRecords writes header followed by one row per record, taking the
// fields in header order. Missing fields are written empty.
func WriteRecords(w io.Writer, header []string, records []core.Record, f Format) error {
	cw := csv.NewWriter(w)
	cw.Comma = f.delimiter()

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	row := make([]string, len(header))
	for _, rec := range records {
		for i, h := range header {
			row[i] = rec[h]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: %w", ErrPersistence, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return nil
}
