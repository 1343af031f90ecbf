// Package geltable loads gel densitometry exports into the fragment data
// model. It tolerates the usual export quirks: unknown delimiters, optional
// compression, and blank numeric cells (normalized to 0 before the core ever
// sees them).
package geltable

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/gelband/gelstat"
	"github.com/gelband/gelstat/fragment"
)

// Fragment tables must carry at least these columns. Column matching is
// case-insensitive.
var fragmentColumns = []string{"lane", "band", "sample_label", "rf", "raw_volume", "calibrated_volume"}

// Ladder tables carry the known fragment sizes instead of sample annotations.
var ladderColumns = []string{"lane", "band", "rf", "known_size"}

// ReadFragmentTable parses a reference or sample table. The delimiter is
// sniffed from the content rather than assumed.
func ReadFragmentTable(r io.Reader) ([]fragment.Record, error) {
	rows, header, err := readTable(r, fragmentColumns)
	if err != nil {
		return nil, err
	}

	out := make([]fragment.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, fragment.Record{
			Lane:              intOrZero(row[header["lane"]]),
			Band:              intOrZero(row[header["band"]]),
			SampleLabel:       row[header["sample_label"]],
			MigrationDistance: floatOrZero(row[header["rf"]]),
			RawVolume:         floatOrZero(row[header["raw_volume"]]),
			CalibratedVolume:  floatOrZero(row[header["calibrated_volume"]]),
		})
	}

	log.Printf("Loaded %d fragment records\n", len(out))

	return out, nil
}

// ReadLadderTable parses the sizing-ladder table.
func ReadLadderTable(r io.Reader) ([]fragment.LadderEntry, error) {
	rows, header, err := readTable(r, ladderColumns)
	if err != nil {
		return nil, err
	}

	out := make([]fragment.LadderEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, fragment.LadderEntry{
			Lane:              intOrZero(row[header["lane"]]),
			Band:              intOrZero(row[header["band"]]),
			MigrationDistance: floatOrZero(row[header["rf"]]),
			KnownSize:         floatOrZero(row[header["known_size"]]),
		})
	}

	log.Printf("Loaded %d ladder entries\n", len(out))

	return out, nil
}

// readTable slurps the reader (the delimiter detector needs a second pass
// over the content), sniffs the delimiter, and returns the data rows plus a
// lowercased column => position map checked against required.
func readTable(r io.Reader, required []string) ([][]string, map[string]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, pfx.Err(err)
	}

	csvReader := csv.NewReader(bytes.NewReader(data))
	csvReader.Comma = gelstat.DetermineDelimiter(bytes.NewReader(data))
	csvReader.LazyQuotes = true

	entries, err := csvReader.ReadAll()
	if err != nil {
		return nil, nil, pfx.Err(err)
	}
	if len(entries) == 0 {
		return nil, nil, fmt.Errorf("geltable: no rows in the input table")
	}

	header := make(map[string]int)
	for i, col := range entries[0] {
		header[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range required {
		if _, ok := header[col]; !ok {
			return nil, nil, fmt.Errorf("geltable: required column %q not found in header %v", col, entries[0])
		}
	}

	return entries[1:], header, nil
}

// floatOrZero coerces a cell to a float. Blank and unparseable cells are
// normalized to 0, which is the contract the downstream core assumes for
// missing values.
func floatOrZero(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0
	}
	return v
}

func intOrZero(cell string) int {
	v, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil {
		return 0
	}
	return v
}
