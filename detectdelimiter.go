package gelstat

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit
// the values in the reader, assuming a CSV-like file. Gel densitometry
// software disagrees on whether exports are comma- or tab-delimited, so the
// table loaders sniff rather than assume.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}
