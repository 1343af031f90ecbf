package geltable

import (
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/gelband/gelstat/scenario"
)

type scenarioRow struct {
	ReferenceLabel string `csv:"reference_label"`
	SampleLabel    string `csv:"sample_label"`
}

// ReadScenarios loads the declared comparison pairs from a CSV with columns
// reference_label and sample_label. File order is preserved: it defines the
// comparison order for the whole run.
func ReadScenarios(r io.Reader) ([]scenario.Scenario, error) {
	rows := []*scenarioRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]scenario.Scenario, 0, len(rows))
	for i, row := range rows {
		if row.ReferenceLabel == "" || row.SampleLabel == "" {
			return nil, fmt.Errorf("geltable: scenario row %d has an empty label", i+1)
		}
		out = append(out, scenario.Scenario{
			ReferenceLabel: row.ReferenceLabel,
			SampleLabel:    row.SampleLabel,
		})
	}

	return out, nil
}
