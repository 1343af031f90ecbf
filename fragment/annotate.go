package fragment

import (
	"errors"
	"fmt"

	"github.com/gelband/gelstat/calibrate"
)

// ErrMissingLadderLane indicates that the ladder table held no entries for
// the lane designated as the sizing ladder.
var ErrMissingLadderLane = errors.New("fragment: no ladder entries in the designated ladder lane")

// Annotate estimates a fragment size for every record by fitting a
// calibration model to the ladder entries of ladderLane and evaluating it at
// each record's migration distance.
//
// The input is not mutated: a new slice is returned, in the same order as the
// input, with only FragmentSize changed. Each row keeps its own per-row
// estimate; bands are never aggregated within a lane.
func Annotate(records []Record, ladder []LadderEntry, ladderLane int) ([]Record, error) {
	sizes := make([]float64, 0, len(ladder))
	positions := make([]float64, 0, len(ladder))
	for _, entry := range ladder {
		if entry.Lane != ladderLane {
			continue
		}
		sizes = append(sizes, entry.KnownSize)
		positions = append(positions, entry.MigrationDistance)
	}

	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: lane %d", ErrMissingLadderLane, ladderLane)
	}

	model, err := calibrate.Fit(sizes, positions)
	if err != nil {
		return nil, fmt.Errorf("fragment: fitting ladder lane %d: %w", ladderLane, err)
	}

	out := make([]Record, len(records))
	for i, r := range records {
		r.FragmentSize = model.PredictOne(r.MigrationDistance)
		out[i] = r
	}

	return out, nil
}
