package fragment

import (
	"errors"
	"fmt"
	"math"
)

// ErrDuplicateJoinKey indicates that a table held more than one band at the
// same (lane, band) position. Replicate bands have no defined aggregation
// here, so the join refuses to guess.
var ErrDuplicateJoinKey = errors.New("fragment: duplicate (lane, band) key")

type bandKey struct {
	Lane int
	Band int
}

// Score inner-joins reference and sample records on (lane, band) and returns
// one MatchingScore per shared key, in reference-table order. Bands present
// on only one side are dropped without comment — that is long-standing
// behavior this pipeline's consumers rely on, not an oversight — and zero
// shared keys yields an empty, non-nil result rather than an error.
func Score(reference, sample []Record) ([]MatchingScore, error) {
	samples := make(map[bandKey]Record, len(sample))
	for _, s := range sample {
		k := bandKey{s.Lane, s.Band}
		if _, dup := samples[k]; dup {
			return nil, fmt.Errorf("%w: sample lane %d band %d", ErrDuplicateJoinKey, s.Lane, s.Band)
		}
		samples[k] = s
	}

	seen := make(map[bandKey]struct{}, len(reference))
	out := make([]MatchingScore, 0, len(reference))
	for _, r := range reference {
		k := bandKey{r.Lane, r.Band}
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w: reference lane %d band %d", ErrDuplicateJoinKey, r.Lane, r.Band)
		}
		seen[k] = struct{}{}

		s, ok := samples[k]
		if !ok {
			continue
		}

		out = append(out, MatchingScore{
			Lane:          r.Lane,
			Band:          r.Band,
			ReferenceSize: r.FragmentSize,
			SampleSize:    s.FragmentSize,
			Score:         math.Abs(r.FragmentSize - s.FragmentSize),
		})
	}

	return out, nil
}
