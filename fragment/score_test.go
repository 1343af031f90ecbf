package fragment

import (
	"errors"
	"math"
	"testing"
)

func TestScoreInnerJoin(t *testing.T) {
	reference := []Record{
		{Lane: 2, Band: 1, FragmentSize: 800},
		{Lane: 2, Band: 2, FragmentSize: 400},
		{Lane: 3, Band: 1, FragmentSize: 600}, // no counterpart: dropped
	}
	sample := []Record{
		{Lane: 2, Band: 1, FragmentSize: 790},
		{Lane: 2, Band: 2, FragmentSize: 425},
		{Lane: 4, Band: 1, FragmentSize: 100}, // no counterpart: dropped
	}

	scores, err := Score(reference, sample)
	if err != nil {
		t.Fatal(err)
	}

	if len(scores) != 2 {
		t.Fatalf("got %d scores, want 2", len(scores))
	}

	want := []MatchingScore{
		{Lane: 2, Band: 1, ReferenceSize: 800, SampleSize: 790, Score: 10},
		{Lane: 2, Band: 2, ReferenceSize: 400, SampleSize: 425, Score: 25},
	}
	for i, s := range scores {
		if s.Lane != want[i].Lane || s.Band != want[i].Band ||
			math.Abs(s.Score-want[i].Score) > 1e-9 {
			t.Errorf("score %d = %+v, want %+v", i, s, want[i])
		}
	}
}

func TestScoreNoSharedKeys(t *testing.T) {
	reference := []Record{{Lane: 1, Band: 1, FragmentSize: 500}}
	sample := []Record{{Lane: 9, Band: 9, FragmentSize: 500}}

	scores, err := Score(reference, sample)
	if err != nil {
		t.Fatalf("zero key overlap must not be an error, got %v", err)
	}
	if scores == nil || len(scores) != 0 {
		t.Fatalf("want empty non-nil result, got %v", scores)
	}
}

func TestScoreDuplicateKeys(t *testing.T) {
	dup := []Record{
		{Lane: 2, Band: 1, FragmentSize: 800},
		{Lane: 2, Band: 1, FragmentSize: 810},
	}
	clean := []Record{{Lane: 2, Band: 1, FragmentSize: 790}}

	if _, err := Score(dup, clean); !errors.Is(err, ErrDuplicateJoinKey) {
		t.Errorf("duplicate reference key: got %v, want ErrDuplicateJoinKey", err)
	}
	if _, err := Score(clean, dup); !errors.Is(err, ErrDuplicateJoinKey) {
		t.Errorf("duplicate sample key: got %v, want ErrDuplicateJoinKey", err)
	}
}
