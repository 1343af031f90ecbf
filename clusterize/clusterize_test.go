package clusterize

import (
	"math"
	"reflect"
	"testing"

	"github.com/gelband/gelstat/fragment"
)

func labeledRecords(label string, sizes ...float64) []fragment.Record {
	out := make([]fragment.Record, 0, len(sizes))
	for i, s := range sizes {
		out = append(out, fragment.Record{Lane: 1, Band: i + 1, SampleLabel: label, FragmentSize: s})
	}
	return out
}

// Two tight families of labels far apart from each other, plus an outlier.
func testFeatures() ([]string, [][]float64) {
	var records []fragment.Record
	records = append(records, labeledRecords("smallA", 100, 102, 104)...)
	records = append(records, labeledRecords("smallB", 101, 103, 105)...)
	records = append(records, labeledRecords("largeA", 900, 902, 904)...)
	records = append(records, labeledRecords("largeB", 901, 903, 905)...)
	records = append(records, labeledRecords("outlier", 5000)...)
	return FeatureVectors(records)
}

func TestFeatureVectors(t *testing.T) {
	labels, features := testFeatures()

	want := []string{"largeA", "largeB", "outlier", "smallA", "smallB"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}

	// smallA: mean 102, sd 2.
	smallA := features[3]
	if math.Abs(smallA[0]-102) > 1e-9 || math.Abs(smallA[1]-2) > 1e-9 {
		t.Errorf("smallA features = %v, want [102 2]", smallA)
	}

	// The single-band outlier must have zero spread, not NaN.
	outlier := features[2]
	if outlier[1] != 0 {
		t.Errorf("outlier stddev = %g, want 0", outlier[1])
	}
}

func TestDistanceMatrixSymmetry(t *testing.T) {
	labels, features := testFeatures()
	d := NewDistanceMatrix(labels, features)

	for _, a := range labels {
		if d.Distance(a, a) != 0 {
			t.Errorf("Distance(%s, %s) = %g, want 0", a, a, d.Distance(a, a))
		}
		for _, b := range labels {
			if d.Distance(a, b) != d.Distance(b, a) {
				t.Errorf("asymmetry: d(%s,%s)=%g, d(%s,%s)=%g", a, b, d.Distance(a, b), b, a, d.Distance(b, a))
			}
		}
	}

	if got := d.Distance("smallA", "smallB"); got > 5 {
		t.Errorf("smallA-smallB distance = %g, want small", got)
	}
	if got := d.Distance("smallA", "largeA"); got < 500 {
		t.Errorf("smallA-largeA distance = %g, want large", got)
	}
}

func TestHierarchical(t *testing.T) {
	labels, features := testFeatures()
	d := NewDistanceMatrix(labels, features)

	got := Hierarchical(d, 3)

	if got["smallA"] != got["smallB"] {
		t.Error("smallA and smallB should share a cluster")
	}
	if got["largeA"] != got["largeB"] {
		t.Error("largeA and largeB should share a cluster")
	}
	if got["smallA"] == got["largeA"] || got["smallA"] == got["outlier"] || got["largeA"] == got["outlier"] {
		t.Errorf("families not separated: %v", got)
	}

	// k = 1 collapses everything.
	all := Hierarchical(d, 1)
	for _, id := range all {
		if id != 0 {
			t.Fatalf("k=1 should give a single cluster, got %v", all)
		}
	}
}

func TestKMeansDeterministicAndSeparating(t *testing.T) {
	labels, features := testFeatures()

	first, err := KMeans(labels, features, 3, 42)
	if err != nil {
		t.Fatal(err)
	}
	second, err := KMeans(labels, features, 3, 42)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed gave different assignments: %v vs %v", first, second)
	}

	if first["smallA"] != first["smallB"] {
		t.Error("smallA and smallB should share a k-means cluster")
	}
	if first["largeA"] != first["largeB"] {
		t.Error("largeA and largeB should share a k-means cluster")
	}
	if first["smallA"] == first["largeA"] {
		t.Errorf("families not separated: %v", first)
	}
}

func TestKMeansBadK(t *testing.T) {
	labels, features := testFeatures()

	if _, err := KMeans(labels, features, 0, 1); err == nil {
		t.Error("k = 0 should be rejected")
	}
	if _, err := KMeans(labels, features, len(labels)+1, 1); err == nil {
		t.Error("k > n should be rejected")
	}
}

func TestDBSCANNoiseIsValid(t *testing.T) {
	labels, features := testFeatures()
	d := NewDistanceMatrix(labels, features)

	got := DBSCAN(d, 50, 2)

	if got["smallA"] != got["smallB"] || got["smallA"] == Noise {
		t.Errorf("small family should form a cluster: %v", got)
	}
	if got["largeA"] != got["largeB"] || got["largeA"] == Noise {
		t.Errorf("large family should form a cluster: %v", got)
	}
	if got["smallA"] == got["largeA"] {
		t.Errorf("families merged: %v", got)
	}
	if got["outlier"] != Noise {
		t.Errorf("outlier = %d, want Noise (%d)", got["outlier"], Noise)
	}
}
