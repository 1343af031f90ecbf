// Package fragment holds the gel band data model, the size annotation step,
// and the reference-versus-sample band matching scorer.
package fragment

// LadderEntry is one band of the sizing ladder: a fragment of known size at
// an observed migration distance. Ladder tables are immutable once loaded.
type LadderEntry struct {
	Lane              int
	Band              int
	MigrationDistance float64 // Rf
	KnownSize         float64
}

// Record is one measured band from a reference or sample table. All fields
// except FragmentSize come from the loader; FragmentSize is set exactly once,
// by Annotate, and is read-only downstream.
type Record struct {
	Lane              int
	Band              int
	SampleLabel       string
	MigrationDistance float64 // Rf
	RawVolume         float64
	CalibratedVolume  float64
	FragmentSize      float64 // derived
}

// MatchingScore is the per-band size agreement between a reference band and
// the sample band occupying the same (lane, band) position.
type MatchingScore struct {
	Lane          int
	Band          int
	ReferenceSize float64
	SampleSize    float64
	Score         float64 // |ReferenceSize - SampleSize|
}
