package gelstat

import "github.com/gelband/gelstat/padjust"

// Config carries every analysis parameter that the entry point is allowed to
// choose. The core packages take these values as plain arguments; nothing in
// them reads flags or the environment.
type Config struct {
	// LadderLane designates which lane of the ladder table holds the sizing
	// ladder. This is deployment-specific (lane 1 in ours) and deliberately
	// not a constant anywhere in the core.
	LadderLane int

	// CorrectionMethod is applied across the full scenario p-value vector.
	CorrectionMethod padjust.Method

	// ClusterCount is used for both the hierarchical tree cut and k-means.
	ClusterCount int

	// KMeansSeed makes k-means reproducible across runs.
	KMeansSeed int64

	// DBSCANEps and DBSCANMinPts parameterize density-based clustering.
	DBSCANEps    float64
	DBSCANMinPts int
}

// DefaultConfig matches the parameters of our usual gel comparison runs.
func DefaultConfig() Config {
	return Config{
		LadderLane:       1,
		CorrectionMethod: padjust.BenjaminiHochberg,
		ClusterCount:     3,
		KMeansSeed:       1,
		DBSCANEps:        50,
		DBSCANMinPts:     2,
	}
}
