// Package calibrate fits the size-versus-migration relationship for a gel
// from a ladder of fragments of known size, and predicts fragment sizes for
// arbitrary migration distances.
//
// The fit is deliberately a simple ordinary least-squares line. Gel
// migration-to-size relationships are sometimes closer to log-linear, and no
// robust-regression or outlier handling is attempted here; callers who need
// either should transform their inputs before fitting.
package calibrate

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientCalibrationData indicates that the ladder did not provide at
// least two usable (size, position) pairs, or that the pairs cannot identify
// a line (e.g., every band migrated the same distance).
var ErrInsufficientCalibrationData = errors.New("calibrate: need at least two distinct ladder points to fit a model")

// Model is a fitted calibration line: size = Intercept + Slope*position.
type Model struct {
	Intercept float64
	Slope     float64
}

// Fit performs ordinary least-squares simple linear regression of known
// fragment sizes on their migration positions. The two slices must be the
// same length and hold at least two entries.
func Fit(knownSizes, knownPositions []float64) (Model, error) {
	if len(knownSizes) != len(knownPositions) || len(knownSizes) < 2 {
		return Model{}, ErrInsufficientCalibrationData
	}

	// A ladder where every band sits at the same position cannot identify a
	// slope; OLS would divide by zero.
	degenerate := true
	for _, x := range knownPositions {
		if x != knownPositions[0] {
			degenerate = false
			break
		}
	}
	if degenerate {
		return Model{}, ErrInsufficientCalibrationData
	}

	alpha, beta := stat.LinearRegression(knownPositions, knownSizes, nil, false)

	return Model{Intercept: alpha, Slope: beta}, nil
}

// PredictOne evaluates the fitted line at a single migration position.
func (m Model) PredictOne(position float64) float64 {
	return m.Intercept + m.Slope*position
}

// Predict evaluates the fitted line at each position. It is a pure function
// of the model: positions beyond the calibration range are extrapolated
// without complaint, which mirrors how the calibration has always been used
// but deserves caution near the ends of the gel.
func (m Model) Predict(positions []float64) []float64 {
	out := make([]float64, 0, len(positions))
	for _, x := range positions {
		out = append(out, m.PredictOne(x))
	}

	return out
}
