package calibrate

import (
	"errors"
	"math"
	"testing"
)

func TestFitExactLine(t *testing.T) {
	// Points lying exactly on size = 1000 - 250*position.
	positions := []float64{0.1, 0.2, 0.4, 0.8}
	sizes := make([]float64, len(positions))
	for i, x := range positions {
		sizes[i] = 1000 - 250*x
	}

	m, err := Fit(sizes, positions)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(m.Intercept-1000) > 1e-9 || math.Abs(m.Slope+250) > 1e-9 {
		t.Fatalf("unexpected fit: %+v", m)
	}

	for i, got := range m.Predict(positions) {
		if math.Abs(got-sizes[i]) > 1e-9 {
			t.Errorf("position %g: predicted %g, want %g", positions[i], got, sizes[i])
		}
	}
}

// The OLS residual property: predictions at the calibration positions must
// reproduce the observations up to the fitting error, and the residuals must
// sum to (numerically) zero because the fit includes an intercept.
func TestFitResiduals(t *testing.T) {
	positions := []float64{0.12, 0.25, 0.41, 0.58, 0.77, 0.93}
	sizes := []float64{980, 760, 540, 410, 220, 95}

	m, err := Fit(sizes, positions)
	if err != nil {
		t.Fatal(err)
	}

	var residualSum float64
	for i, predicted := range m.Predict(positions) {
		residualSum += sizes[i] - predicted
	}

	if math.Abs(residualSum) > 1e-6 {
		t.Errorf("residuals sum to %g, want ~0", residualSum)
	}
}

func TestFitExtrapolates(t *testing.T) {
	m, err := Fit([]float64{100, 200}, []float64{1.0, 2.0})
	if err != nil {
		t.Fatal(err)
	}

	// Outside the calibration range on both sides.
	if got := m.PredictOne(0.0); math.Abs(got-0) > 1e-9 {
		t.Errorf("PredictOne(0) = %g, want 0", got)
	}
	if got := m.PredictOne(5.0); math.Abs(got-500) > 1e-9 {
		t.Errorf("PredictOne(5) = %g, want 500", got)
	}
}

func TestFitErrors(t *testing.T) {
	cases := []struct {
		name      string
		sizes     []float64
		positions []float64
	}{
		{"one point", []float64{100}, []float64{0.5}},
		{"empty", nil, nil},
		{"length mismatch", []float64{100, 200}, []float64{0.5}},
		{"no position spread", []float64{100, 200, 300}, []float64{0.5, 0.5, 0.5}},
	}

	for _, c := range cases {
		if _, err := Fit(c.sizes, c.positions); !errors.Is(err, ErrInsufficientCalibrationData) {
			t.Errorf("%s: got err %v, want ErrInsufficientCalibrationData", c.name, err)
		}
	}
}
