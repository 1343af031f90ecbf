package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/gelband/gelstat/fragment"
)

const distributionBins = 10

// renderDistributions writes one binned fragment-size distribution PNG per
// sample label into dir.
func renderDistributions(dir string, records []fragment.Record) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return pfx.Err(err)
	}

	byLabel := make(map[string][]float64)
	for _, r := range records {
		byLabel[r.SampleLabel] = append(byLabel[r.SampleLabel], r.FragmentSize)
	}

	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		graph := chart.BarChart{
			Title:    fmt.Sprintf("Fragment sizes: %s", label),
			Height:   512,
			BarWidth: 40,
			Bars:     binnedBars(byLabel[label]),
		}

		path := filepath.Join(dir, fmt.Sprintf("sizes_%s.png", label))
		f, err := os.Create(path)
		if err != nil {
			return pfx.Err(err)
		}

		if err := graph.Render(chart.PNG, f); err != nil {
			f.Close()
			return pfx.Err(err)
		}
		if err := f.Close(); err != nil {
			return pfx.Err(err)
		}

		log.Println("Wrote", path)
	}

	return nil
}

func binnedBars(sizes []float64) []chart.Value {
	lo, hi := sizes[0], sizes[0]
	for _, s := range sizes {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}

	if hi == lo {
		// A degenerate distribution still deserves a chart.
		return []chart.Value{{Value: float64(len(sizes)), Label: fmt.Sprintf("%.0f", lo)}}
	}

	width := (hi - lo) / distributionBins
	counts := make([]int, distributionBins)
	for _, s := range sizes {
		bin := int((s - lo) / width)
		if bin >= distributionBins {
			bin = distributionBins - 1
		}
		counts[bin]++
	}

	bars := make([]chart.Value, 0, distributionBins)
	for i, c := range counts {
		center := lo + (float64(i)+0.5)*width
		bars = append(bars, chart.Value{Value: float64(c), Label: fmt.Sprintf("%.0f", center)})
	}

	return bars
}
