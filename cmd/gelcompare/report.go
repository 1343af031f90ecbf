package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/montanaflynn/stats"

	"github.com/gelband/gelstat"
	"github.com/gelband/gelstat/clusterize"
	"github.com/gelband/gelstat/fragment"
	"github.com/gelband/gelstat/geltable"
	"github.com/gelband/gelstat/padjust"
	"github.com/gelband/gelstat/scenario"
)

func printScenarioResults(results []scenario.Result, method padjust.Method) {
	fmt.Println(strings.Join([]string{
		"Reference",
		"Sample",
		"Status",
		"F",
		"P",
		"AdjP_" + method.String(),
		"CILower",
		"CIUpper",
		"N_Matches",
		"MeanMatchScore",
	}, "\t"))

	for _, r := range results {
		if r.Failed() {
			fmt.Printf("%s\t%s\tfailed: %v\tN/A\tN/A\tN/A\tN/A\tN/A\tN/A\tN/A\n",
				r.Scenario.ReferenceLabel, r.Scenario.SampleLabel, r.Err)
			continue
		}

		meanScore := "N/A"
		if len(r.Matches) > 0 {
			values := make([]float64, 0, len(r.Matches))
			for _, m := range r.Matches {
				values = append(values, m.Score)
			}
			if fl, err := stats.Mean(values); err == nil {
				meanScore = fmt.Sprintf("%.3f", fl)
			}
		}

		fmt.Printf("%s\t%s\tok\t%.5g\t%.5g\t%.5g\t%.5g\t%.5g\t%d\t%s\n",
			r.Scenario.ReferenceLabel,
			r.Scenario.SampleLabel,
			r.Comparison.FStatistic,
			r.Comparison.PValue,
			r.AdjustedP,
			r.Comparison.CILower,
			r.Comparison.CIUpper,
			len(r.Matches),
			meanScore,
		)
	}
}

var labelSummaryHeader = []string{"Label", "N", "Mean", "SD", "Median", "Min", "Max", "QuantileMin", "QuantileMax"}

// printLabelSummaries emits one row of distribution summaries per sample
// label, plus the range of the per-record quantile scores within each label
// as a sanity check (QuantileMin should sit near 1/N, QuantileMax at 1).
func printLabelSummaries(records []fragment.Record) {
	fmt.Println(strings.Join(labelSummaryHeader, "\t"))
	for _, row := range labelSummaryRows(records) {
		fmt.Println(strings.Join(row, "\t"))
	}
}

func labelSummaryRows(records []fragment.Record) [][]string {
	quantiles := geltable.QuantileScores(records)

	sizesByLabel := make(map[string][]float64)
	quantilesByLabel := make(map[string][]float64)
	for i, r := range records {
		sizesByLabel[r.SampleLabel] = append(sizesByLabel[r.SampleLabel], r.FragmentSize)
		quantilesByLabel[r.SampleLabel] = append(quantilesByLabel[r.SampleLabel], quantiles[i])
	}

	labels := make([]string, 0, len(sizesByLabel))
	for label := range sizesByLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	rows := make([][]string, 0, len(labels))
	for _, label := range labels {
		data := stats.Float64Data(sizesByLabel[label])
		qdata := stats.Float64Data(quantilesByLabel[label])

		row := []string{label, fmt.Sprintf("%d", data.Len())}
		for _, statFn := range []func() (float64, error){
			data.Mean, data.StandardDeviation, data.Median, data.Min, data.Max,
			qdata.Min, qdata.Max,
		} {
			if fl, err := statFn(); err == nil {
				row = append(row, fmt.Sprintf("%.3f", fl))
			} else {
				row = append(row, "N/A")
			}
		}
		rows = append(rows, row)
	}

	return rows
}

func printClusters(records []fragment.Record, cfg gelstat.Config) error {
	labels, features := clusterize.FeatureVectors(records)
	if len(labels) == 0 {
		return nil
	}

	d := clusterize.NewDistanceMatrix(labels, features)

	k := cfg.ClusterCount
	if k > len(labels) {
		k = len(labels)
	}

	hier := clusterize.Hierarchical(d, k)
	km, err := clusterize.KMeans(labels, features, k, cfg.KMeansSeed)
	if err != nil {
		return err
	}
	db := clusterize.DBSCAN(d, cfg.DBSCANEps, cfg.DBSCANMinPts)

	fmt.Println(strings.Join([]string{"Label", "MeanSize", "SDSize", "Hierarchical", "KMeans", "DBSCAN"}, "\t"))
	for i, label := range labels {
		dbID := fmt.Sprintf("%d", db[label])
		if db[label] == clusterize.Noise {
			dbID = "noise"
		}
		fmt.Printf("%s\t%.3f\t%.3f\t%d\t%d\t%s\n", label, features[i][0], features[i][1], hier[label], km[label], dbID)
	}

	return nil
}

// terminalHistogram gives a quick look at the pooled sample fragment-size
// distribution without leaving the terminal.
func terminalHistogram(records []fragment.Record) error {
	if len(records) == 0 {
		return nil
	}

	sizes := make([]float64, 0, len(records))
	for _, r := range records {
		sizes = append(sizes, r.FragmentSize)
	}

	hist := histogram.Hist(15, sizes)

	return histogram.Fprint(os.Stdout, hist, histogram.Linear(40))
}
