// gelcompare estimates DNA fragment sizes from gel electrophoresis exports,
// statistically compares sample fragments against reference fragments with
// multiple-testing correction, and summarizes how sample labels cluster.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/carbocation/pfx"

	"github.com/gelband/gelstat"
	"github.com/gelband/gelstat/fragment"
	"github.com/gelband/gelstat/geltable"
	"github.com/gelband/gelstat/padjust"
	"github.com/gelband/gelstat/scenario"
)

func main() {
	var ladderPath, referencePath, samplePath, scenariosPath, methodName, plotDir string
	cfg := gelstat.DefaultConfig()

	flag.StringVar(&ladderPath, "ladder", "", "Table with the sizing ladder (lane, band, rf, known_size)")
	flag.StringVar(&referencePath, "reference", "", "Table with the reference fragments")
	flag.StringVar(&samplePath, "sample", "", "Table with the sample fragments")
	flag.StringVar(&scenariosPath, "scenarios", "", "CSV declaring the (reference_label, sample_label) comparisons, in order")
	flag.IntVar(&cfg.LadderLane, "ladder_lane", cfg.LadderLane, "Lane of the ladder table that holds the sizing ladder")
	flag.StringVar(&methodName, "method", cfg.CorrectionMethod.String(), "Multiple-testing correction: bonferroni, holm, hochberg, hommel, BH, or BY")
	flag.IntVar(&cfg.ClusterCount, "clusters", cfg.ClusterCount, "Cluster count for hierarchical and k-means clustering")
	flag.Int64Var(&cfg.KMeansSeed, "kmeans_seed", cfg.KMeansSeed, "Seed for k-means initialization")
	flag.Float64Var(&cfg.DBSCANEps, "dbscan_eps", cfg.DBSCANEps, "DBSCAN neighborhood radius, in fragment-size units")
	flag.IntVar(&cfg.DBSCANMinPts, "dbscan_minpts", cfg.DBSCANMinPts, "DBSCAN minimum neighborhood size")
	flag.StringVar(&plotDir, "plot", "", "Optional directory for per-label distribution PNGs. If empty, no charts are rendered.")
	flag.Parse()

	if ladderPath == "" || referencePath == "" || samplePath == "" || scenariosPath == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	method, err := padjust.ParseMethod(methodName)
	if err != nil {
		log.Fatalln(err)
	}
	cfg.CorrectionMethod = method

	if err := run(cfg, ladderPath, referencePath, samplePath, scenariosPath, plotDir); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}

func run(cfg gelstat.Config, ladderPath, referencePath, samplePath, scenariosPath, plotDir string) error {
	ladder, err := loadLadder(ladderPath)
	if err != nil {
		return err
	}
	reference, err := loadFragments(referencePath)
	if err != nil {
		return err
	}
	sample, err := loadFragments(samplePath)
	if err != nil {
		return err
	}
	scenarios, err := loadScenarios(scenariosPath)
	if err != nil {
		return err
	}

	log.Println("Annotating fragment sizes against ladder lane", cfg.LadderLane)
	reference, err = fragment.Annotate(reference, ladder, cfg.LadderLane)
	if err != nil {
		return err
	}
	sample, err = fragment.Annotate(sample, ladder, cfg.LadderLane)
	if err != nil {
		return err
	}

	log.Println("Running", len(scenarios), "comparison scenarios")
	results := scenario.Run(scenarios, reference, sample)
	results, err = scenario.AdjustPValues(results, cfg.CorrectionMethod)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
			log.Println("Scenario failed:", r.Err)
		}
	}
	log.Println(len(results)-failed, "of", len(results), "scenarios computed;", failed, "failed")

	printScenarioResults(results, cfg.CorrectionMethod)
	printLabelSummaries(sample)

	if err := printClusters(sample, cfg); err != nil {
		return err
	}

	if err := terminalHistogram(sample); err != nil {
		return err
	}

	if plotDir != "" {
		if err := renderDistributions(plotDir, sample); err != nil {
			return err
		}
	}

	return nil
}

func loadLadder(path string) ([]fragment.LadderEntry, error) {
	r, err := openTable(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return geltable.ReadLadderTable(r)
}

func loadFragments(path string) ([]fragment.Record, error) {
	r, err := openTable(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return geltable.ReadFragmentTable(r)
}

func loadScenarios(path string) ([]scenario.Scenario, error) {
	r, err := openTable(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return geltable.ReadScenarios(r)
}

// openTable opens a possibly-compressed table export.
func openTable(path string) (io.ReadCloser, error) {
	f, err := os.Open(gelstat.ExpandHome(path))
	if err != nil {
		return nil, pfx.Err(err)
	}

	r, err := gelstat.MaybeDecompressReadCloserFromFile(f)
	if err != nil {
		f.Close()
		return nil, pfx.Err(err)
	}

	return r, nil
}
