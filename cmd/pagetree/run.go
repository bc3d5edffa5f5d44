package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"pagetree"
	"pagetree/metrics"
)

type config struct {
	rank     int
	auto     int
	seed     int64
	inserts  []int64
	deletes  []int64
	searches []int64
	finds    []int64
	render   bool
	stats    bool
	logger   pagetree.Logger
}

// autoKeySpace bounds random keys so small runs still produce readable dumps.
const autoKeySpace = 1000

func run(cfg config, out io.Writer) error {
	tree, err := pagetree.New(pagetree.WithRank(cfg.rank), pagetree.WithLogger(cfg.logger))
	if err != nil {
		return err
	}

	if cfg.auto > autoKeySpace {
		return errors.Newf("--auto %d exceeds the %d distinct keys available", cfg.auto, autoKeySpace)
	}
	rng := rand.New(rand.NewSource(cfg.seed))
	for tree.Len() < cfg.auto {
		// Duplicates are rejected and simply drawn again
		_ = tree.Insert(rng.Int63n(autoKeySpace))
	}

	// Rejected inserts and deletes are reported through the logger
	for _, v := range cfg.inserts {
		_ = tree.Insert(v)
	}
	for _, v := range cfg.deletes {
		_ = tree.Delete(v)
	}

	for _, v := range cfg.searches {
		verdict := "not found"
		if tree.Search(v) {
			verdict = "found"
		}
		fmt.Fprintf(out, "search %d: %s\n", v, verdict)
	}

	for _, v := range cfg.finds {
		page, ok := tree.Locate(v)
		if !ok {
			fmt.Fprintf(out, "find %d: not found\n", v)
			continue
		}
		parent, ok := page.Parent()
		if !ok {
			fmt.Fprintf(out, "find %d: page %s at level %d, root\n", v, page, page.Level())
			continue
		}
		fmt.Fprintf(out, "find %d: page %s at level %d, parent %s\n", v, page, page.Level(), parent)
	}

	if cfg.render {
		if _, err := io.WriteString(out, tree.Render()); err != nil {
			return err
		}
	} else if err := tree.Dump(out); err != nil {
		return err
	}

	if cfg.stats {
		return writeStats(tree, out)
	}
	return nil
}

func writeStats(tree *pagetree.Tree, out io.Writer) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(metrics.NewCollector("", nil, tree.Stats)); err != nil {
		return err
	}

	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gather stats")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}
