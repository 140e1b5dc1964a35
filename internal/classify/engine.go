// Package classify ties the location analyzer and the hostname parser
// together into the per-device enrichment pipeline.
package classify

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/MrNetsudo/NetAssets/internal/geo"
	"github.com/MrNetsudo/NetAssets/internal/hostparse"
	"github.com/MrNetsudo/NetAssets/internal/model"
)

// Result is the full enrichment verdict for one device.
type Result struct {
	Device   model.DeviceRecord    `json:"device"`
	Location geo.ValidatedLocation `json:"location"`
	Parse    hostparse.Result      `json:"parse"`
}

// Engine classifies device records. Per-device work is pure and runs
// concurrently; the HA pairing pass runs once the whole batch is done.
type Engine struct {
	analyzer    *geo.Analyzer
	log         *zap.Logger
	concurrency int
}

// NewEngine builds an Engine. Pass zap.NewNop() to keep batch loops quiet;
// concurrency values below 1 are bumped to 1.
func NewEngine(log *zap.Logger, concurrency int) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Engine{
		analyzer:    geo.NewAnalyzer(log),
		log:         log,
		concurrency: concurrency,
	}
}

// ClassifyOne enriches a single device record.
func (e *Engine) ClassifyOne(d model.DeviceRecord) Result {
	return Result{
		Device:   d,
		Location: e.analyzer.Analyze(d),
		Parse:    hostparse.Parse(d.DeviceName, d.SystemLocation, d.ManagementIP),
	}
}

// Run classifies a batch. Results come back in input order regardless of
// scheduling, and HA partners are linked across the entire batch before
// returning.
func (e *Engine) Run(ctx context.Context, devices []model.DeviceRecord) ([]Result, error) {
	results := make([]Result, len(devices))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, d := range devices {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.ClassifyOne(d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "classify batch")
	}

	// Pairing needs the complete batch; this is the one serialization point.
	names := make([]string, len(results))
	parses := make([]hostparse.Result, len(results))
	for i, r := range results {
		names[i] = r.Device.DeviceName
		parses[i] = r.Parse
	}
	hostparse.LinkPairs(names, parses)
	for i := range results {
		results[i].Parse = parses[i]
	}

	return results, nil
}
