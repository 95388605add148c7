// Command sketchgeom evaluates sketch scripts and reports their shapes,
// bounds and probe hits.
//
//	sketchgeom [-config f.yaml] [-probes p.yaml] [-json] file.sketch...
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chazu/sketchgeom/pkg/config"
)

// exit codes
const (
	exitOK     = 0
	exitErrors = 1 // a script had errors
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// fileReport is everything reported for one script.
type fileReport struct {
	Path   string        `json:"path"`
	Result EvalResult    `json:"result"`
	Probes []probeReport `json:"probes,omitempty"`
}

// probeReport lists the entries one probe hit, by name when they have one.
type probeReport struct {
	Name  string   `json:"name"`
	Query string   `json:"query"`
	Hits  []string `json:"hits"`
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sketchgeom", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML settings file")
	probesPath := fs.String("probes", "", "YAML file of named point/box probes")
	asJSON := fs.Bool("json", false, "write JSON instead of text")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: sketchgeom [-config f.yaml] [-probes p.yaml] [-json] file.sketch...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
	}
	var probes config.ProbeSet
	if *probesPath != "" {
		var err error
		if probes, err = config.LoadProbesFile(*probesPath); err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
	}

	log, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	reports, err := evaluateFiles(context.Background(), cfg, log, probes, fs.Args())
	if err != nil {
		log.Error("run failed", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return exitErrors
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			fmt.Fprintln(stderr, err)
			return exitErrors
		}
	} else {
		renderText(stdout, reports)
	}

	for _, r := range reports {
		if len(r.Result.Errors) > 0 {
			return exitErrors
		}
	}
	return exitOK
}

// evaluateFiles evaluates every path concurrently, one App per file, and
// returns the reports in argument order. Script errors are part of a
// report; only unreadable files fail the run.
func evaluateFiles(ctx context.Context, cfg config.Config, log *zap.Logger, probes config.ProbeSet, paths []string) ([]fileReport, error) {
	reports := make([]fileReport, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("sketchgeom: %w", err)
			}
			app := NewApp(cfg, log.With(zap.String("file", path)))
			res := app.Evaluate(string(src))
			reports[i] = fileReport{Path: path, Result: res}
			if len(res.Errors) == 0 {
				reports[i].Probes = runProbes(app, res, probes)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// runProbes answers each probe against the app's current sketch.
func runProbes(app *App, res EvalResult, probes config.ProbeSet) []probeReport {
	label := make(map[string]string, len(res.Shapes))
	for _, s := range res.Shapes {
		label[s.ID] = s.ID[:8]
		if s.Name != "" {
			label[s.ID] = s.Name
		}
	}

	out := make([]probeReport, 0, len(probes.Probes))
	for _, p := range probes.Probes {
		// Probe files are validated on load.
		q, _ := p.Query()
		var sel SelectResult
		if pt, ok := q.Point(); ok {
			sel = app.HitAt(pt.X, pt.Y)
		} else {
			b, _ := q.Region()
			sel = app.Select(b.MinX, b.MaxX, b.MinY, b.MaxY)
		}
		pr := probeReport{Name: p.Name, Query: q.String(), Hits: []string{}}
		for _, id := range sel.IDs {
			pr.Hits = append(pr.Hits, label[id])
		}
		if sel.Error != "" {
			pr.Hits = append(pr.Hits, "error: "+sel.Error)
		}
		out = append(out, pr)
	}
	return out
}
