package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/dirtycheck/cmd/benchmark/templates"
	"github.com/delaneyj/dirtycheck/scope"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	configKey  = "config"
	formatKey  = "format"
	profileKey = "profile"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure digest latency over chains of watches",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  configKey,
				Usage: "YAML file with widths, heights and iterations",
			},
			&cli.StringFlag{
				Name:  formatKey,
				Usage: "Output format: table or markdown",
				Value: "table",
			},
			&cli.BoolFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to default.pgo",
			},
		},
		Action: benchmark,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func benchmark(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd.String(configKey))
	if err != nil {
		return err
	}

	if cmd.Bool(profileKey) {
		f, err := os.Create("default.pgo")
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	if _, err := runScenario(10, 10, cfg.Iterations, cfg.ByValue); err != nil {
		return err
	}

	var rows []templates.Row
	for _, w := range cfg.Widths {
		for _, h := range cfg.Heights {
			row, err := runScenario(w, h, cfg.Iterations, cfg.ByValue)
			if err != nil {
				return fmt.Errorf("%dx%d: %w", w, h, err)
			}
			rows = append(rows, *row)
		}
	}

	title := "Dirty-checking digest"
	if cfg.ByValue {
		title += " (by value)"
	}

	switch format := cmd.String(formatKey); format {
	case "table":
		renderTable(os.Stdout, title, rows)
	case "markdown":
		templates.WriteReport(os.Stdout, title, rows)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

// runScenario builds w chains of h watches, each copying the value below it
// plus one, then bumps the source and digests iterations times.
func runScenario(w, h, iterations int, byValue bool) (*templates.Row, error) {
	s := scope.New(scope.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Set("src", 1)

	var opts []scope.WatchOption
	if byValue {
		opts = append(opts, scope.ByValue())
	}

	watchCalls := 0
	leaves := make([]string, 0, w)
	for i := 0; i < w; i++ {
		prev := "src"
		for j := 0; j < h; j++ {
			from, to := prev, fmt.Sprintf("c%d_%d", i, j)
			s.Watch(
				func(s *scope.Scope) any {
					watchCalls++
					return s.Get(from)
				},
				func(newValue, oldValue any, s *scope.Scope) error {
					s.Set(to, newValue.(int)+1)
					return nil
				},
				opts...,
			)
			prev = to
		}
		leaves = append(leaves, prev)
	}

	if err := s.Digest(); err != nil {
		return nil, err
	}
	watchCalls = 0

	tach := tachymeter.New(&tachymeter.Config{Size: iterations})
	for i := 0; i < iterations; i++ {
		s.Set("src", scope.Value[int](s, "src")+1)
		start := time.Now()
		if err := s.Digest(); err != nil {
			return nil, err
		}
		tach.AddTime(time.Since(start))
	}

	leafSum := 0
	for _, leaf := range leaves {
		leafSum += scope.Value[int](s, leaf)
	}

	calc := tach.Calc()
	return &templates.Row{
		Name:       fmt.Sprintf("propagate: %d * %d", w, h),
		Watches:    s.WatchCount(),
		Digests:    iterations,
		WatchCalls: watchCalls,
		LeafSum:    leafSum,
		Avg:        calc.Time.Avg,
		Min:        calc.Time.Min,
		P75:        calc.Time.P75,
		P99:        calc.Time.P99,
		Max:        calc.Time.Max,
	}, nil
}

func renderTable(w io.Writer, title string, rows []templates.Row) {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(w)
	tbl.AppendHeader(table.Row{"benchmark", "watches", "calls/digest", "avg", "min", "p75", "p99", "max"})
	for _, r := range rows {
		tbl.AppendRow(table.Row{
			r.Name,
			r.Watches,
			r.WatchCalls / r.Digests,
			r.Avg,
			r.Min,
			r.P75,
			r.P99,
			r.Max,
		})
	}
	tbl.Render()
}
