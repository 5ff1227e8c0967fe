package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/delaneyj/superreactive/internal/graphbench"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	maxWidthKey  = "max-width"
	maxHeightKey = "max-height"
	itersKey     = "iters"
	pgoKey       = "pgo"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure write propagation through W x H computed chains",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxWidthKey,
				Usage: "Largest number of chains; widths run 1, 10, 100... up to this",
				Value: 1_000,
			},
			&cli.UintFlag{
				Name:  maxHeightKey,
				Usage: "Largest chain length; heights run 1, 10, 100... up to this",
				Value: 1_000,
			},
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Writes per graph",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  pgoKey,
				Usage: "Write a CPU profile here, empty to disable",
				Value: "default.pgo",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(pgoKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	ww := powersOfTen(int(cmd.Uint(maxWidthKey)))
	hh := powersOfTen(int(cmd.Uint(maxHeightKey)))
	iters := int(cmd.Uint(itersKey))
	if iters < 1 {
		return fmt.Errorf("--%s must be at least 1", itersKey)
	}

	log.Printf("warming up")
	benchmarkChains(ww, hh, iters, false)
	benchmarkChains(ww, hh, iters, true)
	return nil
}

func powersOfTen(limit int) []int {
	var out []int
	for n := 1; n <= limit; n *= 10 {
		out = append(out, n)
	}
	return out
}

func benchmarkChains(ww, hh []int, iters int, shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("superreactive")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			chains := graphbench.NewChains(w, h)
			calc := chains.Propagate(iters)
			chains.Dispose()

			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
