package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/superreactive/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	combineCountKey = "count"
	outKey          = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the CombineN helpers for package reactive",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  combineCountKey,
				Usage: "Highest CombineN arity to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Output file",
				Value: "reactive/combine.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for reactive started !")
	defer func() {
		log.Printf("Codegen for reactive finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(combineCountKey))
	if count < 1 {
		return fmt.Errorf("--%s must be at least 1, got %d", combineCountKey, count)
	}
	out := cmd.String(outKey)
	log.Printf("Combine arity: 1..%d -> %s", count, out)

	contents, err := format.Source([]byte(templates.CombineGen(count)))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}
