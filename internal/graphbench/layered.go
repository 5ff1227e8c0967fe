package graphbench

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/superreactive/reactive"
)

// LayeredConfig describes a layered graph: Width sources, TotalLayers-1
// rows of computeds, each reading NSources cells from the row above.
// Dynamic nodes (1-StaticFraction of them) skip one of their sources
// depending on the value of the first.
type LayeredConfig struct {
	Name           string
	Width          int
	TotalLayers    int
	StaticFraction float64
	NSources       int
	ReadFraction   float64
	Iterations     int
}

var DefaultLayeredConfigs = []LayeredConfig{
	{
		Name:           "simple component",
		Width:          10,
		StaticFraction: 1,
		NSources:       2,
		TotalLayers:    5,
		ReadFraction:   0.2,
		Iterations:     600000,
	},
	{
		Name:           "dynamic component",
		Width:          10,
		TotalLayers:    10,
		StaticFraction: 0.75,
		NSources:       6,
		ReadFraction:   0.2,
		Iterations:     15000,
	},
	{
		Name:           "large web app",
		Width:          1000,
		TotalLayers:    12,
		StaticFraction: 0.95,
		NSources:       4,
		ReadFraction:   1,
		Iterations:     7000,
	},
	{
		Name:           "wide dense",
		Width:          1000,
		TotalLayers:    5,
		StaticFraction: 1,
		NSources:       25,
		ReadFraction:   1,
		Iterations:     3000,
	},
	{
		Name:           "deep",
		Width:          5,
		TotalLayers:    500,
		StaticFraction: 1,
		NSources:       3,
		ReadFraction:   1,
		Iterations:     500,
	},
	{
		Name:           "very dynamic",
		Width:          100,
		TotalLayers:    15,
		StaticFraction: 0.5,
		NSources:       6,
		ReadFraction:   1,
		Iterations:     2000,
	},
}

// Layered is a built graph. Counter counts compute function runs.
type Layered struct {
	sources   []*reactive.Signal[int]
	layers    [][]*reactive.Computed[int]
	isDynamic [][]bool
	Counter   int64
}

// Result of one Run. Digest is an xxhash over every leaf value read, so two
// runs of the same graph can be compared without keeping the values.
type Result struct {
	Sum    int
	Count  int64
	Digest uint64
}

func NewLayered(cfg LayeredConfig) (*Layered, error) {
	if cfg.Width < 1 {
		return nil, fmt.Errorf("layered graph %q: width must be at least 1, got %d", cfg.Name, cfg.Width)
	}

	g := &Layered{}
	g.sources = make([]*reactive.Signal[int], cfg.Width)
	for i := range g.sources {
		g.sources[i] = reactive.NewSignal(i)
	}

	random := rand.New(rand.NewSource(0))
	prevRow := make([]reactive.Cell[int], len(g.sources))
	for i, s := range g.sources {
		prevRow[i] = s
	}
	for l := 0; l < cfg.TotalLayers-1; l++ {
		row, dynamic := g.makeRow(prevRow, cfg, random)
		g.layers = append(g.layers, row)
		g.isDynamic = append(g.isDynamic, dynamic)

		prevRow = make([]reactive.Cell[int], len(row))
		for i, c := range row {
			prevRow[i] = c
		}
	}
	return g, nil
}

func (g *Layered) makeRow(sources []reactive.Cell[int], cfg LayeredConfig, random *rand.Rand) ([]*reactive.Computed[int], []bool) {
	row := make([]*reactive.Computed[int], len(sources))
	isDynamic := make([]bool, len(sources))

	for myDex := range sources {
		mySources := make([]reactive.Cell[int], 0, cfg.NSources)
		for sourceDex := 0; sourceDex < cfg.NSources; sourceDex++ {
			mySources = append(mySources, sources[(myDex+sourceDex)%len(sources)])
		}

		if random.Float64() < cfg.StaticFraction {
			row[myDex] = reactive.NewComputed(func(s *reactive.Scope) int {
				g.Counter++
				sum := 0
				for _, src := range mySources {
					sum += src.Track(s)
				}
				return sum
			})
			continue
		}

		first, tail := mySources[0], mySources[1:]
		row[myDex] = reactive.NewComputed(func(s *reactive.Scope) int {
			g.Counter++
			sum := first.Track(s)
			if len(tail) == 0 {
				return sum
			}
			shouldDrop := sum&0x1 > 0
			dropDex := sum % len(tail)
			for i, src := range tail {
				if shouldDrop && i == dropDex {
					continue
				}
				sum += src.Track(s)
			}
			return sum
		})
		isDynamic[myDex] = true
	}
	return row, isDynamic
}

// DynamicCount is the number of dynamic nodes in the graph.
func (g *Layered) DynamicCount() int {
	n := 0
	for _, row := range g.isDynamic {
		for _, d := range row {
			if d {
				n++
			}
		}
	}
	return n
}

// Leaves is the last row of computeds.
func (g *Layered) Leaves() []*reactive.Computed[int] {
	if len(g.layers) == 0 {
		return nil
	}
	return g.layers[len(g.layers)-1]
}

// Run writes one source per iteration, round robin, and reads a fixed
// random subset of the leaves after each write.
func (g *Layered) Run(iterations int, readFraction float64) Result {
	random := rand.New(rand.NewSource(0))
	leaves := g.Leaves()
	skipCount := int(math.Round(float64(len(leaves)) * (1 - readFraction)))
	readLeaves := removeElems(leaves, skipCount, random)

	start := g.Counter
	digest := xxhash.New()
	var buf [8]byte
	for i := 0; i < iterations; i++ {
		sourceDex := i % len(g.sources)
		g.sources[sourceDex].Write(i + sourceDex)

		for _, leaf := range readLeaves {
			binary.LittleEndian.PutUint64(buf[:], uint64(leaf.Read()))
			digest.Write(buf[:])
		}
	}

	sum := 0
	for _, leaf := range readLeaves {
		sum += leaf.Read()
	}
	return Result{
		Sum:    sum,
		Count:  g.Counter - start,
		Digest: digest.Sum64(),
	}
}

func removeElems[T any](src []T, rmCount int, random *rand.Rand) []T {
	out := make([]T, len(src))
	copy(out, src)
	for i := 0; i < rmCount && len(out) > 0; i++ {
		rmDex := random.Intn(len(out))
		out[rmDex] = out[len(out)-1]
		out = out[:len(out)-1]
	}
	return out
}
