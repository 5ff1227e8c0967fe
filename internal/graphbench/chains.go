// Package graphbench builds synthetic reactive graphs and drives them for
// the benchmark commands.
package graphbench

import (
	"time"

	"github.com/delaneyj/superreactive/reactive"
	"github.com/jamiealquiza/tachymeter"
)

// Chains is one source feeding width independent chains of height
// computeds. Each chain tail is watched by a root scope; woken tails are
// re-read after every write, the way an effect layer would flush.
type Chains struct {
	Source *reactive.Signal[int]

	tails     []reactive.Cell[int]
	observers []*reactive.Scope
	pending   []int
	Flushed   int
}

func addOne(v int) int {
	return v + 1
}

func NewChains(width, height int) *Chains {
	c := &Chains{Source: reactive.NewSignal(1)}
	for i := 0; i < width; i++ {
		var last reactive.Cell[int] = c.Source
		for j := 0; j < height; j++ {
			last = reactive.Combine1(last, addOne)
		}

		idx := i
		observer := reactive.NewScope(func() {
			c.pending = append(c.pending, idx)
		})
		last.Track(observer)

		c.tails = append(c.tails, last)
		c.observers = append(c.observers, observer)
	}
	return c
}

// Write sets the source and re-reads every tail that was woken, including
// tails woken again while flushing.
func (c *Chains) Write(v int) {
	c.Source.Write(v)

	for len(c.pending) > 0 {
		pending := c.pending
		c.pending = nil
		for _, idx := range pending {
			c.tails[idx].Read()
			c.Flushed++
		}
	}
}

// Tail returns the current value at the end of chain i.
func (c *Chains) Tail(i int) int {
	return c.tails[i].Read()
}

// Propagate times iters writes of the source.
func (c *Chains) Propagate(iters int) *tachymeter.Metrics {
	tach := tachymeter.New(&tachymeter.Config{Size: iters})
	for i := 0; i < iters; i++ {
		start := time.Now()
		c.Write(c.Source.Read() + 1)
		tach.AddTime(time.Since(start))
	}
	return tach.Calc()
}

// Dispose unsubscribes every tail observer.
func (c *Chains) Dispose() {
	for _, o := range c.observers {
		o.Dispose()
	}
}
