package reactive_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/superreactive/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputedIsLazy(t *testing.T) {
	callCount := 0
	c := reactive.NewComputed(func(s *reactive.Scope) int {
		callCount++
		return 10
	})
	assert.Equal(t, 0, callCount)
	assert.True(t, c.IsStale())

	assert.Equal(t, 10, c.Read())
	assert.Equal(t, 10, c.Read())
	assert.Equal(t, 1, callCount)
	assert.False(t, c.IsStale())
}

func TestComputedTwoSignals(t *testing.T) {
	//  s1  s2
	//   | /
	//   c
	s1 := reactive.NewSignal(0)
	s2 := reactive.NewSignal(0)
	callCount := 0
	c := reactive.NewComputed(func(s *reactive.Scope) int {
		callCount++
		return s1.Track(s) + s2.Track(s)
	})

	assert.Equal(t, 0, c.Read())
	assert.Equal(t, 0, c.Read())
	assert.Equal(t, 1, callCount)

	s1.Write(10)
	assert.Equal(t, 1, callCount, "writes only mark stale")
	assert.Equal(t, 10, c.Read())
	assert.Equal(t, 2, callCount)

	s1.Write(3)
	assert.Equal(t, 3, c.Read())
	assert.Equal(t, 3, callCount)

	// both change before a single read
	s1.Write(10)
	s2.Write(5)
	assert.Equal(t, 15, c.Read())
	assert.Equal(t, 4, callCount)

	assert.Equal(t, 1, s1.WakerCount())
	assert.Equal(t, 1, s2.WakerCount())
}

func TestComputedUnwrittenDependencyStaysBounded(t *testing.T) {
	//  s1  s2
	//   | /
	//   c
	// only s2 is ever written; s1 is tracked on every run
	s1 := reactive.NewSignal(1)
	s2 := reactive.NewSignal(0)
	c := reactive.NewComputed(func(s *reactive.Scope) int {
		return s1.Track(s) + s2.Track(s)
	})

	for i := 0; i < 1000; i++ {
		s2.Write(i)
		assert.Equal(t, i+1, c.Read())
	}
	assert.Equal(t, 1, s1.WakerCount())
	assert.Equal(t, 1, s2.WakerCount())
}

func TestComputedRecomputesOncePerWriteBatch(t *testing.T) {
	a := reactive.NewSignal(1)
	callCount := 0
	c := reactive.NewComputed(func(s *reactive.Scope) int {
		callCount++
		return a.Track(s) * 2
	})
	c.Read()

	for i := 0; i < 5; i++ {
		a.Write(i)
	}
	assert.Equal(t, 8, c.Read())
	assert.Equal(t, 2, callCount)
}

func TestComputedSameValueWriteRecomputes(t *testing.T) {
	a := reactive.NewSignal(7)
	callCount := 0
	c := reactive.NewComputed(func(s *reactive.Scope) int {
		callCount++
		return a.Track(s) + 10
	})

	c.Read()
	c.Read()
	assert.Equal(t, 1, callCount)

	a.Write(7)
	assert.Equal(t, 17, c.Read())
	assert.Equal(t, 2, callCount)
}

func TestComputedUpdate(t *testing.T) {
	comp := reactive.NewComputed(func(s *reactive.Scope) int { return 10 })
	comp2 := reactive.NewComputed(func(s *reactive.Scope) int {
		return comp.Track(s) * 2
	})

	assert.Equal(t, 20, comp2.Read())
	comp.Update(func(s *reactive.Scope) int { return 5 })
	assert.True(t, comp2.IsStale())
	assert.Equal(t, 5, comp.Read())
	assert.Equal(t, 10, comp2.Read())
}

func TestComputedDynamicDependencies(t *testing.T) {
	useA := reactive.NewSignal(true)
	a := reactive.NewSignal("a")
	b := reactive.NewSignal("b")
	callCount := 0
	c := reactive.NewComputed(func(s *reactive.Scope) string {
		callCount++
		if useA.Track(s) {
			return a.Track(s)
		}
		return b.Track(s)
	})

	assert.Equal(t, "a", c.Read())
	b.Write("bb")
	assert.Equal(t, "a", c.Read())
	assert.Equal(t, 1, callCount, "b was never read")

	useA.Write(false)
	assert.Equal(t, "bb", c.Read())
	assert.Equal(t, 2, callCount)

	// a was read by the first run only; the second run dropped its edge
	assert.Equal(t, 0, a.WakerCount())
	a.Write("aa")
	assert.False(t, c.IsStale())
	assert.Equal(t, 0, a.WakerCount())
	assert.Equal(t, "bb", c.Read())
	assert.Equal(t, 2, callCount)
}

func TestComputedRepeatedTrackIsIdempotent(t *testing.T) {
	a := reactive.NewSignal(2)
	c := reactive.NewComputed(func(s *reactive.Scope) int {
		return a.Track(s) + a.Track(s) + a.Track(s)
	})

	assert.Equal(t, 6, c.Read())
	assert.Equal(t, 1, a.WakerCount())
}

func TestComputedPanicLeavesStale(t *testing.T) {
	a := reactive.NewSignal(0)
	callCount := 0
	c := reactive.NewComputed(func(s *reactive.Scope) int {
		callCount++
		v := a.Track(s)
		if v < 0 {
			panic("negative")
		}
		return v
	})

	assert.Equal(t, 0, c.Read())
	a.Write(-1)
	assert.PanicsWithValue(t, "negative", func() { c.Read() })
	assert.True(t, c.IsStale())
	assert.Panics(t, func() { c.Read() }, "still failing, still retried")
	assert.Equal(t, 3, callCount)

	a.Write(4)
	assert.Equal(t, 4, c.Read())
	assert.Equal(t, 4, callCount)
	assert.False(t, c.IsStale())
}

func TestComputedTryRead(t *testing.T) {
	boom := errors.New("boom")
	fail := reactive.NewSignal(true)
	c := reactive.NewComputed(func(s *reactive.Scope) int {
		if fail.Track(s) {
			panic(boom)
		}
		return 1
	})

	_, err := c.TryRead()
	require.Error(t, err)
	assert.ErrorIs(t, err, reactive.ErrComputePanicked)
	assert.ErrorIs(t, err, boom)

	fail.Write(false)
	v, err := c.TryRead()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestComputedTryReadNonError(t *testing.T) {
	c := reactive.NewComputed(func(s *reactive.Scope) int {
		panic(42)
	})
	_, err := c.TryRead()
	assert.ErrorIs(t, err, reactive.ErrComputePanicked)
	assert.Contains(t, err.Error(), "42")
}

func TestComputedCycle(t *testing.T) {
	var b *reactive.Computed[int]
	a := reactive.NewComputed(func(s *reactive.Scope) int {
		return b.Track(s) + 1
	})
	b = reactive.NewComputed(func(s *reactive.Scope) int {
		return a.Track(s) + 1
	})

	_, err := a.TryRead()
	assert.ErrorIs(t, err, reactive.ErrCycle)
	assert.True(t, a.IsStale())
	assert.True(t, b.IsStale())
}

func TestComputedCyclicWakeTerminates(t *testing.T) {
	src := reactive.NewSignal(0)
	a := reactive.NewComputed(func(s *reactive.Scope) int {
		return src.Track(s)
	})
	b := reactive.NewComputed(func(s *reactive.Scope) int {
		return a.Track(s)
	})
	a.Read()
	b.Read()

	// a also listens to b's changes without reading it
	b.Track(reactive.NewWaker(func() bool { return a.Awake() }))

	assert.NotPanics(t, func() { src.Write(1) })
	assert.Equal(t, 1, b.Read())
}

func TestComputedWriteDuringComputeStaysStale(t *testing.T) {
	a := reactive.NewSignal(1)
	first := true
	c := reactive.NewComputed(func(s *reactive.Scope) int {
		v := a.Track(s)
		if first {
			first = false
			a.Write(v + 1)
		}
		return v
	})

	assert.Equal(t, 1, c.Read())
	assert.True(t, c.IsStale())
	assert.Equal(t, 2, c.Read())
	assert.False(t, c.IsStale())
}

func TestComputedDispose(t *testing.T) {
	a := reactive.NewSignal(1)
	callCount := 0
	c := reactive.NewComputed(func(s *reactive.Scope) int {
		callCount++
		return a.Track(s)
	})
	c.Read()

	c.Dispose()
	a.Write(2)
	assert.Equal(t, 0, a.WakerCount())

	// reading again resubscribes
	assert.Equal(t, 2, c.Read())
	assert.Equal(t, 2, callCount)
	assert.Equal(t, 1, a.WakerCount())
}
