package reactive_test

import (
	"testing"

	"github.com/delaneyj/superreactive/reactive"
	"github.com/stretchr/testify/assert"
)

func TestSignalReadDoesNotSubscribe(t *testing.T) {
	s := reactive.NewSignal(1)
	assert.Equal(t, 1, s.Read())
	assert.Equal(t, 0, s.WakerCount())
}

func TestSignalTrackDedupes(t *testing.T) {
	s := reactive.NewSignal("a")
	calls := 0
	w := reactive.NewWaker(func() bool {
		calls++
		return true
	})

	assert.Equal(t, "a", s.Track(w))
	assert.Equal(t, "a", s.Track(w))
	assert.Equal(t, 1, s.WakerCount())

	s.Write("b")
	assert.Equal(t, 1, calls)
	assert.Equal(t, "b", s.Read())
}

func TestSignalWriteSameValueStillNotifies(t *testing.T) {
	s := reactive.NewSignal(7)
	calls := 0
	s.Track(reactive.NewWaker(func() bool {
		calls++
		return true
	}))

	s.Write(7)
	s.Write(7)
	assert.Equal(t, 2, calls)
}

func TestSignalNotifyPrunesUninterested(t *testing.T) {
	s := reactive.NewSignal(0)
	keep, drop := 0, 0
	s.Track(reactive.NewWaker(func() bool {
		keep++
		return true
	}))
	s.Track(reactive.NewWaker(func() bool {
		drop++
		return false
	}))
	assert.Equal(t, 2, s.WakerCount())

	s.Write(1)
	assert.Equal(t, 1, s.WakerCount())
	s.Write(2)
	assert.Equal(t, 2, keep)
	assert.Equal(t, 1, drop)
}

func TestSignalTrackWhileNotifying(t *testing.T) {
	s := reactive.NewSignal(0)
	late := reactive.NewWaker(func() bool { return true })
	s.Track(reactive.NewWaker(func() bool {
		s.Track(late)
		return false
	}))

	s.Notify()
	assert.Equal(t, 1, s.WakerCount())
}

func TestSignalTrackNilIsIgnored(t *testing.T) {
	s := reactive.NewSignal(3)
	assert.Equal(t, 3, s.Track(nil))
	assert.Equal(t, 0, s.WakerCount())
	assert.NotPanics(t, func() { s.Write(4) })
}

func TestSignalWriteFn(t *testing.T) {
	s := reactive.NewSignal(2)
	calls := 0
	s.Track(reactive.NewWaker(func() bool {
		calls++
		return true
	}))

	s.WriteFn(func(prev int) int { return prev * 10 })
	assert.Equal(t, 20, s.Read())
	assert.Equal(t, 1, calls)
}

type wakeFunc func() bool

func (f wakeFunc) Wake() bool { return f() }

func TestSignalTrackFuncTypeWaker(t *testing.T) {
	s := reactive.NewSignal(0)
	calls := 0
	w := reactive.NewWaker(wakeFunc(func() bool {
		calls++
		return true
	}).Wake)

	assert.NotPanics(t, func() {
		s.Track(w)
		s.Track(w)
	})
	assert.Equal(t, 1, s.WakerCount())
	s.Write(1)
	assert.Equal(t, 1, calls)
}
