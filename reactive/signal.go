package reactive

// Cell is anything that can be read and tracked: a Signal or a Computed.
type Cell[T any] interface {
	Read() T
	Track(w Waker) T
}

var (
	_ Cell[int] = (*Signal[int])(nil)
	_ Cell[int] = (*Computed[int])(nil)
)

// Signal is a mutable cell. Writes always notify, even when the new value
// equals the old one.
type Signal[T any] struct {
	value  T
	wakers wakerSet
}

func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		value:  initial,
		wakers: newWakerSet(),
	}
}

// Read returns the current value without subscribing.
func (s *Signal[T]) Read() T {
	return s.value
}

// Track subscribes w and returns the current value.
func (s *Signal[T]) Track(w Waker) T {
	s.wakers.add(w)
	return s.value
}

func (s *Signal[T]) Write(value T) {
	s.value = value
	s.Notify()
}

// WriteFn writes fn applied to the current value.
func (s *Signal[T]) WriteFn(fn func(prev T) T) {
	s.Write(fn(s.value))
}

// Notify wakes every subscriber and drops the ones that are no longer
// interested.
func (s *Signal[T]) Notify() {
	s.wakers.notify()
}

// WakerCount is the number of subscribers currently registered, dead ones
// included until the next Notify.
func (s *Signal[T]) WakerCount() int {
	return s.wakers.len()
}
