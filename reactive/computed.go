package reactive

import "weak"

// Computed is a derived cell. Its function runs lazily on Read, and only
// when something it tracked during the previous run has changed since.
type Computed[T any] struct {
	fn    func(*Scope) T
	value T

	stale     bool
	computing bool
	notifying bool

	scope  *Scope
	wakers wakerSet
}

// NewComputed creates a stale computed; fn does not run until the first
// Read or Track.
func NewComputed[T any](fn func(*Scope) T) *Computed[T] {
	c := &Computed[T]{
		fn:     fn,
		stale:  true,
		wakers: newWakerSet(),
	}
	// the scope only points back weakly, so upstream cells do not keep c
	// alive
	self := weak.Make(c)
	c.scope = &Scope{
		wake: func() bool {
			live := self.Value()
			if live == nil {
				return false
			}
			return live.Awake()
		},
	}
	return c
}

// Read returns the memoized value, recomputing first if stale. A panic in
// fn propagates to the caller and leaves the computed stale, so the next
// Read retries.
func (c *Computed[T]) Read() T {
	if c.computing {
		panic(ErrCycle)
	}
	if !c.stale {
		return c.value
	}

	c.computing = true
	c.stale = false
	committed := false
	defer func() {
		c.computing = false
		if !committed {
			c.stale = true
		}
	}()

	c.scope.release()
	value := c.fn(c.scope)
	c.value = value
	committed = true
	return value
}

// TryRead is Read with a panicking fn reported as an error wrapping
// ErrComputePanicked.
func (c *Computed[T]) TryRead() (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoveredError(r)
		}
	}()
	return c.Read(), nil
}

// Track subscribes w and returns the current value.
func (c *Computed[T]) Track(w Waker) T {
	c.wakers.add(w)
	return c.Read()
}

// Update swaps the compute function and invalidates the cell.
func (c *Computed[T]) Update(fn func(*Scope) T) {
	c.fn = fn
	c.Awake()
}

// Awake marks the computed stale and wakes its own subscribers. It always
// reports true: a computed reached through a live scope is interested.
//
// Dependents are woken even when the cell was already stale, so every
// branch of a diamond reaches the bottom. A cell woken again while it is
// still waking its subscribers stops there, which keeps cycles finite.
func (c *Computed[T]) Awake() bool {
	c.stale = true
	if c.notifying {
		return true
	}
	c.notifying = true
	defer func() { c.notifying = false }()

	c.wakers.notify()
	return true
}

func (c *Computed[T]) Notify() {
	c.wakers.notify()
}

func (c *Computed[T]) WakerCount() int {
	return c.wakers.len()
}

func (c *Computed[T]) IsStale() bool {
	return c.stale
}

// Dispose drops every upstream subscription and owned child. The computed
// stays usable: the next Read recomputes and subscribes again.
func (c *Computed[T]) Dispose() {
	c.scope.release()
	c.stale = true
}
