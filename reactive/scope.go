package reactive

import mapset "github.com/deckarep/golang-set/v2"

// Disposer is anything a Scope can own and release.
type Disposer interface {
	Dispose()
}

// Scope is the context a computation runs in. Each computed owns one scope
// for its whole life and hands it to every cell it tracks. Before every run
// the scope is released: it leaves the cells the last run tracked and lets
// go of what that run created, so only the new run's edges remain.
//
// A scope also owns children and cleanup callbacks that are released with
// it.
type Scope struct {
	wake     func() bool
	disposed bool
	sources  mapset.Set[*wakerSet]
	children []Disposer
	cleanups []func()
}

// NewScope creates a root scope for code outside the graph that wants to
// track cells. onWake, if set, runs every time a tracked cell changes; the
// scope stays subscribed until it is disposed.
func NewScope(onWake func()) *Scope {
	return &Scope{
		wake: func() bool {
			if onWake != nil {
				onWake()
			}
			return true
		},
	}
}

// Wake implements Waker. A disposed scope is never interested.
func (s *Scope) Wake() bool {
	if s.disposed {
		return false
	}
	if s.wake == nil {
		return true
	}
	return s.wake()
}

func (*Scope) waker() {}

// Adopt ties d's lifetime to s. Adopting into a disposed scope disposes d
// right away.
func (s *Scope) Adopt(d Disposer) {
	if s.disposed {
		d.Dispose()
		return
	}
	s.children = append(s.children, d)
}

// OnDispose registers fn to run when s is disposed, after its children.
func (s *Scope) OnDispose(fn func()) {
	if s.disposed {
		fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
}

// Dispose marks s dead and releases it. Calling it again is a no-op.
func (s *Scope) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.release()
}

func (s *Scope) Disposed() bool {
	return s.disposed
}

func (s *Scope) link(ws *wakerSet) {
	if s.sources == nil {
		s.sources = mapset.NewThreadUnsafeSet[*wakerSet]()
	}
	s.sources.Add(ws)
}

// release removes s from every cell it tracked, disposes its children and
// runs its cleanups in registration order. s stays usable.
func (s *Scope) release() {
	if s.sources != nil {
		for _, ws := range s.sources.ToSlice() {
			ws.remove(s)
		}
		s.sources.Clear()
	}

	children, cleanups := s.children, s.cleanups
	s.children, s.cleanups = nil, nil
	for _, child := range children {
		child.Dispose()
	}
	for _, fn := range cleanups {
		fn()
	}
}

// NewComputedIn creates a computed owned by parent; it is disposed along
// with parent.
func NewComputedIn[T any](parent *Scope, fn func(*Scope) T) *Computed[T] {
	c := NewComputed(fn)
	parent.Adopt(c)
	return c
}
