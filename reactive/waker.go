package reactive

import mapset "github.com/deckarep/golang-set/v2"

// Waker is a dependent's interest in a cell. Wake is called whenever the
// cell changes and reports whether the dependent still wants to hear about
// it; returning false removes the waker from the cell.
//
// Wakers are made with NewWaker or NewScope. Both hand out pointers, so
// every waker has its own identity and interest sets can key on it.
type Waker interface {
	Wake() bool
	waker()
}

type funcWaker struct {
	fn func() bool
}

func (w *funcWaker) Wake() bool {
	return w.fn()
}

func (*funcWaker) waker() {}

// NewWaker adapts fn into a Waker with its own identity.
func NewWaker(fn func() bool) Waker {
	return &funcWaker{fn: fn}
}

// wakerSet is the interest set shared by signals and computeds.
type wakerSet struct {
	set mapset.Set[Waker]
}

func newWakerSet() wakerSet {
	return wakerSet{set: mapset.NewThreadUnsafeSet[Waker]()}
}

// add registers w. A scope also remembers the set so it can take itself
// out again when it is released.
func (ws *wakerSet) add(w Waker) {
	if w == nil {
		return
	}
	if s, ok := w.(*Scope); ok {
		if s.disposed {
			return
		}
		s.link(ws)
	}
	ws.set.Add(w)
}

func (ws *wakerSet) remove(w Waker) {
	ws.set.Remove(w)
}

func (ws *wakerSet) len() int {
	return ws.set.Cardinality()
}

// notify wakes every waker once and keeps only the ones still interested.
// The survivors go into a fresh set, so anything tracked while notifying
// lands there too.
func (ws *wakerSet) notify() {
	prev := ws.set
	ws.set = mapset.NewThreadUnsafeSet[Waker]()
	for _, w := range prev.ToSlice() {
		if w.Wake() {
			ws.add(w)
		}
	}
}
