package stream

// Map emits fn(v) for every v emitted by src. It subscribes to src only
// while it has subscribers of its own.
func Map[T, K any](src *Stream[T], fn func(T) K) *Stream[K] {
	out := New[K]()
	var unsub func()
	out.OnFirstSubscribe(func() {
		unsub = src.Subscribe(func(v T) {
			out.Next(fn(v))
		})
	})
	out.OnZeroSubscribers(func() {
		unsub()
	})
	return out
}

// SwitchAll flattens a stream of streams, forwarding only the most recent
// inner stream.
func SwitchAll[T any](src *Stream[*Stream[T]]) *Stream[T] {
	out := New[T]()
	lastUnsub := func() {}
	var outerUnsub func()
	out.OnFirstSubscribe(func() {
		outerUnsub = src.Subscribe(func(inner *Stream[T]) {
			lastUnsub()
			lastUnsub = inner.Subscribe(out.Next)
		})
	})
	out.OnZeroSubscribers(func() {
		lastUnsub()
		lastUnsub = func() {}
		outerUnsub()
	})
	return out
}

// Of emits vs, in order, to each first subscriber.
func Of[T any](vs ...T) *Stream[T] {
	out := New[T]()
	out.OnFirstSubscribe(func() {
		for _, v := range vs {
			out.Next(v)
		}
	})
	return out
}

// Combine2 emits fn(a, b) with the latest value of each input, starting
// once both inputs have emitted at least once.
func Combine2[A, B, K any](a *Stream[A], b *Stream[B], fn func(A, B) K) *Stream[K] {
	out := New[K]()
	var (
		lastA          A
		lastB          B
		hasA, hasB     bool
		unsubA, unsubB func()
	)
	emit := func() {
		if hasA && hasB {
			out.Next(fn(lastA, lastB))
		}
	}
	out.OnFirstSubscribe(func() {
		unsubA = a.Subscribe(func(v A) {
			lastA, hasA = v, true
			emit()
		})
		unsubB = b.Subscribe(func(v B) {
			lastB, hasB = v, true
			emit()
		})
	})
	out.OnZeroSubscribers(func() {
		unsubA()
		unsubB()
		hasA, hasB = false, false
	})
	return out
}
