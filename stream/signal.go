package stream

import "github.com/delaneyj/superreactive/reactive"

// ToSignal writes every value emitted by s into a new signal that starts
// at initial. Values keep flowing until unsubscribe is called.
func ToSignal[T any](s *Stream[T], initial T) (sig *reactive.Signal[T], unsubscribe func()) {
	sig = reactive.NewSignal(initial)
	unsubscribe = s.Subscribe(sig.Write)
	return sig, unsubscribe
}
