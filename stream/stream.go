// Package stream is a small push-based event stream with a bridge into
// package reactive. Streams are single-threaded, like the cells they feed.
package stream

import "slices"

type subscriber[T any] struct {
	fn     func(T)
	active bool
}

// Stream fans every value passed to Next out to its subscribers, in
// subscription order.
type Stream[T any] struct {
	subs           []*subscriber[T]
	hasSubscribers bool
	onFirst        func()
	onZero         func()
}

func New[T any]() *Stream[T] {
	return &Stream[T]{}
}

// Next delivers v to every current subscriber. Subscribers that unsubscribe
// during delivery are skipped; ones that subscribe during it wait for the
// next value.
func (s *Stream[T]) Next(v T) {
	for _, sub := range slices.Clone(s.subs) {
		if sub.active {
			sub.fn(v)
		}
	}
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (s *Stream[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	sub := &subscriber[T]{fn: fn, active: true}
	s.subs = append(s.subs, sub)
	if !s.hasSubscribers {
		s.hasSubscribers = true
		if s.onFirst != nil {
			s.onFirst()
		}
	}

	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		s.subs = slices.DeleteFunc(s.subs, func(x *subscriber[T]) bool { return x == sub })
		if len(s.subs) == 0 {
			s.hasSubscribers = false
			if s.onZero != nil {
				s.onZero()
			}
		}
	}
}

func (s *Stream[T]) SubscriberCount() int {
	return len(s.subs)
}

// OnFirstSubscribe sets the hook run when the stream goes from zero
// subscribers to one.
func (s *Stream[T]) OnFirstSubscribe(fn func()) {
	s.onFirst = fn
}

// OnZeroSubscribers sets the hook run when the last subscriber leaves.
func (s *Stream[T]) OnZeroSubscribers(fn func()) {
	s.onZero = fn
}
