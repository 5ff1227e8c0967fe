package reactive

import (
	"errors"
	"fmt"
)

var (
	// ErrCycle is the panic value when a computed reads itself, directly or
	// through other computeds, while it is computing.
	ErrCycle = errors.New("reactive: circular dependency")

	// ErrComputePanicked wraps whatever a compute function panicked with
	// when it is read through TryRead.
	ErrComputePanicked = errors.New("reactive: compute function panicked")
)

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		if errors.Is(err, ErrComputePanicked) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrComputePanicked, err)
	}
	return fmt.Errorf("%w: %v", ErrComputePanicked, r)
}
