package internal

import (
	"context"
	"fmt"
)

const (
	maxCodeLength     = 8
	attemptsPerLength = 16
)

// Allocator finds a code the store reports free. The pre-check is a
// latency optimization only; the unique index on links.code is the
// real guarantee, so the create path must still handle a conflict
// from the insert itself.
type Allocator struct {
	store LinkStore
	gen   CodeGenerator
}

func NewAllocator(store LinkStore) *Allocator {
	return &Allocator{store: store}
}

// Allocate tries attemptsPerLength candidates at each length, starting
// at DefaultCodeLength and widening up to maxCodeLength before giving
// up with ErrCodeSpaceExhausted.
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	for length := DefaultCodeLength; length <= maxCodeLength; length++ {
		for i := 0; i < attemptsPerLength; i++ {
			code := a.gen.Generate(length)
			exists, err := a.store.CodeExists(ctx, code)
			if err != nil {
				return "", fmt.Errorf("check candidate: %w", err)
			}
			if !exists {
				return code, nil
			}
		}
	}
	return "", ErrCodeSpaceExhausted
}
