package bftape

import (
	"errors"
	"fmt"
)

var ErrOutOfBounds = errors.New("out of memory")

type BoundsError struct {
	Address int
	Size    int
}

func (b *BoundsError) Error() string {
	return fmt.Sprintf("%s: %d", ErrOutOfBounds, b.Address)
}

func (b *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
