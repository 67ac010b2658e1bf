package slotarena

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExhausted is returned when the key type cannot represent
	// another slot index.
	ErrCapacityExhausted = errors.New("slotarena: key index range exhausted")

	// ErrInvalidKey is returned when a key is out of range, refers to a
	// vacant slot, or carries a version that no longer matches the slot.
	ErrInvalidKey = errors.New("slotarena: invalid key")

	// ErrVersionExhausted is returned when a slot's version cannot advance.
	// The value stays in place and the slot is never recycled.
	ErrVersionExhausted = errors.New("slotarena: slot version exhausted")
)

// KeyError reports a failed keyed operation.
//
// The underlying sentinel can be matched via errors.Is.
type KeyError struct {
	Index int
	cause error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("slot %d: %v", e.Index, e.cause)
}

func (e *KeyError) Unwrap() error { return e.cause }

func keyError(index int, cause error) error {
	return &KeyError{Index: index, cause: cause}
}
