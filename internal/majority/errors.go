package majority

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by Validate and FindMajority.
var (
	ErrNilInput   = errors.New("input array cannot be null")
	ErrEmptyInput = errors.New("input array is empty")
)

// NullElementError reports an absent element inside an otherwise valid
// sequence. Slices of int cannot hold nulls, so this surfaces on the parsing
// path when a user-entered sequence contains a blank token.
type NullElementError struct {
	Index int
}

func (e *NullElementError) Error() string {
	return fmt.Sprintf("array contains null element at index %d", e.Index)
}

// FaultError wraps an unexpected internal failure. The engine converts
// panics into this type rather than propagating them to the caller.
type FaultError struct {
	Msg string
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("unexpected error: %s", e.Msg)
}
