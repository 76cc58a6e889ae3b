// Package shared holds error kinds common to every store in the cache layer.
package shared

import (
	"errors"
	"fmt"
)

// ErrStorage marks a failure of the underlying storage engine (disk,
// corruption, permission). It is the only condition that unwinds out of the
// cache layer; not-found and already-absent outcomes are plain return values.
var ErrStorage = errors.New("storage failure")

// WrapStorage tags err as a storage failure with the failing operation, so
// callers can test errors.Is(err, ErrStorage) while keeping the driver error
// in the chain.
func WrapStorage(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
