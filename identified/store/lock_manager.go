package store

import (
	"sync"
)

// operationType defines whether an operation is read or write. Reads take a
// shared lock; writes take the exclusive lock, which is what serializes all
// mutations through a single writer at a time.
type operationType int

const (
	readOperation operationType = iota
	writeOperation
)

// lockManager centralizes the locking strategy for store operations. Every
// operation goes through execute, so there is exactly one place that decides
// lock type and no lock/unlock/relock patterns scattered through the store.
// Readers observe only fully-committed states between writes.
type lockManager struct {
	mu sync.RWMutex
}

// execute runs fn under the lock appropriate for the operation type. The
// lock is released via defer, so it is dropped even if fn panics.
func (lm *lockManager) execute(opType operationType, fn func() error) error {
	switch opType {
	case readOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case writeOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}
