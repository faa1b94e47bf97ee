package utils

import (
	"sync"
	"sync/atomic"
)

// Memo is a compute-once slot. The zero value is empty; the first Get runs
// compute and every later Get returns the stored value and error.
// A Memo must not be copied after first use.
type Memo[T any] struct {
	once  sync.Once
	ready atomic.Bool
	val   T
	err   error
}

func (m *Memo[T]) Get(compute func() (T, error)) (T, error) {
	m.once.Do(func() {
		m.val, m.err = compute()
		m.ready.Store(true)
	})
	return m.val, m.err
}

// Ready reports whether the slot has been filled.
func (m *Memo[T]) Ready() bool { return m.ready.Load() }
