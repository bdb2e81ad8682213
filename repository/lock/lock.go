// Package lock serializes the read-match-write section of a submission.
// Without it two concurrent submissions can both miss each other's record
// and double-write. The local locker covers the single-process deployment;
// the Redis locker covers multiple instances sharing one store.
package lock

import (
	"context"
	"sync"
)

// Locker grants exclusive access for one submission at a time. Acquire
// blocks until the lock is held or ctx is done; the returned release
// function must always be called.
type Locker interface {
	Acquire(ctx context.Context) (release func(), err error)
}

type localLocker struct {
	mu sync.Mutex
}

// NewLocalLocker returns an in-process mutex locker.
func NewLocalLocker() Locker {
	return &localLocker{}
}

func (l *localLocker) Acquire(_ context.Context) (func(), error) {
	l.mu.Lock()
	return l.mu.Unlock, nil
}
