package persistence_inmemory

import (
	"context"
	"sync"
)

// Op names a backend call for fault injection.
type Op string

const (
	OpGet    Op = "get"
	OpPut    Op = "put"
	OpDelete Op = "delete"
	OpList   Op = "list"
)

// Fault decides whether a call fails. A nil return lets the call proceed.
// A fault may block on ctx to simulate an unresponsive backend.
type Fault func(ctx context.Context, op Op, key string) error

type faults struct {
	mu    sync.Mutex
	fault Fault
}

// InjectFault installs f for all following calls. Passing nil removes it.
func (f *faults) InjectFault(fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fault = fault
}

func (f *faults) check(ctx context.Context, op Op, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	fault := f.fault
	f.mu.Unlock()
	if fault == nil {
		return nil
	}
	return fault(ctx, op, key)
}

// FailOn returns a fault failing every op call with err.
func FailOn(op Op, err error) Fault {
	return func(_ context.Context, got Op, _ string) error {
		if got == op {
			return err
		}
		return nil
	}
}

// Hang returns a fault that blocks every op call until its context ends.
func Hang(op Op) Fault {
	return func(ctx context.Context, got Op, _ string) error {
		if got != op {
			return nil
		}
		<-ctx.Done()
		return ctx.Err()
	}
}

// Gate returns a fault holding op calls on key until release is called. An
// empty key matches every key. entered is closed once the first call is held.
func Gate(op Op, key string) (fault Fault, entered <-chan struct{}, release func()) {
	in := make(chan struct{})
	open := make(chan struct{})
	var enterOnce, releaseOnce sync.Once
	fault = func(ctx context.Context, got Op, gotKey string) error {
		if got != op || (key != "" && gotKey != key) {
			return nil
		}
		enterOnce.Do(func() { close(in) })
		select {
		case <-open:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fault, in, func() { releaseOnce.Do(func() { close(open) }) }
}
