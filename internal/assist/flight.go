package assist

import (
	"context"
	"sync"
)

// flight is the context shared by every caller waiting on one in-flight
// generation. It is detached from the callers' own contexts and is cancelled
// only once the last waiter has gone.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

type flights struct {
	mu     sync.Mutex
	byKey  map[string]*flight
	forget func(key string)
}

func newFlights(forget func(key string)) *flights {
	return &flights{
		byKey:  make(map[string]*flight),
		forget: forget,
	}
}

// join registers a waiter for key, starting a new flight when none is live.
// Values of parent are kept; its cancellation is not.
func (fs *flights) join(parent context.Context, key string) *flight {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	f, exists := fs.byKey[key]
	if !exists {
		ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
		f = &flight{ctx: ctx, cancel: cancel}
		fs.byKey[key] = f
	}
	f.waiters++
	return f
}

// leave drops a waiter. The last one out cancels the flight and makes the
// next caller for key start afresh.
func (fs *flights) leave(key string, f *flight) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	if fs.byKey[key] == f {
		delete(fs.byKey, key)
		fs.forget(key)
	}
}

// done retires f once its generation has returned.
func (fs *flights) done(key string, f *flight) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.byKey[key] == f {
		delete(fs.byKey, key)
	}
}

func (fs *flights) waiting(key string) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if f, exists := fs.byKey[key]; exists {
		return f.waiters
	}
	return 0
}
