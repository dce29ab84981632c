// Package closewaiter guards the submit side of a runner against a concurrent shutdown.
// Calls to Do fail with ErrClosed once Close has started, and Close waits for every Do already in
// progress before running its shutdown function, so a queue is never closed under a pending send.
package closewaiter

import (
	"errors"
	"sync"
)

var (
	ErrClosed = errors.New("closed")
)

type CloseWaiter struct {
	mu     sync.RWMutex
	closed bool
	active sync.WaitGroup
	done   chan struct{}
}

func New() *CloseWaiter {
	return &CloseWaiter{
		done: make(chan struct{}),
	}
}

// Do runs f unless Close has been called, in which case it returns ErrClosed without running f.
func (c *CloseWaiter) Do(f func()) error {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return ErrClosed
	}
	c.active.Add(1)
	c.mu.RUnlock()

	defer c.active.Done()
	f()
	return nil
}

// Close runs shutdown once every call to Do in progress has returned.  Only the first call runs shutdown
// and returns nil; later calls wait for it to finish and return ErrClosed.
func (c *CloseWaiter) Close(shutdown func()) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		<-c.done
		return ErrClosed
	}
	c.closed = true
	c.mu.Unlock()

	// no Do can register after closed is set, so the wait cannot race an Add
	c.active.Wait()
	shutdown()
	close(c.done)

	return nil
}
