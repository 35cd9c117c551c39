package cmd

import (
	"fmt"
	"sync"
	"time"
)

// docMu guards Doc, CurrentElement and elementList.
// Only one MCP request (or CLI action) may hold it at a time.
var docMu sync.Mutex

// withDoc serialises access to the shared document state.
// It waits up to 30 s for the lock; afterwards it returns an error so the
// caller can report "document busy".
func withDoc[R any](fn func() (R, error)) (R, error) {
	const timeout = 30 * time.Second
	var zero R

	locked := make(chan struct{})
	go func() {
		docMu.Lock()
		close(locked)
	}()

	select {
	case <-locked:
		defer docMu.Unlock()
		return fn()
	case <-time.After(timeout):
		return zero, fmt.Errorf("document busy: could not acquire lock within %s", timeout)
	}
}
