// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ffi

import "sync"

// Handle identifies a buffer whose ownership was transferred to a foreign
// caller.  The zero value is the null handle.
type Handle uintptr

// Registry tracks the handles of buffers owned by foreign callers.  A handle
// is released at most once, so buffers are freed exactly once even when a
// caller releases the same pointer twice or passes one it never received.
// It is safe for concurrent use.
type Registry struct {
	mtx  sync.Mutex
	live map[Handle]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{live: make(map[Handle]struct{})}
}

// Track records the ownership of the buffer identified by h.  The null handle
// is ignored.
func (r *Registry) Track(h Handle) {
	if h == 0 {
		return
	}
	r.mtx.Lock()
	r.live[h] = struct{}{}
	r.mtx.Unlock()
}

// Release forgets the buffer identified by h.  It returns true only when h
// was tracked and not yet released, in which case the caller must free the
// buffer.
func (r *Registry) Release(h Handle) bool {
	if h == 0 {
		return false
	}
	r.mtx.Lock()
	_, ok := r.live[h]
	delete(r.live, h)
	r.mtx.Unlock()
	if !ok {
		log.Warnf("Ignoring release of unknown buffer %#x", uintptr(h))
	}
	return ok
}

// Len returns the number of tracked buffers.
func (r *Registry) Len() int {
	r.mtx.Lock()
	n := len(r.live)
	r.mtx.Unlock()
	return n
}
