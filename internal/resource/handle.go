// Package resource holds graphics objects whose lifetime is tied to the device/window.
package resource

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by Get after Close.
var ErrClosed = errors.New("resource closed")

// Handle owns one device-dependent value. It is created on first Get, so creation
// happens after the window/GL context exists, and recreated on the next Get after
// Invalidate (device lost, window restored). Not safe for concurrent use: it lives
// on the render thread.
type Handle[T any] struct {
	name    string
	create  func() (T, error)
	release func(T)
	val     T
	valid   bool
	closed  bool
	// Created counts successful creations; useful for logging recreate churn.
	Created int
}

// NewHandle returns a handle that builds its value with create and frees it with
// release (release may be nil).
func NewHandle[T any](name string, create func() (T, error), release func(T)) *Handle[T] {
	return &Handle[T]{name: name, create: create, release: release}
}

// Name is the label given at construction.
func (h *Handle[T]) Name() string { return h.name }

// Valid reports whether the value is currently created.
func (h *Handle[T]) Valid() bool { return h.valid }

// Get returns the value, creating it if needed.
func (h *Handle[T]) Get() (T, error) {
	if h.closed {
		var zero T
		return zero, fmt.Errorf("%s: %w", h.name, ErrClosed)
	}
	if h.valid {
		return h.val, nil
	}
	v, err := h.create()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: create: %w", h.name, err)
	}
	h.val = v
	h.valid = true
	h.Created++
	return v, nil
}

// Invalidate releases the current value; the next Get recreates it.
func (h *Handle[T]) Invalidate() {
	if !h.valid {
		return
	}
	if h.release != nil {
		h.release(h.val)
	}
	var zero T
	h.val = zero
	h.valid = false
}

// Close releases the value and makes further Gets fail.
func (h *Handle[T]) Close() {
	h.Invalidate()
	h.closed = true
}

// Invalidator is implemented by every Handle regardless of its value type.
type Invalidator interface {
	Name() string
	Invalidate()
	Close()
}

// Set groups handles so the window layer can drop or close all of them at once.
type Set struct {
	handles []Invalidator
}

// Add registers h with the set.
func (s *Set) Add(h Invalidator) {
	s.handles = append(s.handles, h)
}

// InvalidateAll releases every registered handle (device lost).
func (s *Set) InvalidateAll() {
	for _, h := range s.handles {
		h.Invalidate()
	}
}

// CloseAll closes every registered handle in reverse registration order.
func (s *Set) CloseAll() {
	for i := len(s.handles) - 1; i >= 0; i-- {
		s.handles[i].Close()
	}
}
