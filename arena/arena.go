/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package arena implements a generational arena (slotmap): a container that
// stores values behind stable 32-bit keys and detects stale or foreign keys.
//
// A key encodes a 16-bit slot index and a 16-bit version. The version of a
// slot is odd while the slot is occupied and even while it is free; every
// insertion into a free slot and every removal increments the version, so a
// key minted before a removal never validates again. Free slots are chained
// into a singly linked free list and reused in LIFO order.
package arena

import (
	"errors"
	"iter"
)

// ErrIndexSpaceExhausted is returned by Push when the arena already holds
// the maximum number of slots addressable by a 16-bit index.
var ErrIndexSpaceExhausted = errors.New("arena: 16-bit index space exhausted")

const maxSlots = 1 << 16

// Key is a stable handle to one occupied slot: the slot index in the high
// 16 bits, the slot version in the low 16 bits.
type Key uint32

func makeKey(index int, version uint16) Key {
	return Key(uint32(index)<<16 | uint32(version))
}

// Index returns the slot index encoded in the key.
func (k Key) Index() int {
	return int(uint32(k) >> 16)
}

// Version returns the slot version encoded in the key.
func (k Key) Version() uint16 {
	return uint16(k)
}

// A slot is either occupied (odd version, value is live) or free (even
// version, next chains the free list). Keeping both fields and deciding by
// version parity trades a little memory for making the live interpretation
// explicit.
type slot[T any] struct {
	version uint16
	value   T
	next    int32 // index of the next free slot, -1 terminates
}

func (s *slot[T]) occupied() bool {
	return s.version&1 == 1
}

// Arena stores values of type T behind generational keys.
type Arena[T any] struct {
	slots []slot[T]
	free  int32 // head of the free list, -1 when empty
	count int
}

// New returns an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{free: -1}
}

// Push stores value and returns its key. The head of the free list is
// reused first; a new slot is appended only when no free slot exists.
// Fails with ErrIndexSpaceExhausted once 65536 slots exist and none is
// free.
func (a *Arena[T]) Push(value T) (Key, error) {
	if a.free >= 0 {
		index := int(a.free)
		s := &a.slots[index]
		a.free = s.next
		s.version++
		s.value = value
		s.next = -1
		a.count++
		return makeKey(index, s.version), nil
	}
	if len(a.slots) >= maxSlots {
		return 0, ErrIndexSpaceExhausted
	}
	index := len(a.slots)
	a.slots = append(a.slots, slot[T]{version: 1, value: value, next: -1})
	a.count++
	return makeKey(index, 1), nil
}

// lookup returns the slot addressed by key only if the key validates:
// index in range, version matching, slot occupied.
func (a *Arena[T]) lookup(key Key) *slot[T] {
	index := key.Index()
	if index >= len(a.slots) {
		return nil
	}
	s := &a.slots[index]
	if !s.occupied() || s.version != key.Version() {
		return nil
	}
	return s
}

// Contains reports whether key addresses a live value.
func (a *Arena[T]) Contains(key Key) bool {
	return a.lookup(key) != nil
}

// Get returns a pointer to the value addressed by key, or false if the key
// is stale, foreign or out of range. The pointer stays valid until the next
// Push or TryPop.
func (a *Arena[T]) Get(key Key) (*T, bool) {
	s := a.lookup(key)
	if s == nil {
		return nil, false
	}
	return &s.value, true
}

// TryPop removes and returns the value addressed by key. An invalid key
// leaves the arena untouched. The freed slot becomes the new head of the
// free list.
func (a *Arena[T]) TryPop(key Key) (T, bool) {
	s := a.lookup(key)
	if s == nil {
		var zero T
		return zero, false
	}
	value := s.value
	var zero T
	s.value = zero
	s.version++
	s.next = a.free
	a.free = int32(key.Index())
	a.count--
	return value, true
}

// Len returns the number of occupied slots.
func (a *Arena[T]) Len() int {
	return a.count
}

// All yields every occupied slot in index order together with its key.
func (a *Arena[T]) All() iter.Seq2[Key, *T] {
	return func(yield func(Key, *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.occupied() {
				continue
			}
			if !yield(makeKey(i, s.version), &s.value) {
				return
			}
		}
	}
}

// Values yields every occupied value in index order.
func (a *Arena[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.occupied() {
				continue
			}
			if !yield(&s.value) {
				return
			}
		}
	}
}
