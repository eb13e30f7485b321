/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package arena

// SecondaryMap associates additional values with keys minted by an Arena.
// Entries are validated the same way the arena validates its own slots, so
// a key that went stale in the arena also stops resolving here once the
// slot is reused under a new version.
type SecondaryMap[T any] struct {
	slots []slot[T]
	count int
}

// Set stores value under key, replacing any entry stored under an earlier
// version of the same slot.
func (m *SecondaryMap[T]) Set(key Key, value T) {
	index := key.Index()
	for len(m.slots) <= index {
		m.slots = append(m.slots, slot[T]{next: -1})
	}
	s := &m.slots[index]
	if !s.occupied() {
		m.count++
	}
	s.version = key.Version()
	s.value = value
}

// Get returns a pointer to the value stored under key, or false if no
// entry with a matching version exists.
func (m *SecondaryMap[T]) Get(key Key) (*T, bool) {
	index := key.Index()
	if index >= len(m.slots) {
		return nil, false
	}
	s := &m.slots[index]
	if !s.occupied() || s.version != key.Version() {
		return nil, false
	}
	return &s.value, true
}

// Remove deletes and returns the value stored under key.
func (m *SecondaryMap[T]) Remove(key Key) (T, bool) {
	index := key.Index()
	if index >= len(m.slots) {
		var zero T
		return zero, false
	}
	s := &m.slots[index]
	if !s.occupied() || s.version != key.Version() {
		var zero T
		return zero, false
	}
	value := s.value
	var zero T
	s.value = zero
	s.version++
	m.count--
	return value, true
}

// Len returns the number of live entries.
func (m *SecondaryMap[T]) Len() int {
	return m.count
}
