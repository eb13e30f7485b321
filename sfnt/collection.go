/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"fmt"
	"iter"

	"github.com/glstudios/glfont/arena"
)

// Collection owns fully parsed fonts behind stable generational keys. A key
// stays valid until its font is removed; a removed key never validates
// again. A Collection is not safe for concurrent use without external
// synchronization.
type Collection struct {
	fonts *arena.Arena[*Font]
}

// NewCollection returns an empty font collection.
func NewCollection() *Collection {
	return &Collection{fonts: arena.New[*Font]()}
}

// AddLoaded stores a parsed font and returns its key. Fails with an
// AllocationError when the key index space is exhausted.
func (c *Collection) AddLoaded(f *Font) (arena.Key, error) {
	key, err := c.fonts.Push(f)
	if err != nil {
		return 0, &AllocationError{
			Location:  "Collection",
			Expected:  c.fonts.Len() + 1,
			Allocated: c.fonts.Len(),
		}
	}
	return key, nil
}

// Get returns the font stored under `key`. The collection is the sole
// minter of valid keys, so a stale or foreign key is a caller bug: Get
// panics rather than returning an error.
func (c *Collection) Get(key arena.Key) *Font {
	f, ok := c.fonts.Get(key)
	if !ok {
		panic(fmt.Sprintf("sfnt: no font stored under key 0x%08X", uint32(key)))
	}
	return *f
}

// Remove takes the font stored under `key` out of the collection. An
// invalid key leaves the collection untouched.
func (c *Collection) Remove(key arena.Key) (*Font, bool) {
	return c.fonts.TryPop(key)
}

// Len returns the number of stored fonts.
func (c *Collection) Len() int {
	return c.fonts.Len()
}

// All yields every stored font with its key, in slot order.
func (c *Collection) All() iter.Seq2[arena.Key, *Font] {
	return func(yield func(arena.Key, *Font) bool) {
		for key, f := range c.fonts.All() {
			if !yield(key, *f) {
				return
			}
		}
	}
}
