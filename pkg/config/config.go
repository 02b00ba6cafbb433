package config

import (
	"slices"
	"strings"
	"unicode"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Store holds configuration values under UPPERCASE keys. It behaves like
// an ordered string-keyed map, with load methods that populate it from
// objects, mappings, and files of various provenances. Entries iterate
// in insertion order; re-loading an existing key keeps its position.
//
// A Store is not safe for concurrent use. Callers embedding one in a
// multi-goroutine host must supply their own synchronization around load
// calls and subsequent reads.
type Store struct {
	om *orderedmap.OrderedMap[string, any]
}

// StoreOpt configures a [Store].
type StoreOpt func(*Store)

// WithDefaults seeds the store with default values. Keys that do not
// follow the UPPERCASE convention are ignored, like every other source.
func WithDefaults(defaults map[string]any) StoreOpt {
	return func(c *Store) {
		keys := make([]string, 0, len(defaults))
		for key := range defaults {
			keys = append(keys, key)
		}

		slices.Sort(keys)

		for _, key := range keys {
			c.Set(key, defaults[key])
		}
	}
}

// New creates a [Store].
func New(opts ...StoreOpt) *Store {
	c := &Store{
		om: orderedmap.New[string, any](),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// IsConstantKey reports whether key follows the UPPERCASE constant
// convention: it contains at least one cased character, and no cased
// character is lowercase or titlecase.
func IsConstantKey(key string) bool {
	cased := false

	for _, r := range key {
		if unicode.IsLower(r) || unicode.IsTitle(r) || unicode.Is(unicode.Other_Lowercase, r) {
			return false
		}

		if unicode.IsUpper(r) || unicode.Is(unicode.Other_Uppercase, r) {
			cased = true
		}
	}

	return cased
}

// Get returns the value stored under key.
func (c *Store) Get(key string) (any, bool) {
	return c.om.Get(key)
}

// Has reports whether key is present.
func (c *Store) Has(key string) bool {
	_, ok := c.om.Get(key)

	return ok
}

// Len returns the number of entries.
func (c *Store) Len() int {
	return c.om.Len()
}

// Set stores value under key if key follows the UPPERCASE convention,
// and reports whether the value was stored.
func (c *Store) Set(key string, value any) bool {
	if !IsConstantKey(key) {
		return false
	}

	c.om.Set(key, value)

	return true
}

// Delete removes key and reports whether it was present.
func (c *Store) Delete(key string) bool {
	_, ok := c.om.Delete(key)

	return ok
}

// Keys returns all keys in insertion order.
func (c *Store) Keys() []string {
	keys := make([]string, 0, c.om.Len())
	for p := c.om.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}

	return keys
}

// Pairs returns all entries in insertion order. It also makes the store
// itself usable as a [Mapping] source for [Store.FromMapping].
func (c *Store) Pairs() []Pair {
	pairs := make([]Pair, 0, c.om.Len())
	for p := c.om.Oldest(); p != nil; p = p.Next() {
		pairs = append(pairs, Pair{Key: p.Key, Value: p.Value})
	}

	return pairs
}

// AsMap returns a shallow copy of the entries as a plain map.
func (c *Store) AsMap() map[string]any {
	m := make(map[string]any, c.om.Len())
	for p := c.om.Oldest(); p != nil; p = p.Next() {
		m[p.Key] = p.Value
	}

	return m
}

// Namespace returns a shallow copy of the entries whose keys extend
// prefix, with the prefix trimmed:
//
//	c.FromMapping(map[string]any{"IMAGE_STORE": "/var/app", "IMAGE_SIZE": 100})
//	c.Namespace("IMAGE_") // map[SIZE:100 STORE:/var/app]
//
// A key exactly equal to prefix is excluded.
func (c *Store) Namespace(prefix string) map[string]any {
	m := make(map[string]any)

	for p := c.om.Oldest(); p != nil; p = p.Next() {
		if p.Key != prefix && strings.HasPrefix(p.Key, prefix) {
			m[strings.TrimPrefix(p.Key, prefix)] = p.Value
		}
	}

	return m
}
