package config

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/mrdaemon/silt/pkg/yaml"
)

// Pair is a single key/value binding, created with [KV].
type Pair struct {
	Key   string
	Value any
}

// KV creates a [Pair].
func KV(key string, value any) Pair {
	return Pair{Key: key, Value: value}
}

// Mapping is a source that exposes its entries as ordered pairs. A
// [Store] is itself a Mapping.
type Mapping interface {
	Pairs() []Pair
}

// FromMapping populates the store from at most one positional mapping
// source, plus any number of explicit [Pair] bindings. Accepted source
// forms are string-keyed maps, [Pair] slices, [yaml.MapSlice] values,
// and [Mapping] implementations.
//
// The source is merged first and the bindings second, so a binding
// overrides the source for the same key. Keys that do not follow the
// UPPERCASE convention are silently ignored. Supplying more than one
// source fails with [ErrTooManySources], a source that cannot be
// iterated as pairs fails with [ErrInvalidSource], and neither failure
// mutates the store.
func (c *Store) FromMapping(args ...any) error {
	var (
		sources  []any
		bindings []Pair
	)

	for _, arg := range args {
		if p, ok := arg.(Pair); ok {
			bindings = append(bindings, p)
		} else {
			sources = append(sources, arg)
		}
	}

	if len(sources) > 1 {
		return fmt.Errorf("%w, got %d", ErrTooManySources, len(sources))
	}

	var pairs []Pair

	if len(sources) == 1 {
		var err error

		pairs, err = normalizeSource(sources[0])
		if err != nil {
			return err
		}
	}

	for _, p := range pairs {
		c.Set(p.Key, p.Value)
	}

	for _, p := range bindings {
		c.Set(p.Key, p.Value)
	}

	return nil
}

// normalizeSource flattens a positional mapping source into pairs.
// Ordered forms keep their source order; plain maps have no defined
// order in Go, so their keys are sorted for deterministic merges.
func normalizeSource(src any) ([]Pair, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidSource)
	}

	switch s := src.(type) {
	case []Pair:
		return s, nil

	case yaml.MapSlice:
		pairs := make([]Pair, 0, len(s))
		for _, item := range s {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string key %v", ErrInvalidSource, item.Key)
			}

			pairs = append(pairs, Pair{Key: key, Value: item.Value})
		}

		return pairs, nil

	case Mapping:
		return s.Pairs(), nil
	}

	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: %T", ErrInvalidSource, src)
	}

	pairs := make([]Pair, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, Pair{Key: iter.Key().String(), Value: iter.Value().Interface()})
	}

	slices.SortFunc(pairs, func(a, b Pair) int {
		return cmp.Compare(a.Key, b.Key)
	})

	return pairs, nil
}
