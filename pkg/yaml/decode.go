package yaml

import (
	"io"

	"github.com/goccy/go-yaml"
)

// MapSlice is an ordered sequence of key/value entries, produced when a
// YAML mapping is decoded into an untyped value.
type MapSlice = yaml.MapSlice

// MapItem is a single entry in a [MapSlice].
type MapItem = yaml.MapItem

type Decoder struct {
	d *yaml.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		d: yaml.NewDecoder(r, yaml.UseOrderedMap(), yaml.AllowDuplicateMapKey()),
	}
}

func (d *Decoder) Decode(v any) error {
	return d.d.Decode(v) //nolint:wrapcheck // Return the original error.
}

// Decode reads a single YAML document from r into an untyped value.
// Mappings decode to [MapSlice], preserving document order. Only
// standard tags are resolved; no arbitrary type construction.
func Decode(r io.Reader) (any, error) {
	var v any

	dec := NewDecoder(r)

	err := dec.Decode(&v)
	if err != nil {
		return nil, err //nolint:wrapcheck // Return the original error.
	}

	return v, nil
}
