package config

import "reflect"

// FromObject populates the store from the visible fields of a struct,
// including fields promoted from embedded structs. Only exported fields
// whose names follow the UPPERCASE convention are loaded:
//
//	type Settings struct {
//		DEBUG   bool
//		TIMEOUT int
//		ignored string
//	}
//
//	c.FromObject(Settings{DEBUG: true, TIMEOUT: 30})
//
// A pointer is dereferenced first. Nil and non-struct values expose no
// fields and contribute nothing.
func (c *Store) FromObject(obj any) {
	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return
	}

	for _, field := range reflect.VisibleFields(rv.Type()) {
		if !field.IsExported() || !IsConstantKey(field.Name) {
			continue
		}

		// Promotion through a nil embedded pointer leaves no value to
		// read.
		fv, err := rv.FieldByIndexErr(field.Index)
		if err != nil {
			continue
		}

		c.Set(field.Name, fv.Interface())
	}
}
