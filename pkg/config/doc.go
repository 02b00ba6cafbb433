// Package config provides an uppercase-keyed configuration store.
//
// A [Store] behaves like an ordered string-keyed map, and populates its
// values from objects, in-memory mappings, and files of various
// provenances. Every source passes through the same filter: only keys
// written in the UPPERCASE constant convention are loaded.
package config
