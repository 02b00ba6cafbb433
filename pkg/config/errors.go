package config

import "errors"

var (
	// ErrTooManySources is returned by [Store.FromMapping] when more than
	// one positional mapping source is supplied.
	ErrTooManySources = errors.New("config mapping expected at most one source")

	// ErrInvalidSource is returned when a mapping source cannot be
	// iterated as key/value pairs.
	ErrInvalidSource = errors.New("invalid mapping source")

	// ErrLoadFile annotates file access errors returned by
	// [Store.FromFile] and [Store.FromYAML].
	ErrLoadFile = errors.New("unable to load configuration file")
)
