package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"

	"github.com/mrdaemon/silt/pkg/yaml"
)

// Deserializer converts raw file content into a mapping, in any form
// [Store.FromMapping] accepts as a positional source.
type Deserializer func(r io.Reader) (any, error)

// FromFile populates the store from the file at path, decoded by d:
//
//	ok, err := c.FromFile("settings.yaml", yaml.Decode, false)
//
// When silent is true, a file that does not exist or is a directory is
// skipped: FromFile returns (false, nil) and the store is unchanged.
// Any other file access error is returned annotated with [ErrLoadFile],
// wrapping the original error so callers can still match it with
// [errors.Is] or recover the OS error detail with [errors.As].
// Deserializer errors are returned as-is; silent does not cover them.
// Returns (true, nil) once the decoded mapping has been merged.
func (c *Store) FromFile(path string, d Deserializer, silent bool) (bool, error) {
	data, err := readFile(path)
	if err != nil {
		// Silence exclusively not-found and is-a-directory errors,
		// anything more serious is always raised.
		if silent && (errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.EISDIR)) {
			return false, nil
		}

		return false, fmt.Errorf("%w: %w", ErrLoadFile, err)
	}

	obj, err := d(bytes.NewReader(data))
	if err != nil {
		return false, err
	}

	err = c.FromMapping(obj)
	if err != nil {
		return false, err
	}

	return true, nil
}

// FromYAML populates the store from the YAML file at path. It is
// shorthand for [Store.FromFile] with [yaml.Decode] as the
// deserializer, and shares its return and error semantics.
func (c *Store) FromYAML(path string, silent bool) (bool, error) {
	return c.FromFile(path, yaml.Decode, silent)
}

// readFile reads path, distinguishing directories and irregular files
// before the read.
func readFile(path string) ([]byte, error) {
	pathInfo, err := os.Stat(path)
	if pathInfo != nil {
		if err == nil && pathInfo.IsDir() {
			return nil, &fs.PathError{Op: "read", Path: path, Err: syscall.EISDIR}
		}
		if err == nil && !pathInfo.Mode().IsRegular() {
			return nil, fmt.Errorf("%s: unknown file state", path)
		}
	}
	if err != nil {
		return nil, err //nolint:wrapcheck // Return the original error.
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: Potential file inclusion via variable.
	if err != nil {
		return nil, err //nolint:wrapcheck // Return the original error.
	}

	return data, nil
}
