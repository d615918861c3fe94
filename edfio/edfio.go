// Package edfio produces a contiguous byte buffer from an io.Reader or
// a file path. It never streams partial buffers into the core scanner:
// validation and parsing begin only once the buffer is fully
// materialized.
package edfio

import (
	"io"
	"os"

	"github.com/ltick/edf"
	"github.com/ltick/edf/edfdiscover"
	"github.com/ltick/edf/envmap"
)

// ReadAll fully materializes r into a []byte buffer. A failure is
// wrapped as an *edf.ParseError with Kind edf.ErrIo, the ErrorKind
// reserved for collaborators; the core scanner never returns it.
func ReadAll(r io.Reader) ([]byte, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, ioError(err.Error())
	}
	return buf, nil
}

// ReadFile loads path fully into memory.
func ReadFile(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(path + ": " + err.Error())
	}
	return buf, nil
}

func ioError(detail string) error {
	return &edf.ParseError{Kind: edf.ErrIo, Detail: detail}
}

// ParseFile reads path and parses it under opts.
func ParseFile(path string, opts edf.ParseOptions) ([]edf.Entry, error) {
	buf, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return edf.ParseWithOptions(buf, opts), nil
}

// Load discovers name by ascending from the current directory,
// parses it under opts, and returns the resulting facade. It never
// mutates the process environment; callers that want that must call
// os.Setenv themselves.
func Load(name string, opts edf.ParseOptions) (*envmap.Map, error) {
	path, err := edfdiscover.FindFrom(name)
	if err != nil {
		return nil, err
	}
	entries, err := ParseFile(path, opts)
	if err != nil {
		return nil, err
	}
	return envmap.FromEntries(entries), nil
}
