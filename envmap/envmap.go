// Package envmap is a map-like facade over an already-parsed entry
// sequence, offering Get/GetOr/ToMap lookups and aggregated parse
// errors. It consumes entries produced elsewhere and never touches a
// scanner or buffer itself.
package envmap

import (
	"github.com/hashicorp/go-multierror"

	"github.com/ltick/edf"
)

// Map is a last-write-wins view over a parsed entry sequence, along
// with every error recovered while producing it.
type Map struct {
	values map[string]string
	order  []string
	pairs  []edf.KeyValuePair
	err    *multierror.Error
}

// FromEntries builds a Map from entries, typically the result of
// edf.Parse, edf.ParseWithOptions, or draining an edf.Iterator.
// Duplicate keys resolve last-write-wins; comment-derived pairs
// (IsComment == true) are included like any other pair, since the
// caller chose to request them via ParseOptions.IncludeComments.
func FromEntries(entries []edf.Entry) *Map {
	m := &Map{values: make(map[string]string)}
	for _, e := range entries {
		switch e.Kind {
		case edf.EntryPair:
			if _, exists := m.values[e.Pair.Key]; !exists {
				m.order = append(m.order, e.Pair.Key)
			}
			m.values[e.Pair.Key] = e.Pair.Value
			m.pairs = append(m.pairs, e.Pair)
		case edf.EntryError:
			m.err = multierror.Append(m.err, e.Err)
		}
	}
	return m
}

// Get returns the value for key and whether it was present.
func (m *Map) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// GetOr returns the value for key, or fallback if key was not present.
func (m *Map) GetOr(key, fallback string) string {
	if v, ok := m.values[key]; ok {
		return v
	}
	return fallback
}

// ToMap returns a copy of the underlying key/value map.
func (m *Map) ToMap() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Pairs returns every recognized pair in source order, including
// duplicates (ToMap/Get reflect only the last write).
func (m *Map) Pairs() []edf.KeyValuePair {
	return m.pairs
}

// Keys returns keys in first-occurrence source order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// HasErrors reports whether any line failed to parse.
func (m *Map) HasErrors() bool {
	return m.err != nil && m.err.Len() > 0
}

// Errors returns the aggregated parse errors, or nil if there were
// none. The concrete type is *multierror.Error, queryable as a
// collection via its WrappedErrors method.
func (m *Map) Errors() error {
	if m.err == nil || m.err.Len() == 0 {
		return nil
	}
	return m.err
}
