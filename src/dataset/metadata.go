package dataset

import "strings"

// Metadata is an insertion-ordered map of header keys to values. A key may
// hold several parts (continuation lines in the file header); Get joins them
// with newlines.
type Metadata struct {
	keys   []string
	values map[string][]string
}

// NewMetadata returns an empty Metadata.
func NewMetadata() *Metadata {
	return &Metadata{values: map[string][]string{}}
}

// Set replaces the value of key, keeping its original position if present.
func (m *Metadata) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = []string{value}
}

// Append adds a further part to key, creating it if needed.
func (m *Metadata) Append(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = append(m.values[key], value)
}

// Get returns the value of key with multiple parts joined by newlines.
func (m *Metadata) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	parts, ok := m.values[key]
	if !ok {
		return "", false
	}
	return strings.Join(parts, "\n"), true
}

// Parts returns the individual parts of key.
func (m *Metadata) Parts(key string) []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.values[key]...)
}

// Keys returns the keys in insertion order.
func (m *Metadata) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Len returns the number of keys.
func (m *Metadata) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}
