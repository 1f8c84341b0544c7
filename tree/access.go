package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// HasKey reports whether key is stored as an entry.
func (s *Section) HasKey(key string) bool {
	_, ok := s.entries[key]

	return ok
}

// Contains reports whether name is a child section or an entry.
func (s *Section) Contains(name string) bool {
	return s.HasSection(name) || s.HasKey(name)
}

// Lookup resolves name against child sections first, then entries.
// When ok, exactly one of node (non-nil) and value is meaningful.
func (s *Section) Lookup(name string) (node Node, value string, ok bool) {
	if node, ok := s.nodes[name]; ok {
		return node, "", true
	}

	value, ok = s.entries[name]

	return nil, value, ok
}

// Keys returns the entry keys in sorted order.
func (s *Section) Keys() []string {
	return sortedKeys(s.entries)
}

// Entries returns a copy of the section's entries.
func (s *Section) Entries() map[string]string {
	entries := make(map[string]string, len(s.entries))
	for key, value := range s.entries {
		entries[key] = value
	}

	return entries
}

// Set stores value under key, replacing any previous value.
func (s *Section) Set(key, value string) {
	s.entries[key] = value
}

// Append extends the value under key with a newline and value. It reports
// false, changing nothing, when key is not stored.
func (s *Section) Append(key, value string) bool {
	existing, ok := s.entries[key]
	if !ok {
		return false
	}

	s.entries[key] = existing + "\n" + value

	return true
}

// GetString returns the value stored under key.
func (s *Section) GetString(key string) (string, bool) {
	value, ok := s.entries[key]

	return value, ok
}

// GetInt reads the value under key as a base-10 integer. ok is false when
// the key is absent; err is set when the value is not an integer.
func (s *Section) GetInt(key string) (value int64, ok bool, err error) {
	return getValue(s, key, "int", func(raw string) (int64, error) {
		return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	})
}

// GetFloat reads the value under key as a float64.
func (s *Section) GetFloat(key string) (value float64, ok bool, err error) {
	return getValue(s, key, "float", func(raw string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(raw), 64)
	})
}

// GetBool reads the value under key with strconv.ParseBool.
func (s *Section) GetBool(key string) (value, ok bool, err error) {
	return getValue(s, key, "bool", func(raw string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(raw))
	})
}

func getValue[T any](s *Section, key, typeName string, convert func(string) (T, error)) (T, bool, error) {
	var zero T

	raw, ok := s.entries[key]
	if !ok {
		return zero, false, nil
	}

	value, err := convert(raw)
	if err != nil {
		return zero, true, fmt.Errorf("key %q as %s: %w: %w", key, typeName, ErrConversion, err)
	}

	return value, true, nil
}
