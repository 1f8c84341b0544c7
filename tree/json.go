package tree

import (
	"encoding/json"
	"fmt"
	"regexp"
)

var unquotedKeyRe = regexp.MustCompile(`([0-9A-Za-z_-]+)\s*:`)

// RelaxJSON quotes every bare identifier directly followed by a colon, so
// that {a: 1} becomes {"a": 1}. The rewrite is purely textual: a colon inside
// a quoted string value (for example a URL) is rewritten as well.
func RelaxJSON(text string) string {
	return unquotedKeyRe.ReplaceAllString(text, `"$1":`)
}

// GetJSON decodes the value under key as JSON into a generic value.
// With relaxed, object keys may be left unquoted (see RelaxJSON).
func (s *Section) GetJSON(key string, relaxed bool) (any, bool, error) {
	var value any

	ok, err := s.DecodeJSON(key, &value, relaxed)
	if err != nil || !ok {
		return nil, ok, err
	}

	return value, true, nil
}

// DecodeJSON decodes the value under key as JSON into target.
func (s *Section) DecodeJSON(key string, target any, relaxed bool) (bool, error) {
	raw, ok := s.entries[key]
	if !ok {
		return false, nil
	}

	if relaxed {
		raw = RelaxJSON(raw)
	}

	err := json.Unmarshal([]byte(raw), target)
	if err != nil {
		return true, fmt.Errorf("key %q as json: %w: %w", key, ErrConversion, err)
	}

	return true, nil
}
