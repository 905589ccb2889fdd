package config

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// LoadJSON parses data as a JSON object and replaces the store's entries
// with the decoded pairs. Three value kinds are kept: strings are copied
// verbatim, integers become their decimal string form, and booleans
// become the literal strings "true"/"false". Floats, null, arrays and
// nested objects are silently skipped.
//
// The replace is all-or-nothing: on a malformed document (or a top level
// that is not an object) an error is returned and the store keeps its
// prior entries untouched.
func (s *Store) LoadJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing config document: %w", err)
	}
	if doc == nil {
		// json.Unmarshal accepts a bare null without filling the map.
		return fmt.Errorf("parsing config document: top level is not an object")
	}

	entries := make(map[string]string, len(doc))
	for key, raw := range doc {
		value, ok := decodeScalar(raw)
		if !ok {
			continue
		}
		entries[key] = value
	}

	s.replace(entries)
	return nil
}

// ToJSON serializes the store as a pretty-printed JSON object with
// two-space indentation and sorted keys, so output is byte-deterministic
// for a fixed mapping. Each value is re-classified independently: if the
// whole value parses as an optionally signed base-10 integer it is
// emitted as a number, otherwise as a quoted string.
//
// Note this re-inference cannot tell Set(k, "123") apart from
// SetInt(k, 123); both export as the number 123. That matches the
// historical behavior and the import side round-trips it unchanged.
func (s *Store) ToJSON() ([]byte, error) {
	doc := make(map[string]any, len(s.entries))
	for key, value := range s.entries {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			doc[key] = n
		} else {
			doc[key] = value
		}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding config document: %w", err)
	}
	return out, nil
}

// decodeScalar converts one JSON value into its stored string form.
// The second return is false for the kinds the store does not keep.
func decodeScalar(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	switch raw[0] {
	case '"':
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return "", false
		}
		return v, true
	case 't':
		return "true", true
	case 'f':
		return "false", true
	default:
		// A number literal is an integer only when it has no fraction or
		// exponent; ParseInt rejects anything else, which drops floats.
		n, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return "", false
		}
		return strconv.FormatInt(n, 10), true
	}
}
