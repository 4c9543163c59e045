// Package numeric decodes loosely typed JSON numbers. Upstream producers (the
// language model, hand-written clients) send numbers either as JSON numbers or
// as numeric strings; anything else is rejected rather than coerced.
package numeric

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNotNumber  = errors.New("must be a number")
	ErrNotInteger = errors.New("must be an integer")
)

// Int decodes raw into an int. Absent, null and empty-string values yield nil.
func Int(raw json.RawMessage) (*int, error) {
	text, ok, err := literal(raw)
	if err != nil || !ok {
		return nil, err
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotInteger, text)
	}
	return &v, nil
}

// Float decodes raw into a finite float64. Absent, null and empty-string
// values yield nil.
func Float(raw json.RawMessage) (*float64, error) {
	text, ok, err := literal(raw)
	if err != nil || !ok {
		return nil, err
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: %q", ErrNotNumber, text)
	}
	return &v, nil
}

// literal returns the textual number carried by raw and whether one is present.
func literal(raw json.RawMessage) (string, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false, nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", false, fmt.Errorf("%w: %v", ErrNotNumber, err)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return "", false, nil
		}
		return s, true, nil
	}
	switch trimmed[0] {
	case '{', '[', 't', 'f':
		return "", false, fmt.Errorf("%w: got %s", ErrNotNumber, trimmed)
	}
	return string(trimmed), true, nil
}
