package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// JSONType is the runtime shape of a decoded JSON value.
type JSONType int

const (
	TypeString JSONType = iota + 1
	TypeNumber
	// TypeInteger matches numbers without a fractional part or exponent.
	TypeInteger
	TypeBoolean
	TypeObject
	TypeArray
)

func (t JSONType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeInteger:
		return "integer"
	case TypeBoolean:
		return "boolean"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	default:
		return "unknown"
	}
}

// Matches reports whether a value produced by decodeJSON has type t.
// A JSON null matches no type.
func (t JSONType) Matches(v any) bool {
	switch val := v.(type) {
	case string:
		return t == TypeString
	case json.Number:
		if t == TypeNumber {
			return true
		}
		if t == TypeInteger {
			_, err := val.Int64()
			return err == nil
		}
		return false
	case bool:
		return t == TypeBoolean
	case map[string]any:
		return t == TypeObject
	case []any:
		return t == TypeArray
	default:
		return false
	}
}

var errTrailingData = errors.New("unexpected data after top-level value")

// decodeJSON decodes exactly one JSON value from s into dst, keeping numbers
// as json.Number so they re-encode unchanged.
func decodeJSON(s string, dst any) error {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

// encodeJSON renders a decoded value back to text for a sub-validator.
// Strings are passed through raw, without quotes.
func encodeJSON(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
