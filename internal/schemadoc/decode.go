package schemadoc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Decode parses JSON data into a Value tree, preserving object member
// order at every nesting level.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	// Reject trailing content after the top-level value.
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("trailing data after JSON value")
		}

		return nil, err
	}

	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}

	case string:
		return NewString(t), nil

	case json.Number:
		return Scalar{raw: t.String()}, nil

	case bool:
		if t {
			return Scalar{raw: "true"}, nil
		}

		return Scalar{raw: "false"}, nil

	case nil:
		return Null(), nil

	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := &Object{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		obj.members = append(obj.members, Member{Key: key, Value: val})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return obj, nil
}

func decodeArray(dec *json.Decoder) (*Array, error) {
	arr := &Array{}

	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		arr.Items = append(arr.Items, val)
	}

	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return arr, nil
}
