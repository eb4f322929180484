package schemadoc

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

const indentUnit = "  "

// Encode serializes a Value tree deterministically: object members in
// their stored order, two-space indentation, and a trailing newline.
// Encoding the same tree always yields identical bytes.
func Encode(v Value) []byte {
	var buf bytes.Buffer
	encodeValue(&buf, v, 0)
	buf.WriteByte('\n')

	return buf.Bytes()
}

func encodeValue(buf *bytes.Buffer, v Value, depth int) {
	switch val := v.(type) {
	case *Object:
		encodeObject(buf, val, depth)
	case *Array:
		encodeArray(buf, val, depth)
	case Scalar:
		buf.WriteString(val.raw)
	}
}

func encodeObject(buf *bytes.Buffer, obj *Object, depth int) {
	if obj == nil || len(obj.members) == 0 {
		buf.WriteString("{}")
		return
	}

	buf.WriteString("{\n")

	inner := indent(depth + 1)
	for i, m := range obj.members {
		buf.WriteString(inner)

		key, _ := json.Marshal(m.Key)
		buf.Write(key)
		buf.WriteString(": ")
		encodeValue(buf, m.Value, depth+1)

		if i < len(obj.members)-1 {
			buf.WriteByte(',')
		}

		buf.WriteByte('\n')
	}

	buf.WriteString(indent(depth))
	buf.WriteByte('}')
}

func encodeArray(buf *bytes.Buffer, arr *Array, depth int) {
	if arr == nil || len(arr.Items) == 0 {
		buf.WriteString("[]")
		return
	}

	buf.WriteString("[\n")

	inner := indent(depth + 1)
	for i, item := range arr.Items {
		buf.WriteString(inner)
		encodeValue(buf, item, depth+1)

		if i < len(arr.Items)-1 {
			buf.WriteByte(',')
		}

		buf.WriteByte('\n')
	}

	buf.WriteString(indent(depth))
	buf.WriteByte(']')
}

func indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}
