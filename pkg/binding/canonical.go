package binding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// absentValue is the type of the Absent sentinel.
type absentValue struct{}

// Absent marks a map entry for omission from the canonical payload. It is
// distinct from nil: a nil value serializes as null, an Absent value is
// dropped entirely, so callers can express "field not set" without changing
// the digest of the remaining fields.
var Absent = absentValue{}

// CanonicalPayload builds the deterministic byte payload that digests are
// computed over.
//
// When meta is a string-keyed map its entries are merged alongside the code
// at the top level; any other metadata value nests under a single "meta"
// key. A metadata entry named "code" cannot shadow the code itself. The
// payload is compact JSON with recursively sorted keys, so equal logical
// content yields byte-identical output across processes and platforms.
func CanonicalPayload(code string, meta any) ([]byte, error) {
	fields := map[string]any{}

	if meta != nil {
		rv := reflect.ValueOf(meta)
		if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
			iter := rv.MapRange()
			for iter.Next() {
				fields[iter.Key().String()] = iter.Value().Interface()
			}
		} else {
			fields["meta"] = meta
		}
	}
	fields["code"] = code

	var buf bytes.Buffer
	if err := appendCanonical(&buf, fields); err != nil {
		return nil, fmt.Errorf("canonicalize payload: %w", err)
	}
	return buf.Bytes(), nil
}

// appendCanonical writes the canonical form of v to buf.
func appendCanonical(buf *bytes.Buffer, v any) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}

	switch val := v.(type) {
	case absentValue:
		// Absent is only meaningful as a map entry, where the enclosing
		// object drops it. Anywhere else it degrades to null.
		buf.WriteString("null")
		return nil
	case string:
		return writeJSON(buf, val)
	case bool, float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number, []byte:
		return writeJSON(buf, val)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			buf.WriteString("null")
			return nil
		}
		return appendCanonical(buf, rv.Elem().Interface())
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return writeFallback(buf, v)
		}
		return appendObject(buf, rv)
	case reflect.Slice, reflect.Array:
		buf.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendCanonical(buf, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case reflect.String:
		return writeJSON(buf, rv.String())
	case reflect.Bool:
		return writeJSON(buf, rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return writeJSON(buf, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return writeJSON(buf, rv.Uint())
	case reflect.Float32, reflect.Float64:
		return writeJSON(buf, rv.Float())
	default:
		return writeFallback(buf, v)
	}
}

// appendObject writes a string-keyed map as a JSON object with sorted keys,
// skipping entries whose value is Absent.
func appendObject(buf *bytes.Buffer, rv reflect.Value) error {
	type entry struct {
		key string
		val any
	}

	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		v := iter.Value().Interface()
		if _, skip := v.(absentValue); skip {
			continue
		}
		entries = append(entries, entry{key: iter.Key().String(), val: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(buf, e.key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := appendCanonical(buf, e.val); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// writeFallback serializes values with no structural canonical form (structs,
// channels, funcs are rejected by fmt anyway) as their deterministic %v text,
// JSON-escaped as a string.
func writeFallback(buf *bytes.Buffer, v any) error {
	return writeJSON(buf, fmt.Sprintf("%v", v))
}

func writeJSON(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
