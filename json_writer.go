package tally

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter builds a JSON object whose fields are written in the
// order they are appended. Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds the field key with value marshaled by json.Marshal.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	keyBytes, _ := json.Marshal(key)
	if w.Len() > 0 {
		w.WriteByte(',')
	}
	w.Write(keyBytes)
	w.WriteByte(':')
	w.Write(valBytes)
	return w
}

// Optional adds the field key only if value is not empty: zero values,
// empty strings, slices and maps are omitted.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() {
		return w
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		if v.Len() == 0 {
			return w
		}
	}
	return w.Append(key, value)
}

// MarshalJSON returns the object built so far, or the first error met.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	final := make([]byte, 0, w.Len()+2)
	final = append(final, '{')
	final = append(final, w.Bytes()...)
	final = append(final, '}')
	return final, nil
}
