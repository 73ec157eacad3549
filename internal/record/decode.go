package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"mids/internal/model"
)

// ErrNotObject is returned when the JSON document is not an object.
var ErrNotObject = errors.New("record is not a JSON object")

// Decode reads a single JSON object from r.
func Decode(r io.Reader) (model.Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode record JSON: %w", err)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotObject, v)
	}

	return model.Record(obj), nil
}

// Parse decodes a JSON object held in data.
func Parse(data []byte) (model.Record, error) {
	return Decode(bytes.NewReader(data))
}

// LoadFile loads a JSON record from the given path.
func LoadFile(path string) (model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file %s: %w", path, err)
	}

	rec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rec, nil
}
