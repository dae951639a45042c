package archive

import (
	"encoding/json"
	"os"
)

// Document is a loosely-typed metadata record. Downloader output varies across
// tools and versions, so fields are never assumed to exist and lookups degrade
// to "absent" instead of failing.
type Document map[string]any

// ReadDocument parses the file at path as a metadata record.
func ReadDocument(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Serialize renders the record back to JSON for verbatim storage.
func (d Document) Serialize() (string, error) {
	b, err := json.Marshal(d)
	return string(b), err
}

func (d Document) String(key string) (string, bool) {
	s, ok := d[key].(string)
	return s, ok
}

// FirstString returns the first key that holds a non-empty string.
func (d Document) FirstString(keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := d.String(key); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

func (d Document) Int(key string) (int, bool) {
	switch v := d[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	default:
		return 0, false
	}
}

func (d Document) Bool(key string) (bool, bool) {
	b, ok := d[key].(bool)
	return b, ok
}

// Child returns the nested record under key, if there is one.
func (d Document) Child(key string) (Document, bool) {
	m, ok := d[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return Document(m), true
}

// IntPtr and friends are lookup variants for nullable model fields.

func (d Document) IntPtr(key string) *int {
	if n, ok := d.Int(key); ok {
		return &n
	}
	return nil
}

func (d Document) StringPtr(key string) *string {
	if s, ok := d.String(key); ok {
		return &s
	}
	return nil
}

func (d Document) BoolPtr(key string) *bool {
	if b, ok := d.Bool(key); ok {
		return &b
	}
	return nil
}
