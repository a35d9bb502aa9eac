// Package manifest reads and writes the package.json of a project.
//
// A Manifest keeps every top-level key of the original document in its
// original order. Only the fields create-catalog cares about (name,
// dependencies and scripts) are interpreted; everything else is carried
// through untouched.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FileName is the manifest file name inside a project root.
const FileName = "package.json"

// Well-known manifest keys.
const (
	keyName         = "name"
	keyDescription  = "description"
	keyDependencies = "dependencies"
	keyScripts      = "scripts"
)

// Entry is a single name/value pair of a dependency or script mapping.
type Entry struct {
	Name  string
	Value string
}

// Manifest is the parsed state of a package.json file.
type Manifest struct {
	fields *rawMap

	// dependencies and scripts are nil when absent or null.
	dependencies *rawMap
	scripts      *rawMap
}

// Parse parses a package.json document.
func Parse(data []byte) (*Manifest, error) {
	fields, err := decodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	m := &Manifest{fields: fields}

	if m.dependencies, err = m.mapping(keyDependencies); err != nil {
		return nil, err
	}
	if m.scripts, err = m.mapping(keyScripts); err != nil {
		return nil, err
	}
	return m, nil
}

// mapping decodes the object stored under key. A missing key or an explicit
// null yields nil.
func (m *Manifest) mapping(key string) (*rawMap, error) {
	raw, ok := m.fields.Get(key)
	if !ok || isNull(raw) {
		return nil, nil
	}

	obj, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %s field %q: %w", FileName, key, err)
	}
	return obj, nil
}

// Name returns the package name, or "" when absent or not a string.
func (m *Manifest) Name() string {
	raw, ok := m.fields.Get(keyName)
	if !ok {
		return ""
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return ""
	}
	return name
}

// HasDependencies reports whether the manifest declares a dependency mapping at all.
func (m *Manifest) HasDependencies() bool {
	return m.dependencies != nil
}

// HasDependency reports whether name is declared with a non-empty version.
func (m *Manifest) HasDependency(name string) bool {
	return has(m.dependencies, name)
}

// HasScript reports whether name is declared with a non-empty command.
func (m *Manifest) HasScript(name string) bool {
	return has(m.scripts, name)
}

// Dependencies returns the dependency mapping in declaration order.
// Non-string values are skipped.
func (m *Manifest) Dependencies() []Entry {
	return entries(m.dependencies)
}

// Scripts returns the script mapping in declaration order.
// Non-string values are skipped.
func (m *Manifest) Scripts() []Entry {
	return entries(m.scripts)
}

// SetScripts adds or replaces the given scripts, keeping every other script
// and the position of scripts that already existed. The scripts mapping is
// created when the manifest has none.
func (m *Manifest) SetScripts(scripts []Entry) error {
	if m.scripts == nil {
		m.scripts = newRawMap()
	}
	for _, s := range scripts {
		value, err := encodeString(s.Value)
		if err != nil {
			return fmt.Errorf("encoding script %q: %w", s.Name, err)
		}
		m.scripts.Set(s.Name, value)
	}
	return m.store(keyScripts, m.scripts)
}

// store writes a nested object back into the top-level fields.
func (m *Manifest) store(key string, obj *rawMap) error {
	raw, err := encodeObject(obj)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	m.fields.Set(key, raw)
	return nil
}

// Marshal encodes the manifest with two-space indentation and a trailing newline.
func (m *Manifest) Marshal() ([]byte, error) {
	compact, err := encodeObject(m.fields)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", FileName, err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", FileName, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func has(obj *rawMap, name string) bool {
	if obj == nil {
		return false
	}
	raw, ok := obj.Get(name)
	return ok && isTruthy(raw)
}

func entries(obj *rawMap) []Entry {
	if obj == nil {
		return []Entry{}
	}
	out := make([]Entry, 0, obj.Len())
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		var value string
		if err := json.Unmarshal(pair.Value, &value); err != nil {
			continue
		}
		out = append(out, Entry{Name: pair.Key, Value: value})
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// isTruthy reports whether raw holds a value other than null, false, 0 or "".
func isTruthy(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "null", "false", "0", `""`:
		return false
	default:
		return true
	}
}
