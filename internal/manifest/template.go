package manifest

import "fmt"

// New returns the manifest of a fresh project: the given name, an empty
// description, no dependencies and the given scripts.
func New(name string, scripts []Entry) (*Manifest, error) {
	encodedName, err := encodeString(name)
	if err != nil {
		return nil, fmt.Errorf("encoding name: %w", err)
	}

	fields := newRawMap()
	fields.Set(keyName, encodedName)
	fields.Set(keyDescription, []byte(`""`))
	fields.Set(keyDependencies, []byte(`{}`))

	m := &Manifest{
		fields:       fields,
		dependencies: newRawMap(),
	}

	if err := m.SetScripts(scripts); err != nil {
		return nil, err
	}
	return m, nil
}
