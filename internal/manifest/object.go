package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// rawMap is a JSON object that remembers the order of its keys and leaves
// its values undecoded.
type rawMap = orderedmap.OrderedMap[string, json.RawMessage]

func newRawMap() *rawMap {
	return orderedmap.New[string, json.RawMessage]()
}

// decodeObject decodes data, which must hold a JSON object. Duplicate keys
// keep the position of their first occurrence and the last value.
func decodeObject(data []byte) (*rawMap, error) {
	obj := newRawMap()
	if err := json.Unmarshal(data, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// encodeObject encodes obj compactly with keys in insertion order.
// OrderedMap.MarshalJSON runs values through json.Marshal, which escapes
// &, < and > in every string; package.json scripts are full of those.
func encodeObject(obj *rawMap) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		key, err := encodeString(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := json.Compact(&buf, pair.Value); err != nil {
			return nil, fmt.Errorf("encoding %q: %w", pair.Key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeString encodes s as a JSON string without HTML escaping.
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
