package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load reads the manifest at path, tolerating absent or unusable content.
// A missing or zero-length file yields an empty manifest, as does content
// that fails to decode, so a broken feed never blocks publishing. Only
// decode failures are swallowed: read errors (permissions and the like)
// are returned so they are not mistaken for a fresh feed.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Manifest{}, nil
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return Decode(data), nil
}

// Decode parses manifest bytes best-effort. Input that decodes as an entry
// array is returned as-is; a single entry object is wrapped in a one-entry
// manifest. Empty input, or input that decodes as neither, yields an empty
// manifest rather than an error.
func Decode(data []byte) Manifest {
	if len(data) == 0 {
		return Manifest{}
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err == nil {
		if m == nil {
			// The literal "null" decodes into a nil slice.
			return Manifest{}
		}
		return normalize(m)
	}

	var p Plugin
	if err := json.Unmarshal(data, &p); err == nil {
		return normalize(Manifest{p})
	}

	return Manifest{}
}

// normalize gives entries decoded without a versions key an empty history,
// so a rewrite always emits the documented array field instead of null.
func normalize(m Manifest) Manifest {
	for i := range m {
		if m[i].Versions == nil {
			m[i].Versions = []Version{}
		}
	}
	return m
}
