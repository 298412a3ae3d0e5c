package feed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// tmpSuffix is appended to the target path while the replacement is written.
const tmpSuffix = ".tmp"

// Write persists the manifest as pretty-printed JSON: two-space indent, a
// trailing newline, and no HTML escaping so download and image URLs survive
// byte for byte. The document is written to a temporary file beside the
// target (parent directories created as needed) and renamed over it, so a
// reader only ever observes a complete feed and a crash mid-write leaves
// the previous feed intact.
func Write(path string, m Manifest) error {
	if m == nil {
		m = Manifest{}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating manifest directory: %w", err)
	}

	tmp := path + tmpSuffix
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating temp manifest: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing temp manifest: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing manifest: %w", err)
	}
	return nil
}
