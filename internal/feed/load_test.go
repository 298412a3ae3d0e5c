package feed

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "manifest.json"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if m == nil {
		t.Fatal("Load() returned nil manifest, want empty")
	}
	if len(m) != 0 {
		t.Errorf("Load() returned %d entries, want 0", len(m))
	}
}

func TestLoad_ReadError(t *testing.T) {
	// A directory is readable as a path but not as a file.
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("Load() on a directory returned nil error")
	}
}

func TestLoad_Contents(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty file", content: "", want: 0},
		{name: "whitespace only", content: "  \n\t", want: 0},
		{name: "corrupt json", content: "{invalid json", want: 0},
		{name: "truncated array", content: `[{"name": "Trakt"`, want: 0},
		{name: "null literal", content: "null", want: 0},
		{name: "empty array", content: "[]", want: 0},
		{name: "scalar", content: `42`, want: 0},
		{name: "string", content: `"not a manifest"`, want: 0},
		{
			name:    "single object wrapped in list",
			content: `{"name": "Trakt", "guid": "abc", "versions": []}`,
			want:    1,
		},
		{
			name: "two entries",
			content: `[
  {"name": "Trakt", "guid": "abc", "versions": []},
  {"name": "Fanart", "guid": "def", "versions": []}
]`,
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "manifest.json")
			writeFile(t, path, tt.content)

			m, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v, want nil", err)
			}
			if len(m) != tt.want {
				t.Errorf("Load() returned %d entries, want %d", len(m), tt.want)
			}
		})
	}
}

func TestLoad_FieldMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	writeFile(t, path, `[
  {
    "name": "Trakt",
    "guid": "c83d86bb-a1e0-4c35-a113-e2d1b8f04f45",
    "overview": "Scrobble to Trakt",
    "description": "Long form text",
    "category": "Metadata",
    "owner": "feedsmith",
    "imageUrl": "https://example.com/trakt.png",
    "versions": [
      {
        "version": "1.2.0.0",
        "targetAbi": "10.8.0.0",
        "sourceUrl": "https://example.com/trakt_1.2.0.0.zip",
        "checksum": "d41d8cd98f00b204e9800998ecf8427e",
        "timestamp": "2025-06-01T12:00:00Z"
      }
    ]
  }
]`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(m) != 1 {
		t.Fatalf("Load() returned %d entries, want 1", len(m))
	}

	p := m[0]
	if p.Name != "Trakt" {
		t.Errorf("Name = %q, want %q", p.Name, "Trakt")
	}
	if p.GUID != "c83d86bb-a1e0-4c35-a113-e2d1b8f04f45" {
		t.Errorf("GUID = %q", p.GUID)
	}
	if p.ImageURL != "https://example.com/trakt.png" {
		t.Errorf("ImageURL = %q", p.ImageURL)
	}
	if len(p.Versions) != 1 {
		t.Fatalf("len(Versions) = %d, want 1", len(p.Versions))
	}

	v := p.Versions[0]
	if v.Version != "1.2.0.0" {
		t.Errorf("Version = %q", v.Version)
	}
	if v.TargetABI != "10.8.0.0" {
		t.Errorf("TargetABI = %q", v.TargetABI)
	}
	if v.SourceURL != "https://example.com/trakt_1.2.0.0.zip" {
		t.Errorf("SourceURL = %q", v.SourceURL)
	}
	if v.Checksum != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("Checksum = %q", v.Checksum)
	}
	if v.Timestamp != "2025-06-01T12:00:00Z" {
		t.Errorf("Timestamp = %q", v.Timestamp)
	}
}

func TestLoad_MissingVersionsBecomesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	writeFile(t, path, `[{"name": "Trakt", "guid": "abc"}]`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(m) != 1 {
		t.Fatalf("Load() returned %d entries, want 1", len(m))
	}
	if m[0].Versions == nil {
		t.Error("Versions is nil, want empty slice")
	}
}

func TestDecode_DoesNotMutateInput(t *testing.T) {
	data := []byte(`[{"name": "Trakt", "guid": "abc", "versions": []}]`)
	orig := string(data)

	Decode(data)

	if string(data) != orig {
		t.Error("Decode() mutated its input buffer")
	}
}
