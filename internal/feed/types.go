package feed

// Plugin is one distributable plugin: its descriptor fields plus the
// version history clients pick downloads from.
type Plugin struct {
	Name        string    `json:"name"`
	GUID        string    `json:"guid"`
	Overview    string    `json:"overview"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Owner       string    `json:"owner"`
	ImageURL    string    `json:"imageUrl"`
	Versions    []Version `json:"versions"`
}

// Version is one published build of a plugin: where to download it and how
// to identify the build. All fields are opaque strings; timestamps are
// passed through exactly as submitted.
type Version struct {
	Version   string `json:"version"`
	TargetABI string `json:"targetAbi"`
	SourceURL string `json:"sourceUrl"`
	Checksum  string `json:"checksum"`
	Timestamp string `json:"timestamp"`
}

// Manifest is the full update feed: an ordered list of plugin entries.
// Order is insertion order. Merges update matched entries in place and
// append new entries at the end.
type Manifest []Plugin

// FindByGUID returns the index of the first entry whose guid equals guid,
// or -1 if no entry matches. Guids are compared byte for byte; the feed
// treats them as opaque identifiers.
func (m Manifest) FindByGUID(guid string) int {
	for i := range m {
		if m[i].GUID == guid {
			return i
		}
	}
	return -1
}

// FindByName returns the indexes of every entry with the given name.
// Names are not required to be unique, so callers that resolve entries by
// name must handle multiple matches.
func (m Manifest) FindByName(name string) []int {
	var matches []int
	for i := range m {
		if m[i].Name == name {
			matches = append(matches, i)
		}
	}
	return matches
}

// TotalVersions returns the number of version records across all entries.
func (m Manifest) TotalVersions() int {
	n := 0
	for i := range m {
		n += len(m[i].Versions)
	}
	return n
}
