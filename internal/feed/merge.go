package feed

// Merge applies one publish submission to the manifest. The first entry
// whose guid matches the descriptor is updated in place: its descriptor
// fields are overwritten with the submitted values, any existing record
// with the submitted version number is dropped, and the new record is
// prepended to the remaining history. The entry keeps its position. When
// no entry matches, a new entry whose history holds just the new record is
// appended. The descriptor's own Versions field is ignored.
//
// The returned manifest shares backing storage with m.
func Merge(m Manifest, p Plugin, v Version) Manifest {
	i := m.FindByGUID(p.GUID)
	if i < 0 {
		p.Versions = []Version{v}
		return append(m, p)
	}

	history := make([]Version, 0, len(m[i].Versions)+1)
	history = append(history, v)
	for _, rec := range m[i].Versions {
		if rec.Version != v.Version {
			history = append(history, rec)
		}
	}

	p.Versions = history
	m[i] = p
	return m
}
