package feed

// RemovePlugin deletes the first entry whose guid matches and reports
// whether an entry was removed. The remaining entries keep their order.
func RemovePlugin(m Manifest, guid string) (Manifest, bool) {
	i := m.FindByGUID(guid)
	if i < 0 {
		return m, false
	}
	return append(m[:i], m[i+1:]...), true
}

// RemoveVersion deletes every record with the given version number from the
// matched entry's history and reports whether anything was removed. The
// entry itself is kept even if its history becomes empty.
func RemoveVersion(m Manifest, guid, version string) (Manifest, bool) {
	i := m.FindByGUID(guid)
	if i < 0 {
		return m, false
	}

	kept := make([]Version, 0, len(m[i].Versions))
	removed := false
	for _, rec := range m[i].Versions {
		if rec.Version == version {
			removed = true
			continue
		}
		kept = append(kept, rec)
	}
	if removed {
		m[i].Versions = kept
	}
	return m, removed
}

// Prune trims every entry's history to its newest keep records and returns
// the number of records dropped. Histories are stored newest-first, so
// pruning keeps the head of each list. keep values below one prune nothing.
func Prune(m Manifest, keep int) (Manifest, int) {
	if keep < 1 {
		return m, 0
	}

	dropped := 0
	for i := range m {
		if len(m[i].Versions) > keep {
			dropped += len(m[i].Versions) - keep
			m[i].Versions = m[i].Versions[:keep]
		}
	}
	return m, dropped
}

// PrunePlugin trims a single entry's history to its newest keep records.
// It returns the number of records dropped and whether the entry was found.
func PrunePlugin(m Manifest, guid string, keep int) (Manifest, int, bool) {
	i := m.FindByGUID(guid)
	if i < 0 {
		return m, 0, false
	}
	if keep < 1 || len(m[i].Versions) <= keep {
		return m, 0, true
	}

	dropped := len(m[i].Versions) - keep
	m[i].Versions = m[i].Versions[:keep]
	return m, dropped, true
}
