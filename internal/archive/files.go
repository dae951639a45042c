package archive

import "os"

// PostID extracts the post identifier from a filename: the maximal run of
// decimal digits anchored at the start of the name. Filenames that do not
// begin with a digit carry no identifier.
func PostID(filename string) (string, bool) {
	end := 0
	for end < len(filename) && filename[end] >= '0' && filename[end] <= '9' {
		end++
	}
	if end == 0 {
		return "", false
	}
	return filename[:end], true
}

// GroupFiles partitions the author's directory into per-post file sets, keyed
// by post identifier. Only regular files directly in the directory are
// considered; files without an identifier are dropped. Group iteration order
// is unspecified, but filenames within a group keep directory listing order.
func (a *Archive) GroupFiles(handle string) (map[string][]string, error) {
	entries, err := os.ReadDir(a.AuthorDir(handle))
	if err != nil {
		return nil, err
	}

	groups := map[string][]string{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		id, ok := PostID(entry.Name())
		if !ok {
			continue
		}
		groups[id] = append(groups[id], entry.Name())
	}
	return groups, nil
}
