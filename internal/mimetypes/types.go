package mimetypes

// MappingEntry is a single extension to content type pair.
type MappingEntry struct {
	// Extension without the leading dot (e.g. "html").
	Extension string
	// ContentType as written in the file (e.g. "text/html").
	ContentType string
	// Line is the 1-based line the entry was read from.
	Line int
}

// MappingTable is the ordered sequence of entries read from a file.
type MappingTable struct {
	Entries []MappingEntry
}

// Len returns the number of entries.
func (t *MappingTable) Len() int {
	if t == nil {
		return 0
	}

	return len(t.Entries)
}

// Add appends an entry for the given extension and content type.
func (t *MappingTable) Add(extension, contentType string, line int) {
	t.Entries = append(t.Entries, MappingEntry{
		Extension:   extension,
		ContentType: contentType,
		Line:        line,
	})
}

// ContentTypes returns the distinct content types in first-seen order.
func (t *MappingTable) ContentTypes() []string {
	seen := make(map[string]struct{})

	var out []string
	for _, e := range t.Entries {
		if _, ok := seen[e.ContentType]; ok {
			continue
		}

		seen[e.ContentType] = struct{}{}
		out = append(out, e.ContentType)
	}

	return out
}

// Duplicates returns extensions that appear more than once, in the order
// their second occurrence was seen.
func (t *MappingTable) Duplicates() []string {
	counts := make(map[string]int)

	var out []string
	for _, e := range t.Entries {
		counts[e.Extension]++
		if counts[e.Extension] == 2 {
			out = append(out, e.Extension)
		}
	}

	return out
}
