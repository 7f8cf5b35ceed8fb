package shift

// NameIndex maps shift ids to their display names. It is built once per
// read and thrown away with the response, never cached across requests.
type NameIndex map[string]string

func BuildNameIndex(shifts []Shift) NameIndex {
	idx := make(NameIndex, len(shifts))
	for _, s := range shifts {
		idx[s.ID] = s.Name
	}
	return idx
}

// ResolveName returns the display name for a shift id. When the id matches
// no known shift the raw id comes back with ok=false; callers keep the raw
// value so a dangling reference never drops the record from a read.
func (idx NameIndex) ResolveName(id string) (string, bool) {
	if name, ok := idx[id]; ok {
		return name, true
	}
	return id, false
}
