package shift

import "testing"

func TestNameIndexResolveName(t *testing.T) {
	idx := BuildNameIndex([]Shift{
		{ID: "1", Name: "Day"},
		{ID: "2", Name: "Night"},
	})

	name, ok := idx.ResolveName("1")
	if !ok || name != "Day" {
		t.Errorf("ResolveName(1) = (%q, %v), want (Day, true)", name, ok)
	}

	name, ok = idx.ResolveName("2")
	if !ok || name != "Night" {
		t.Errorf("ResolveName(2) = (%q, %v), want (Night, true)", name, ok)
	}

	// Dangling reference keeps the raw id instead of dropping the record.
	name, ok = idx.ResolveName("missing")
	if ok || name != "missing" {
		t.Errorf("ResolveName(missing) = (%q, %v), want (missing, false)", name, ok)
	}
}

func TestBuildNameIndexEmpty(t *testing.T) {
	idx := BuildNameIndex(nil)
	name, ok := idx.ResolveName("anything")
	if ok || name != "anything" {
		t.Errorf("ResolveName on empty index = (%q, %v), want raw id back", name, ok)
	}
}
