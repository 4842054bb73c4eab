package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type rosterEntry struct {
	ID   string
	Name string
}

func entryKey(e rosterEntry) string { return e.ID }

func entryIDs(entries []rosterEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestRosterAddRejectsDuplicateKey(t *testing.T) {
	r := NewRoster(entryKey)
	if !r.Add(rosterEntry{ID: "a", Name: "first"}) {
		t.Fatal("Add() first entry = false, want true")
	}
	if r.Add(rosterEntry{ID: "a", Name: "duplicate"}) {
		t.Error("Add() duplicate key = true, want false")
	}
	if got := r.Len(); got != 1 {
		t.Errorf("Len() after duplicate add = %d, want 1", got)
	}
	got, ok := r.Get("a")
	if !ok {
		t.Fatal("Get(\"a\") not found after duplicate add")
	}
	if got.Name != "first" {
		t.Errorf("Get(\"a\").Name = %q, want %q", got.Name, "first")
	}
}

func TestRosterPreservesInsertionOrder(t *testing.T) {
	r := NewRoster(entryKey)
	for _, id := range []string{"c", "a", "b", "e", "d"} {
		r.Add(rosterEntry{ID: id})
	}
	if diff := cmp.Diff([]string{"c", "a", "b", "e", "d"}, entryIDs(r.Items())); diff != "" {
		t.Fatalf("Items() order mismatch (-want +got):\n%s", diff)
	}

	if _, ok := r.RemoveByKey("b"); !ok {
		t.Fatal("RemoveByKey(\"b\") = false, want true")
	}
	if diff := cmp.Diff([]string{"c", "a", "e", "d"}, entryIDs(r.Items())); diff != "" {
		t.Errorf("Items() order after removal mismatch (-want +got):\n%s", diff)
	}

	r.Add(rosterEntry{ID: "b"})
	if diff := cmp.Diff([]string{"c", "a", "e", "d", "b"}, entryIDs(r.Items())); diff != "" {
		t.Errorf("re-added entry should append at the end (-want +got):\n%s", diff)
	}
}

func TestRosterRemove(t *testing.T) {
	r := NewRoster(entryKey)
	r.Add(rosterEntry{ID: "a"})
	r.Add(rosterEntry{ID: "b"})

	if !r.Remove(rosterEntry{ID: "a", Name: "same id, different value"}) {
		t.Error("Remove() by matching key = false, want true")
	}
	if r.Remove(rosterEntry{ID: "missing"}) {
		t.Error("Remove() absent key = true, want false")
	}
	if r.Contains("a") {
		t.Error("Contains(\"a\") = true after removal, want false")
	}
	if got := r.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestRosterItemsReturnsCopy(t *testing.T) {
	r := NewRoster(entryKey)
	r.Add(rosterEntry{ID: "a", Name: "original"})

	items := r.Items()
	items[0].Name = "mutated"

	got, _ := r.Get("a")
	if got.Name != "original" {
		t.Errorf("Get(\"a\").Name = %q after mutating snapshot, want %q", got.Name, "original")
	}

	items = append(items, rosterEntry{ID: "b"})
	_ = items
	if r.Len() != 1 {
		t.Errorf("Len() = %d after appending to snapshot, want 1", r.Len())
	}
}

func TestRosterCapacity(t *testing.T) {
	r := NewBoundedRoster(entryKey, 2)
	if !r.Add(rosterEntry{ID: "a"}) || !r.Add(rosterEntry{ID: "b"}) {
		t.Fatal("Add() within capacity = false, want true")
	}
	if r.Add(rosterEntry{ID: "c"}) {
		t.Error("Add() beyond capacity = true, want false")
	}
	if got := r.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}

	r.RemoveByKey("a")
	if !r.Add(rosterEntry{ID: "c"}) {
		t.Error("Add() after freeing a slot = false, want true")
	}
}

func TestRosterFirst(t *testing.T) {
	r := NewRoster(entryKey)
	if _, ok := r.First(); ok {
		t.Error("First() on empty roster reported ok")
	}

	r.Add(rosterEntry{ID: "a"})
	r.Add(rosterEntry{ID: "b"})
	first, ok := r.First()
	if !ok || first.ID != "a" {
		t.Errorf("First() = %v, %v, want entry a, true", first, ok)
	}

	r.RemoveByKey("a")
	first, ok = r.First()
	if !ok || first.ID != "b" {
		t.Errorf("First() after removing head = %v, %v, want entry b, true", first, ok)
	}
}
