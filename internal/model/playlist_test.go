package model

import (
	"testing"

	"github.com/kavya/mytube/internal/ident"
)

func TestPlaylistAddAllowsDuplicatesAndUnknownIDs(t *testing.T) {
	p := NewPlaylist("mix")

	// No existence check at add time: unknown ids and duplicates both land.
	p.Add(1)
	p.Add(1)
	p.Add(424242)

	got := p.VideoIDs()
	want := []int64{1, 1, 424242}
	if len(got) != len(want) {
		t.Fatalf("VideoIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("VideoIDs() = %v, want %v", got, want)
		}
	}
}

func TestPlaylistResolveSkipsStaleIDs(t *testing.T) {
	gen := &ident.Generator{}
	ch := NewChannel("c", "o", "", gen)
	v1 := ch.Upload("one", 60)
	v2 := ch.Upload("two", 60)

	table := map[int64]*Video{v1.ID(): v1, v2.ID(): v2}
	lookup := func(id int64) (*Video, bool) {
		v, ok := table[id]
		return v, ok
	}

	p := NewPlaylist("mix")
	p.Add(v1.ID())
	p.Add(999) // never existed
	p.Add(v2.ID())

	got := p.Resolve(lookup)
	if len(got) != 2 {
		t.Fatalf("Resolve() returned %d videos, want 2 (stale id skipped silently)", len(got))
	}
	if got[0] != v1 || got[1] != v2 {
		t.Error("Resolve() broke playlist order")
	}
}

func TestPlaylistResolveEmpty(t *testing.T) {
	p := NewPlaylist("mix")
	lookup := func(int64) (*Video, bool) { return nil, false }

	if got := p.Resolve(lookup); len(got) != 0 {
		t.Errorf("Resolve() of empty playlist = %d entries, want 0", len(got))
	}

	p.Add(5)
	if got := p.Resolve(lookup); len(got) != 0 {
		t.Errorf("Resolve() with nothing resolvable = %d entries, want 0", len(got))
	}
}
