package service

import (
	"context"
	"fmt"

	"github.com/kavya/mytube/internal/search"
	"github.com/kavya/mytube/internal/timing"
)

// SearchIndex is what the service needs from a title index. Declared here,
// on the consumer side, so tests can substitute a fake without touching the
// sqlite-backed implementation.
type SearchIndex interface {
	Add(ctx context.Context, id int64, title, channel string) error
	Search(ctx context.Context, query string) ([]int64, error)
}

var _ SearchIndex = (*search.Index)(nil)

// Search returns the videos whose title contains the query,
// case-insensitively, in id order. A sequence, not a Result: an empty
// slice is a perfectly good answer, and the only failure mode is the index
// itself breaking, which is an error, not a business outcome.
//
// Ids that the index still holds but the registry no longer resolves are
// skipped, mirroring how playlists treat stale ids.
func (t *Tube) Search(ctx context.Context, query string) ([]VideoSummary, error) {
	defer timing.Track(t.logger, t.perf, "search")()

	ids, err := t.index.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching videos: %w", err)
	}

	out := make([]VideoSummary, 0, len(ids))
	for _, id := range ids {
		if v, ok := t.videos.Get(id); ok {
			out = append(out, summarize(v))
		}
	}
	return out, nil
}
