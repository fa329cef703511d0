package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := Open()
	require.NoError(t, err, "opening in-memory index")
	t.Cleanup(func() { ix.Close() })
	return ix
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, ix.Add(ctx, 1, "C++ OOP Deep Dive", "KavyaTech"))
	require.NoError(t, ix.Add(ctx, 2, "Data Structures Overview", "KavyaTech"))
	require.NoError(t, ix.Add(ctx, 3, "Chill Loops", "IndieMusic"))

	// "c++" must match the C++ title but not "Chill Loops".
	ids, err := ix.Search(ctx, "c++")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)

	// Query case is irrelevant in both directions.
	ids, err = ix.Search(ctx, "CHILL")
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids)

	ids, err = ix.Search(ctx, "data structures")
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)
}

func TestSearchNoMatch(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()
	require.NoError(t, ix.Add(ctx, 1, "Chill Loops", "IndieMusic"))

	ids, err := ix.Search(ctx, "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSearchEmptyQueryMatchesAll(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()
	require.NoError(t, ix.Add(ctx, 2, "b", "c"))
	require.NoError(t, ix.Add(ctx, 1, "a", "c"))

	ids, err := ix.Search(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids, "all ids, ascending")
}

// LIKE metacharacters in the query are literal text, not wildcards.
func TestSearchWildcardsAreLiteral(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()
	require.NoError(t, ix.Add(ctx, 1, "100% Pure Lo-fi", "IndieMusic"))
	require.NoError(t, ix.Add(ctx, 2, "Plain Mix", "IndieMusic"))

	ids, err := ix.Search(ctx, "100%")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)

	ids, err = ix.Search(ctx, "%")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids, "bare %% only matches the title that contains one")
}

func TestSearchResultsInIDOrder(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()
	require.NoError(t, ix.Add(ctx, 5, "go tips", "c"))
	require.NoError(t, ix.Add(ctx, 2, "go basics", "c"))
	require.NoError(t, ix.Add(ctx, 9, "go tricks", "c"))

	ids, err := ix.Search(ctx, "go")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 5, 9}, ids)
}
