package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open("", nil)
	assert.Error(t, err)
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")

	store, err := Open(path, nil)

	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestRecordAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	rec := &Record{
		OriginalPath:    "orig.txt",
		CandidatePath:   "copy.txt",
		Score:           0.87,
		OriginalTokens:  10,
		CandidateTokens: 12,
		VocabSize:       15,
	}
	require.NoError(t, store.Record(ctx, rec))
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.OriginalPath, got.OriginalPath)
	assert.Equal(t, rec.CandidatePath, got.CandidatePath)
	assert.InDelta(t, 0.87, got.Score, 1e-9)
	assert.Equal(t, 15, got.VocabSize)
}

func TestGetMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(context.Background(), "no-such-id")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		rec := &Record{
			OriginalPath:  "orig.txt",
			CandidatePath: "copy.txt",
			Score:         float64(i) / 10,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.Record(ctx, rec))
	}

	records, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.InDelta(t, 0.2, records[0].Score, 1e-9)
	assert.InDelta(t, 0.1, records[1].Score, 1e-9)
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, score := range []float64{0.2, 0.4, 0.9} {
		require.NoError(t, store.Record(ctx, &Record{
			OriginalPath:  "a.txt",
			CandidatePath: "b.txt",
			Score:         score,
		}))
	}

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalChecks)
	assert.InDelta(t, 0.5, stats.MeanScore, 1e-9)
	assert.InDelta(t, 0.9, stats.MaxScore, 1e-9)
}

func TestStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalChecks)
	assert.Zero(t, stats.MeanScore)
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, &Record{OriginalPath: "a", CandidatePath: "b", Score: 0.5}))
	require.NoError(t, store.Clear(ctx))

	records, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClosedStore(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Close())

	err := store.Record(context.Background(), &Record{OriginalPath: "a", CandidatePath: "b"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreClosed)
}
