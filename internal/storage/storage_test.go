package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)
	v, err := db.CurrentVersion()
	require.NoError(t, err)
	require.Equal(t, len(migrations), v)

	// reapplying is a no-op
	require.NoError(t, applyMigrations(db.DB))
	v, err = db.CurrentVersion()
	require.NoError(t, err)
	require.Equal(t, len(migrations), v)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "re.db")
	db, err := Open(path)
	require.NoError(t, err)
	id, err := NewDatasetRepository(db).Create(context.Background(), "htm", 10, 1, "")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()
	_, err = NewDatasetRepository(db).Get(context.Background(), id)
	require.NoError(t, err)
}

func TestDatasetsAndSamples(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	datasets := NewDatasetRepository(db)
	samples := NewSampleRepository(db)

	id, err := datasets.Create(ctx, "qtm", 20, 42, "smoke")
	require.NoError(t, err)

	repr := bitset.New(480).Set(3).Set(200)
	batch := []Sample{
		{Index: 0, Scramble: "R U", Facelets: "WWW", Representation: repr, Solvable: true},
		{Index: 1, Scramble: "F2", Facelets: "YYY", Representation: bitset.New(480), Solvable: false},
	}
	require.NoError(t, samples.InsertBatch(ctx, id, batch))

	d, err := datasets.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "qtm", d.Metric)
	require.Equal(t, uint64(42), d.Seed)
	require.Equal(t, 2, d.SampleCount)
	require.NotNil(t, d.Notes)
	require.Equal(t, "smoke", *d.Notes)

	got, err := samples.List(ctx, id, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "R U", got[0].Scramble)
	require.True(t, got[0].Representation.Equal(repr))
	require.True(t, got[0].Solvable)
	require.False(t, got[1].Solvable)

	got, err = samples.List(ctx, id, 1, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	list, err := datasets.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, datasets.Delete(ctx, id))
	n, err := samples.Count(ctx, id)
	require.NoError(t, err)
	require.Zero(t, n, "samples cascade with their dataset")

	_, err = datasets.Get(ctx, id)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, datasets.Delete(ctx, id), ErrNotFound)
}

func TestDuplicateSampleRollsBack(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	id, err := NewDatasetRepository(db).Create(ctx, "htm", 5, 7, "")
	require.NoError(t, err)

	samples := NewSampleRepository(db)
	dup := []Sample{
		{Index: 0, Scramble: "R", Facelets: "x", Representation: bitset.New(480)},
		{Index: 0, Scramble: "R", Facelets: "x", Representation: bitset.New(480)},
	}
	require.Error(t, samples.InsertBatch(ctx, id, dup))

	n, err := samples.Count(ctx, id)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	id, err := repo.Create(ctx, "track", "GoCube_1", "WWWWWWWWW")
	require.NoError(t, err)
	require.NoError(t, repo.AddTurn(ctx, id, SessionTurn{Seq: 0, Turn: "R", TsMs: 0}))
	require.NoError(t, repo.AddTurn(ctx, id, SessionTurn{Seq: 1, Turn: "R'", TsMs: 350}))
	require.NoError(t, repo.End(ctx, id, true))

	s, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "track", s.Source)
	require.True(t, s.Solved)
	require.NotNil(t, s.EndedAt)
	require.Equal(t, "GoCube_1", *s.DeviceName)

	turns, err := repo.Turns(ctx, id)
	require.NoError(t, err)
	require.Equal(t, []SessionTurn{{0, "R", 0}, {1, "R'", 350}}, turns)

	list, err := repo.List(ctx, 5)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.ErrorIs(t, repo.End(ctx, "missing", false), ErrNotFound)
	_, err = repo.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
