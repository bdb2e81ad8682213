package record_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mduval/wedding-rsvp/model"
	"github.com/mduval/wedding-rsvp/repository/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqlRepo(t *testing.T) *record.SQLRepository {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", filepath.Join(t.TempDir(), "rsvp.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := record.NewSQLRepository(db)
	require.NoError(t, repo.InitSchema(context.Background()))
	return repo
}

func TestSQLRepositoryUpsertInsertsAndReads(t *testing.T) {
	repo := sqlRepo(t)
	ctx := context.Background()

	rec := sampleRecord("a", "a@b.com", "+33612345678")
	rec.AdultPartner = true
	rec.Children = model.Children{
		Count:     3,
		AgeRanges: model.AgeRanges{Age0to3: 1, Age4to10: 2},
	}
	rec.Message = "see you there"
	require.NoError(t, repo.Upsert(ctx, rec))

	all, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, rec, all[0])
}

func TestSQLRepositoryResubmitSameValuesKeepsOneRow(t *testing.T) {
	repo := sqlRepo(t)
	ctx := context.Background()

	// Two submissions landing in the same millisecond produce byte-identical
	// rows; the second write must update, never collide on the primary key.
	rec := sampleRecord("a", "a@b.com", "")
	require.NoError(t, repo.Upsert(ctx, rec))
	require.NoError(t, repo.Upsert(ctx, rec))

	all, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "a", all[0].ID)
}

func TestSQLRepositoryUpsertUpdatesByID(t *testing.T) {
	repo := sqlRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, sampleRecord("a", "a@b.com", "")))
	require.NoError(t, repo.Upsert(ctx, sampleRecord("b", "c@d.com", "")))

	updated := sampleRecord("a", "a@b.com", "")
	updated.Name = "Renamed"
	updated.Attending = false
	updated.UpdatedAt = "2026-05-02T10:00:00.000Z"
	updated.CreatedAt = "2099-01-01T00:00:00.000Z" // must not overwrite the original
	require.NoError(t, repo.Upsert(ctx, updated))

	all, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	var got model.Record
	for _, r := range all {
		if r.ID == "a" {
			got = r
		}
	}
	assert.Equal(t, "Renamed", got.Name)
	assert.False(t, got.Attending)
	assert.Equal(t, "2026-05-02T10:00:00.000Z", got.UpdatedAt)
	assert.Equal(t, "2026-05-01T10:00:00.000Z", got.CreatedAt)
}

func TestSQLRepositoryFindMatch(t *testing.T) {
	repo := sqlRepo(t)
	ctx := context.Background()

	// Identity columns are normalized on write, so unnormalized input
	// still matches.
	require.NoError(t, repo.Upsert(ctx, sampleRecord("a", " A@B.Com ", "")))
	require.NoError(t, repo.Upsert(ctx, sampleRecord("b", "", "06 12 34 56 78")))

	tests := []struct {
		name   string
		email  string
		phone  string
		wantID string
	}{
		{name: "match by email", email: "a@b.com", wantID: "a"},
		{name: "match by phone", phone: "0612345678", wantID: "b"},
		{name: "no match", email: "x@y.z", phone: "+99999", wantID: ""},
		{name: "empty keys never match", wantID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindMatch(ctx, tt.email, tt.phone)
			require.NoError(t, err)
			if tt.wantID == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestSQLRepositoryReadAllNewestFirst(t *testing.T) {
	repo := sqlRepo(t)
	ctx := context.Background()

	older := sampleRecord("old", "old@b.com", "")
	older.UpdatedAt = "2026-05-01T10:00:00.000Z"
	newer := sampleRecord("new", "new@b.com", "")
	newer.UpdatedAt = "2026-05-03T10:00:00.000Z"

	require.NoError(t, repo.Upsert(ctx, older))
	require.NoError(t, repo.Upsert(ctx, newer))

	all, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].ID)
	assert.Equal(t, "old", all[1].ID)
}
