package record_test

import (
	"context"
	"testing"

	"github.com/mduval/wedding-rsvp/model"
	"github.com/mduval/wedding-rsvp/repository/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeValues is an in-memory stand-in for the sheets values API.
type fakeValues struct {
	rows [][]interface{}
}

func (f *fakeValues) GetAll(context.Context) ([][]interface{}, error) {
	return f.rows, nil
}

func (f *fakeValues) Append(_ context.Context, row []interface{}) error {
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeValues) Update(_ context.Context, rowIndex1Based int, row []interface{}) error {
	f.rows[rowIndex1Based-1] = row
	return nil
}

func sheetFixture() *fakeValues {
	return &fakeValues{rows: [][]interface{}{
		{"id", "createdAt", "updatedAt", "code", "name", "email", "phone",
			"attending", "adultPartner", "kids_0_3", "kids_4_10", "kids_11_17",
			"kids_total", "message"},
		{"r1", "2026-05-01T10:00:00.000Z", "2026-05-01T10:00:00.000Z", "VIP1",
			"Alice", "a@b.com", "", "yes", "no", "2", "1", "0", "3", "see you there"},
		{"r2", "2026-05-01T11:00:00.000Z", "2026-05-02T09:00:00.000Z", "VIP2",
			"Bob", "", "+33612345678", "oui", "oui", "0", "0", "0", "0", ""},
		{"r3", "2026-05-01T12:00:00.000Z", "2026-05-01T12:00:00.000Z", "VIP1",
			"Carol", "c@d.com", "", "nope"},
	}}
}

func TestSheetRepositoryReadAll(t *testing.T) {
	repo := record.NewSheetRepository(sheetFixture())

	all, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Sorted by updatedAt descending.
	assert.Equal(t, "r2", all[0].ID)
	assert.Equal(t, "r3", all[1].ID)
	assert.Equal(t, "r1", all[2].ID)

	// Row mapping.
	alice := all[2]
	assert.Equal(t, "Alice", alice.Name)
	assert.True(t, alice.Attending)
	assert.False(t, alice.AdultPartner)
	assert.Equal(t, 3, alice.Children.Count)
	assert.Equal(t, 2, alice.Children.AgeRanges.Age0to3)
	assert.Equal(t, "see you there", alice.Message)

	// Localized affirmative reads as true.
	bob := all[0]
	assert.True(t, bob.Attending)
	assert.True(t, bob.AdultPartner)

	// Short row: missing trailing cells read as empty/zero, "nope" is false.
	carol := all[1]
	assert.False(t, carol.Attending)
	assert.Equal(t, 0, carol.Children.Count)
	assert.Equal(t, "", carol.Message)
}

func TestSheetRepositoryTruthyParsing(t *testing.T) {
	fake := &fakeValues{rows: [][]interface{}{
		{"id"},
		{"t1", "", "", "", "", "", "", "YES"},
		{"t2", "", "", "", "", "", "", "True"},
		{"t3", "", "", "", "", "", "", "1"},
		{"t4", "", "", "", "", "", "", "Oui"},
		{"t5", "", "", "", "", "", "", "no"},
		{"t6", "", "", "", "", "", "", "si"},
		{"t7", "", "", "", "", "", "", ""},
	}}
	repo := record.NewSheetRepository(fake)

	all, err := repo.ReadAll(context.Background())
	require.NoError(t, err)

	got := map[string]bool{}
	for _, rec := range all {
		got[rec.ID] = rec.Attending
	}
	assert.Equal(t, map[string]bool{
		"t1": true, "t2": true, "t3": true, "t4": true,
		"t5": false, "t6": false, "t7": false,
	}, got)
}

func TestSheetRepositoryFindMatch(t *testing.T) {
	repo := record.NewSheetRepository(sheetFixture())
	ctx := context.Background()

	got, err := repo.FindMatch(ctx, "a@b.com", "")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "r1", got.ID)

	got, err = repo.FindMatch(ctx, "", "+33612345678")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "r2", got.ID)

	got, err = repo.FindMatch(ctx, "nobody@x.y", "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSheetRepositoryUpsertUpdatesMatchedRow(t *testing.T) {
	fake := sheetFixture()
	repo := record.NewSheetRepository(fake)
	ctx := context.Background()

	rec := model.Record{
		ID:        "r1",
		CreatedAt: "2026-05-01T10:00:00.000Z",
		UpdatedAt: "2026-05-03T08:00:00.000Z",
		Code:      "VIP1",
		Name:      "Alice Renamed",
		Email:     "a@b.com",
		Attending: false,
	}
	require.NoError(t, repo.Upsert(ctx, rec))

	// Still four rows (header + 3), row 2 rewritten.
	require.Len(t, fake.rows, 4)
	assert.Equal(t, "Alice Renamed", fake.rows[1][4])
	assert.Equal(t, "no", fake.rows[1][7])
}

func TestSheetRepositoryUpsertAppendsNewRow(t *testing.T) {
	fake := sheetFixture()
	repo := record.NewSheetRepository(fake)
	ctx := context.Background()

	rec := model.Record{
		ID:        "r4",
		CreatedAt: "2026-05-03T08:00:00.000Z",
		UpdatedAt: "2026-05-03T08:00:00.000Z",
		Code:      "VIP3",
		Name:      "Dave",
		Email:     "dave@x.y",
		Attending: true,
		Children: model.Children{
			Count:     1,
			AgeRanges: model.AgeRanges{Age4to10: 1},
		},
	}
	require.NoError(t, repo.Upsert(ctx, rec))

	require.Len(t, fake.rows, 5)
	last := fake.rows[4]
	assert.Equal(t, "r4", last[0])
	assert.Equal(t, "yes", last[7])
	assert.Equal(t, "1", last[10])
	assert.Equal(t, "1", last[12])
}

func TestSheetRepositoryUpsertWritesHeaderOnEmptySheet(t *testing.T) {
	fake := &fakeValues{}
	repo := record.NewSheetRepository(fake)

	rec := model.Record{ID: "r1", Name: "Alice", Email: "a@b.com"}
	require.NoError(t, repo.Upsert(context.Background(), rec))

	require.Len(t, fake.rows, 2)
	assert.Equal(t, "id", fake.rows[0][0])
	assert.Equal(t, "r1", fake.rows[1][0])
}
