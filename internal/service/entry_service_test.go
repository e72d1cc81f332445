package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qmserrors "qmstracker/internal/errors"
	"qmstracker/internal/kv"
	"qmstracker/internal/model"
	"qmstracker/internal/repository"
)

// countingStore wraps a store and counts writes.
type countingStore struct {
	kv.Store
	sets int
}

func (s *countingStore) Set(ctx context.Context, key string, value []byte) error {
	s.sets++
	return s.Store.Set(ctx, key, value)
}

func newTestEntryService(t *testing.T) (EntryService, repository.EntryRepository, *countingStore) {
	t.Helper()
	store := &countingStore{Store: kv.NewMemoryStore()}
	repo := repository.NewEntryRepository(store)
	return NewEntryService(repo, 0), repo, store
}

func seedCollections(t *testing.T, repo repository.EntryRepository, assignment, sourcing []model.Entry) {
	t.Helper()
	require.NoError(t, repo.SaveCollection(context.Background(), model.SourceAssignment, assignment))
	require.NoError(t, repo.SaveCollection(context.Background(), model.SourceSourcing, sourcing))
}

func TestEntryService_CreateAndGetByID(t *testing.T) {
	svc, _, _ := newTestEntryService(t)
	ctx := context.Background()

	before := time.Now().UnixMilli()
	created, err := svc.Create(ctx, &model.Entry{
		PortalName: "Acme Portal",
		BidNumber:  "BID-100",
		HunterName: "MFakheem",
	})
	require.NoError(t, err)
	after := time.Now().UnixMilli()

	assert.Equal(t, model.SourceAssignment, created.Source)
	assert.Equal(t, "Acme Portal", created.PortalName)
	assert.False(t, created.TimeStamp.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	id, err := strconv.ParseInt(created.ID, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, id, before)
	assert.LessOrEqual(t, id, after)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, model.SourceAssignment, got.Source)
	assert.Equal(t, "BID-100", got.BidNumber)
}

func TestEntryService_GetByID_NotFound(t *testing.T) {
	svc, _, _ := newTestEntryService(t)

	got, err := svc.GetByID(context.Background(), "999")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, qmserrors.ErrEntryNotFound)
	assert.Contains(t, err.Error(), "no entry found for QMS ID: 999")
}

func TestEntryService_GetByID_SourcingEntry(t *testing.T) {
	svc, repo, _ := newTestEntryService(t)
	seedCollections(t, repo,
		[]model.Entry{{ID: "1", PortalName: "Alpha"}},
		[]model.Entry{{ID: "2", PortalName: "Beta"}},
	)

	got, err := svc.GetByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, model.SourceSourcing, got.Source)
	assert.Equal(t, "Beta", got.PortalName)
}

func TestEntryService_List(t *testing.T) {
	assignment := []model.Entry{
		{ID: "1", PortalName: "Acme Portal", BidNumber: "BID-100", HunterName: "MFakheem", Date: "2025-07-01"},
		{ID: "2", PortalName: "Global Tenders", BidNumber: "BID-200", HunterName: "jdoe", Date: "2025-07-15"},
	}
	sourcing := []model.Entry{
		{ID: "3", PortalName: "ACME sourcing", BidNumber: "SRC-1", HunterName: "asmith", Date: "2025-08-01"},
		{ID: "4", PortalName: "Other", BidNumber: "SRC-2", HunterName: "MFakheem", Date: "not a date"},
	}

	tests := []struct {
		name    string
		filters EntryFilters
		wantIDs []string
	}{
		{
			name:    "no filters merges assignment then sourcing",
			filters: EntryFilters{},
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "portal name is case-insensitive substring",
			filters: EntryFilters{PortalName: "acm"},
			wantIDs: []string{"1", "3"},
		},
		{
			name:    "filters combine with AND",
			filters: EntryFilters{PortalName: "Acme", HunterName: "MFakheem"},
			wantIDs: []string{"1"},
		},
		{
			name:    "from date is inclusive",
			filters: EntryFilters{FromDate: "2025-07-15"},
			wantIDs: []string{"2", "3"},
		},
		{
			name:    "date range excludes unparsable entry dates",
			filters: EntryFilters{FromDate: "2025-01-01", ToDate: "2025-12-31"},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "no match",
			filters: EntryFilters{BidNumber: "BID-999"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestEntryService(t)
			seedCollections(t, repo, assignment, sourcing)

			entries, err := svc.List(context.Background(), tt.filters)
			require.NoError(t, err)

			ids := make([]string, 0, len(entries))
			for _, e := range entries {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestEntryService_List_TagsSources(t *testing.T) {
	svc, repo, _ := newTestEntryService(t)
	seedCollections(t, repo,
		[]model.Entry{{ID: "1"}},
		[]model.Entry{{ID: "2"}},
	)

	entries, err := svc.List(context.Background(), EntryFilters{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, model.SourceAssignment, entries[0].Source)
	assert.Equal(t, model.SourceSourcing, entries[1].Source)
}

func TestEntryService_List_InvalidFilterDate(t *testing.T) {
	svc, repo, _ := newTestEntryService(t)
	seedCollections(t, repo, []model.Entry{{ID: "1", Date: "2025-07-01"}}, nil)

	_, err := svc.List(context.Background(), EntryFilters{FromDate: "yesterday"})
	require.Error(t, err)
	assert.ErrorIs(t, err, qmserrors.ErrInvalidFilter)

	_, err = svc.List(context.Background(), EntryFilters{ToDate: "2025-13-40"})
	require.Error(t, err)
	assert.ErrorIs(t, err, qmserrors.ErrInvalidFilter)
}

func TestEntryService_Update(t *testing.T) {
	svc, _, _ := newTestEntryService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.Entry{
		PortalName: "Acme Portal",
		BidNumber:  "BID-100",
		Status:     "active",
	})
	require.NoError(t, err)

	status := "completed"
	remarks := "won the bid"
	updated, err := svc.Update(ctx, created.ID, &model.EntryUpdate{
		Status:         &status,
		HuntingRemarks: &remarks,
	})
	require.NoError(t, err)

	assert.Equal(t, "completed", updated.Status)
	assert.Equal(t, "won the bid", updated.HuntingRemarks)
	assert.Equal(t, "Acme Portal", updated.PortalName, "untouched fields survive the merge")
	assert.Equal(t, "BID-100", updated.BidNumber)
	assert.Equal(t, model.SourceAssignment, updated.Source)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
}

func TestEntryService_Update_SourcingCollection(t *testing.T) {
	svc, repo, _ := newTestEntryService(t)
	seedCollections(t, repo, nil, []model.Entry{{ID: "42", PortalName: "Beta"}})

	portal := "Beta Revised"
	updated, err := svc.Update(context.Background(), "42", &model.EntryUpdate{PortalName: &portal})
	require.NoError(t, err)
	assert.Equal(t, model.SourceSourcing, updated.Source)
	assert.Equal(t, "Beta Revised", updated.PortalName)
}

func TestEntryService_Update_NotFound(t *testing.T) {
	svc, _, _ := newTestEntryService(t)

	status := "completed"
	updated, err := svc.Update(context.Background(), "7", &model.EntryUpdate{Status: &status})
	assert.Nil(t, updated)
	require.Error(t, err)
	assert.ErrorIs(t, err, qmserrors.ErrEntryNotFound)
	assert.Contains(t, err.Error(), "entry with ID 7 not found")
}

func TestEntryService_Delete(t *testing.T) {
	svc, repo, _ := newTestEntryService(t)
	ctx := context.Background()
	seedCollections(t, repo,
		[]model.Entry{{ID: "1"}, {ID: "2"}},
		[]model.Entry{{ID: "3"}},
	)

	result, err := svc.Delete(ctx, "1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, model.SourceAssignment, result.Source)

	result, err = svc.Delete(ctx, "3")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, model.SourceSourcing, result.Source)

	entries, err := svc.List(ctx, EntryFilters{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2", entries[0].ID)

	_, err = svc.GetByID(ctx, "1")
	assert.ErrorIs(t, err, qmserrors.ErrEntryNotFound)
}

func TestEntryService_Delete_Twice(t *testing.T) {
	svc, repo, _ := newTestEntryService(t)
	ctx := context.Background()
	seedCollections(t, repo, []model.Entry{{ID: "1"}}, nil)

	_, err := svc.Delete(ctx, "1")
	require.NoError(t, err)

	result, err := svc.Delete(ctx, "1")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, qmserrors.ErrEntryNotFound)
}

func TestEntryService_Delete_UnknownIDWritesNothing(t *testing.T) {
	svc, repo, store := newTestEntryService(t)
	seedCollections(t, repo, []model.Entry{{ID: "1"}}, nil)
	setsAfterSeed := store.sets

	result, err := svc.Delete(context.Background(), "999")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, qmserrors.ErrEntryNotFound)
	assert.Equal(t, setsAfterSeed, store.sets, "failed delete must not rewrite storage")
}

func TestEntryService_LatencyHonoursContext(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := repository.NewEntryRepository(store)
	svc := NewEntryService(repo, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.List(ctx, EntryFilters{})
	assert.ErrorIs(t, err, context.Canceled)
}
