package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qmstracker/internal/model"
	"qmstracker/internal/querycache"
)

// MockEntryService is a mock implementation of EntryService.
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) List(ctx context.Context, filters EntryFilters) ([]model.Entry, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Entry), args.Error(1)
}

func (m *MockEntryService) GetByID(ctx context.Context, id string) (*model.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockEntryService) Create(ctx context.Context, entry *model.Entry) (*model.Entry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockEntryService) Update(ctx context.Context, id string, updates *model.EntryUpdate) (*model.Entry, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockEntryService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeleteResult), args.Error(1)
}

func newTestCache() *querycache.Cache {
	return querycache.New(querycache.Options{
		StaleAfter:  time.Minute,
		EvictAfter:  5 * time.Minute,
		MaxAttempts: 1,
		Backoff:     time.Millisecond,
	})
}

func TestCachedEntryService_ListIsCached(t *testing.T) {
	inner := new(MockEntryService)
	entries := []model.Entry{{ID: "1"}, {ID: "2"}}
	inner.On("List", mock.Anything, EntryFilters{}).Return(entries, nil).Once()

	svc := NewCachedEntryService(inner, newTestCache())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := svc.List(ctx, EntryFilters{})
		require.NoError(t, err)
		assert.Equal(t, entries, got)
	}
	inner.AssertExpectations(t)
	inner.AssertNumberOfCalls(t, "List", 1)
}

func TestCachedEntryService_FilteredListsCacheSeparately(t *testing.T) {
	inner := new(MockEntryService)
	filters := EntryFilters{PortalName: "Acme"}
	inner.On("List", mock.Anything, EntryFilters{}).Return([]model.Entry{{ID: "1"}, {ID: "2"}}, nil).Once()
	inner.On("List", mock.Anything, filters).Return([]model.Entry{{ID: "1"}}, nil).Once()

	svc := NewCachedEntryService(inner, newTestCache())
	ctx := context.Background()

	all, err := svc.List(ctx, EntryFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.List(ctx, filters)
	require.NoError(t, err)
	assert.Len(t, filtered, 1)

	// Both variants are now warm.
	_, err = svc.List(ctx, EntryFilters{})
	require.NoError(t, err)
	_, err = svc.List(ctx, filters)
	require.NoError(t, err)
	inner.AssertExpectations(t)
}

func TestCachedEntryService_GetByIDIsCached(t *testing.T) {
	inner := new(MockEntryService)
	entry := &model.Entry{ID: "1", PortalName: "Acme"}
	inner.On("GetByID", mock.Anything, "1").Return(entry, nil).Once()

	svc := NewCachedEntryService(inner, newTestCache())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := svc.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, entry, got)
	}
	inner.AssertExpectations(t)
}

func TestCachedEntryService_CreateWritesThroughAndInvalidatesLists(t *testing.T) {
	inner := new(MockEntryService)
	created := &model.Entry{ID: "100", PortalName: "Acme", Source: model.SourceAssignment}
	listCalled := make(chan struct{}, 4)
	inner.On("List", mock.Anything, EntryFilters{}).Return([]model.Entry{}, nil).Run(func(mock.Arguments) {
		listCalled <- struct{}{}
	})
	inner.On("Create", mock.Anything, mock.AnythingOfType("*model.Entry")).Return(created, nil).Once()

	svc := NewCachedEntryService(inner, newTestCache())
	ctx := context.Background()

	// Warm the list cache.
	_, err := svc.List(ctx, EntryFilters{})
	require.NoError(t, err)
	<-listCalled

	got, err := svc.Create(ctx, &model.Entry{PortalName: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// The created entry is readable without touching the inner service.
	cached, err := svc.GetByID(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, created, cached)
	inner.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)

	// The stale list serves once and refetches in the background.
	_, err = svc.List(ctx, EntryFilters{})
	require.NoError(t, err)
	select {
	case <-listCalled:
	case <-time.After(time.Second):
		t.Fatal("no list refetch after invalidation")
	}
}

func TestCachedEntryService_UpdateWritesThrough(t *testing.T) {
	inner := new(MockEntryService)
	stale := &model.Entry{ID: "1", Status: "active"}
	updated := &model.Entry{ID: "1", Status: "completed"}
	inner.On("GetByID", mock.Anything, "1").Return(stale, nil).Once()
	inner.On("Update", mock.Anything, "1", mock.AnythingOfType("*model.EntryUpdate")).Return(updated, nil).Once()

	svc := NewCachedEntryService(inner, newTestCache())
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "1")
	require.NoError(t, err)

	status := "completed"
	got, err := svc.Update(ctx, "1", &model.EntryUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	// Reads see the merged entry immediately, with no refetch.
	cached, err := svc.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "completed", cached.Status)
	inner.AssertExpectations(t)
}

func TestCachedEntryService_DeleteRemovesEntryKey(t *testing.T) {
	inner := new(MockEntryService)
	entry := &model.Entry{ID: "1"}
	result := &model.DeleteResult{Success: true, Source: model.SourceAssignment}
	inner.On("GetByID", mock.Anything, "1").Return(entry, nil).Once()
	inner.On("Delete", mock.Anything, "1").Return(result, nil).Once()

	svc := NewCachedEntryService(inner, newTestCache())
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "1")
	require.NoError(t, err)

	got, err := svc.Delete(ctx, "1")
	require.NoError(t, err)
	assert.True(t, got.Success)

	// The id key is gone, so the next read hits the inner service again.
	inner.On("GetByID", mock.Anything, "1").Return(nil, assert.AnError).Once()
	_, err = svc.GetByID(ctx, "1")
	assert.ErrorIs(t, err, assert.AnError)
	inner.AssertExpectations(t)
}

func TestCachedEntryService_MutationErrorLeavesCacheAlone(t *testing.T) {
	inner := new(MockEntryService)
	entries := []model.Entry{{ID: "1"}}
	inner.On("List", mock.Anything, EntryFilters{}).Return(entries, nil).Once()
	inner.On("Delete", mock.Anything, "404").Return(nil, assert.AnError).Once()

	svc := NewCachedEntryService(inner, newTestCache())
	ctx := context.Background()

	_, err := svc.List(ctx, EntryFilters{})
	require.NoError(t, err)

	_, err = svc.Delete(ctx, "404")
	assert.ErrorIs(t, err, assert.AnError)

	// The list stays fresh; no refetch happens.
	got, err := svc.List(ctx, EntryFilters{})
	require.NoError(t, err)
	assert.Equal(t, entries, got)
	inner.AssertExpectations(t)
}
