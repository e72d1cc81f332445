package service

import (
	"context"
	"net/url"

	"qmstracker/internal/model"
	"qmstracker/internal/querycache"
)

// Query keys shared by reads and mutation-driven invalidation. List
// keys live under one prefix so filtered variants invalidate together.
const (
	keyEntriesPrefix = "qms:entries"
	keyEntryPrefix   = "qms:entry:"
)

func entriesKey(filters EntryFilters) string {
	if filters.Empty() {
		return keyEntriesPrefix
	}
	v := url.Values{}
	if filters.PortalName != "" {
		v.Set("portalName", filters.PortalName)
	}
	if filters.BidNumber != "" {
		v.Set("bidNumber", filters.BidNumber)
	}
	if filters.HunterName != "" {
		v.Set("hunterName", filters.HunterName)
	}
	if filters.FromDate != "" {
		v.Set("fromDate", filters.FromDate)
	}
	if filters.ToDate != "" {
		v.Set("toDate", filters.ToDate)
	}
	return keyEntriesPrefix + ":" + v.Encode()
}

func entryKey(id string) string {
	return keyEntryPrefix + id
}

// CachedEntryService decorates an EntryService with the query cache.
// Reads go through the cache; mutations write through, invalidate the
// list keys, or remove the entry key.
type CachedEntryService struct {
	inner EntryService
	cache *querycache.Cache
}

// NewCachedEntryService wraps inner with cache.
func NewCachedEntryService(inner EntryService, cache *querycache.Cache) *CachedEntryService {
	return &CachedEntryService{inner: inner, cache: cache}
}

var _ EntryService = (*CachedEntryService)(nil)

func (s *CachedEntryService) List(ctx context.Context, filters EntryFilters) ([]model.Entry, error) {
	value, err := s.cache.Fetch(ctx, entriesKey(filters), func(ctx context.Context) (any, error) {
		return s.inner.List(ctx, filters)
	})
	if err != nil {
		return nil, err
	}
	return value.([]model.Entry), nil
}

func (s *CachedEntryService) GetByID(ctx context.Context, id string) (*model.Entry, error) {
	value, err := s.cache.Fetch(ctx, entryKey(id), func(ctx context.Context) (any, error) {
		return s.inner.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return value.(*model.Entry), nil
}

// Create writes the new entry through to its id key and marks every
// list stale.
func (s *CachedEntryService) Create(ctx context.Context, entry *model.Entry) (*model.Entry, error) {
	created, err := s.inner.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	s.cache.Set(entryKey(created.ID), created)
	s.cache.InvalidatePrefix(keyEntriesPrefix)
	return created, nil
}

// Update writes the merged entry through and marks every list stale.
func (s *CachedEntryService) Update(ctx context.Context, id string, updates *model.EntryUpdate) (*model.Entry, error) {
	updated, err := s.inner.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	s.cache.Set(entryKey(id), updated)
	s.cache.InvalidatePrefix(keyEntriesPrefix)
	return updated, nil
}

// Delete drops the entry key entirely and marks every list stale.
func (s *CachedEntryService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	result, err := s.inner.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Remove(entryKey(id))
	s.cache.InvalidatePrefix(keyEntriesPrefix)
	return result, nil
}
