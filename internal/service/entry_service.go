package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"qmstracker/internal/errors"
	"qmstracker/internal/model"
	"qmstracker/internal/repository"
)

// Per-operation simulated latency, matching the original service. The
// delays only exercise asynchronous consumers and are scaled (usually
// to zero) by the latency factor.
const (
	listLatency   = 300 * time.Millisecond
	getLatency    = 200 * time.Millisecond
	createLatency = 500 * time.Millisecond
	updateLatency = 400 * time.Millisecond
	deleteLatency = 300 * time.Millisecond
)

// EntryFilters narrows List results. Absent fields are no-ops; provided
// fields combine with AND semantics.
type EntryFilters struct {
	PortalName string
	BidNumber  string
	HunterName string
	FromDate   string
	ToDate     string
}

// Empty reports whether no filter field is set.
func (f EntryFilters) Empty() bool {
	return f == EntryFilters{}
}

// EntryService is the CRUD facade over the two entry collections.
type EntryService interface {
	List(ctx context.Context, filters EntryFilters) ([]model.Entry, error)
	GetByID(ctx context.Context, id string) (*model.Entry, error)
	Create(ctx context.Context, entry *model.Entry) (*model.Entry, error)
	Update(ctx context.Context, id string, updates *model.EntryUpdate) (*model.Entry, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type entryService struct {
	repo          repository.EntryRepository
	latencyFactor float64
}

// NewEntryService creates an entry service. latencyFactor scales the
// simulated per-operation delays; pass 0 to disable them.
func NewEntryService(repo repository.EntryRepository, latencyFactor float64) EntryService {
	return &entryService{repo: repo, latencyFactor: latencyFactor}
}

// simulateLatency blocks for the scaled delay or until the context ends.
func (s *entryService) simulateLatency(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * s.latencyFactor)
	if scaled <= 0 {
		return nil
	}
	timer := time.NewTimer(scaled)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// List merges both collections, Assignment entries first, each in
// storage order, then applies the filters.
func (s *entryService) List(ctx context.Context, filters EntryFilters) ([]model.Entry, error) {
	assignment, err := s.repo.LoadCollection(ctx, model.SourceAssignment)
	if err != nil {
		return nil, err
	}
	sourcing, err := s.repo.LoadCollection(ctx, model.SourceSourcing)
	if err != nil {
		return nil, err
	}

	entries := make([]model.Entry, 0, len(assignment)+len(sourcing))
	entries = append(entries, assignment...)
	entries = append(entries, sourcing...)

	entries, err = applyFilters(entries, filters)
	if err != nil {
		return nil, err
	}

	if err := s.simulateLatency(ctx, listLatency); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByID resolves an id against the Assignment collection first, then
// Sourcing; the first match wins.
func (s *entryService) GetByID(ctx context.Context, id string) (*model.Entry, error) {
	for _, source := range []model.Source{model.SourceAssignment, model.SourceSourcing} {
		entries, err := s.repo.LoadCollection(ctx, source)
		if err != nil {
			return nil, err
		}
		for i := range entries {
			if entries[i].ID == id {
				if err := s.simulateLatency(ctx, getLatency); err != nil {
					return nil, err
				}
				found := entries[i]
				return &found, nil
			}
		}
	}
	return nil, fmt.Errorf("no entry found for QMS ID: %s: %w", id, errors.ErrEntryNotFound)
}

// Create assigns a new id and timestamps and appends the entry to the
// Assignment collection. Sourcing entries are never created here.
func (s *entryService) Create(ctx context.Context, entry *model.Entry) (*model.Entry, error) {
	if err := s.simulateLatency(ctx, createLatency); err != nil {
		return nil, err
	}

	now := time.Now()
	stored := *entry
	stored.ID = strconv.FormatInt(now.UnixMilli(), 10)
	stored.TimeStamp = now
	stored.CreatedAt = now
	stored.UpdatedAt = now

	err := s.repo.Mutate(ctx, model.SourceAssignment, func(entries []model.Entry) ([]model.Entry, bool, error) {
		return append(entries, stored), true, nil
	})
	if err != nil {
		return nil, err
	}

	stored.Source = model.SourceAssignment
	return &stored, nil
}

// Update shallow-merges the updates into the entry, refreshing
// updatedAt. The Assignment collection is searched first.
func (s *entryService) Update(ctx context.Context, id string, updates *model.EntryUpdate) (*model.Entry, error) {
	if err := s.simulateLatency(ctx, updateLatency); err != nil {
		return nil, err
	}

	for _, source := range []model.Source{model.SourceAssignment, model.SourceSourcing} {
		var updated *model.Entry
		err := s.repo.Mutate(ctx, source, func(entries []model.Entry) ([]model.Entry, bool, error) {
			for i := range entries {
				if entries[i].ID != id {
					continue
				}
				updates.Apply(&entries[i])
				entries[i].UpdatedAt = time.Now()
				result := entries[i]
				updated = &result
				return entries, true, nil
			}
			return entries, false, nil
		})
		if err != nil {
			return nil, err
		}
		if updated != nil {
			updated.Source = source
			return updated, nil
		}
	}
	return nil, fmt.Errorf("entry with ID %s not found: %w", id, errors.ErrEntryNotFound)
}

// Delete removes the entry from whichever collection holds it. An
// unknown id fails without touching storage.
func (s *entryService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	if err := s.simulateLatency(ctx, deleteLatency); err != nil {
		return nil, err
	}

	for _, source := range []model.Source{model.SourceAssignment, model.SourceSourcing} {
		removed := false
		err := s.repo.Mutate(ctx, source, func(entries []model.Entry) ([]model.Entry, bool, error) {
			filtered := entries[:0]
			for _, e := range entries {
				if e.ID == id {
					removed = true
					continue
				}
				filtered = append(filtered, e)
			}
			return filtered, removed, nil
		})
		if err != nil {
			return nil, err
		}
		if removed {
			return &model.DeleteResult{Success: true, Source: source}, nil
		}
	}
	return nil, fmt.Errorf("entry with ID %s not found: %w", id, errors.ErrEntryNotFound)
}

// applyFilters keeps only entries satisfying every provided predicate.
func applyFilters(entries []model.Entry, filters EntryFilters) ([]model.Entry, error) {
	if filters.Empty() {
		return entries, nil
	}

	var fromDate, toDate time.Time
	var err error
	if filters.FromDate != "" {
		if fromDate, err = parseDate(filters.FromDate); err != nil {
			return nil, fmt.Errorf("fromDate %q: %w", filters.FromDate, errors.ErrInvalidFilter)
		}
	}
	if filters.ToDate != "" {
		if toDate, err = parseDate(filters.ToDate); err != nil {
			return nil, fmt.Errorf("toDate %q: %w", filters.ToDate, errors.ErrInvalidFilter)
		}
	}

	matched := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if !containsFold(e.PortalName, filters.PortalName) ||
			!containsFold(e.BidNumber, filters.BidNumber) ||
			!containsFold(e.HunterName, filters.HunterName) {
			continue
		}
		if filters.FromDate != "" || filters.ToDate != "" {
			entryDate, err := parseDate(e.Date)
			if err != nil {
				// Entries without a comparable date never match a date bound.
				continue
			}
			if filters.FromDate != "" && entryDate.Before(fromDate) {
				continue
			}
			if filters.ToDate != "" && entryDate.After(toDate) {
				continue
			}
		}
		matched = append(matched, e)
	}
	return matched, nil
}

// containsFold is a case-insensitive substring match. An empty needle
// matches everything.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
}

// parseDate accepts the date formats observed in stored entries.
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", value)
}
