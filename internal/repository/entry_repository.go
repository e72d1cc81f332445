package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"qmstracker/internal/kv"
	"qmstracker/internal/model"
)

// EntryRepository persists the two entry collections. Each collection
// is serialized as a whole; mutations are read-modify-write at
// collection granularity.
type EntryRepository interface {
	LoadCollection(ctx context.Context, source model.Source) ([]model.Entry, error)
	SaveCollection(ctx context.Context, source model.Source, entries []model.Entry) error
	// Mutate loads a collection, applies fn and saves the result when fn
	// reports a change. The whole cycle holds the collection lock so
	// overlapping in-process mutations cannot lose updates.
	Mutate(ctx context.Context, source model.Source, fn func(entries []model.Entry) ([]model.Entry, bool, error)) error
}

type entryRepository struct {
	store kv.Store
	locks map[model.Source]*sync.Mutex
}

// NewEntryRepository creates an entry repository over the given store.
func NewEntryRepository(store kv.Store) EntryRepository {
	return &entryRepository{
		store: store,
		locks: map[model.Source]*sync.Mutex{
			model.SourceAssignment: {},
			model.SourceSourcing:   {},
		},
	}
}

func storageKey(source model.Source) string {
	if source == model.SourceSourcing {
		return kv.KeySourcingEntries
	}
	return kv.KeyAssignmentEntries
}

// LoadCollection reads a collection and tags every entry with its
// source. A missing key yields the empty collection. Malformed
// persisted JSON is logged, the key is cleared and the empty
// collection is returned.
func (r *entryRepository) LoadCollection(ctx context.Context, source model.Source) ([]model.Entry, error) {
	key := storageKey(source)
	data, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []model.Entry{}, nil
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("corrupted collection %s, clearing: %v", key, err)
		if derr := r.store.Delete(ctx, key); derr != nil {
			return nil, fmt.Errorf("clear corrupted %s: %w", key, derr)
		}
		return []model.Entry{}, nil
	}

	for i := range entries {
		entries[i].Source = source
	}
	return entries, nil
}

// SaveCollection rewrites a collection. The source tag is derived
// state and stripped before serialization.
func (r *entryRepository) SaveCollection(ctx context.Context, source model.Source, entries []model.Entry) error {
	stored := make([]model.Entry, len(entries))
	copy(stored, entries)
	for i := range stored {
		stored[i].Source = ""
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", storageKey(source), err)
	}
	return r.store.Set(ctx, storageKey(source), data)
}

func (r *entryRepository) Mutate(ctx context.Context, source model.Source, fn func(entries []model.Entry) ([]model.Entry, bool, error)) error {
	lock := r.locks[source]
	lock.Lock()
	defer lock.Unlock()

	entries, err := r.LoadCollection(ctx, source)
	if err != nil {
		return err
	}
	next, changed, err := fn(entries)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return r.SaveCollection(ctx, source, next)
}
