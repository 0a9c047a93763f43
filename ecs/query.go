package ecs

import "iter"

// Query wraps a View with result caching. The cache is rebuilt lazily
// whenever the storage has seen a structural change (spawn, delete, add or
// remove component) since the last iteration; in-place component mutation
// never invalidates it because cached structs hold pointers into storage.
type Query[T any] struct {
	view    *View[T]
	storage *Storage

	cachedEntities   []EntityId
	cachedComponents []T
	cachedVersion    uint64
	cacheValid       bool
}

// NewQuery creates a new Query with result caching.
func NewQuery[T any](storage *Storage) *Query[T] {
	return &Query[T]{
		view:    NewView[T](storage),
		storage: storage,
	}
}

// Init initializes or re-initializes the Query with a storage. Called by the
// Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.cacheValid = false
}

func (q *Query[T]) refresh() {
	if q.cacheValid && q.cachedVersion == q.storage.version {
		return
	}

	q.cachedEntities = q.cachedEntities[:0]
	q.cachedComponents = q.cachedComponents[:0]

	for id, item := range q.view.Iter() {
		q.cachedEntities = append(q.cachedEntities, id)
		q.cachedComponents = append(q.cachedComponents, item)
	}

	q.cachedVersion = q.storage.version
	q.cacheValid = true
}

// Iter iterates entity ids and view structs for all matching entities.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	q.refresh()
	return func(yield func(EntityId, T) bool) {
		for i := range q.cachedEntities {
			if !yield(q.cachedEntities[i], q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Values iterates just the view structs.
func (q *Query[T]) Values() iter.Seq[T] {
	q.refresh()
	return func(yield func(T) bool) {
		for i := range q.cachedComponents {
			if !yield(q.cachedComponents[i]) {
				return
			}
		}
	}
}
