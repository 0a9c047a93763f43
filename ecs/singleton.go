package ecs

import "reflect"

// Singleton provides typed access to a single component instance that is not
// associated with any entity. Use it for global state such as input or
// camera resources.
type Singleton[T any] struct {
	storage *Storage
	ptr     *T
}

// NewSingleton creates a Singleton accessor for the given storage. If the
// singleton does not exist yet it is created with the initializer value (or
// the zero value), so the singleton is guaranteed to exist afterwards.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	t := reflect.TypeFor[T]()

	if storage.getSingleton(t) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}

	return &Singleton[T]{
		storage: storage,
		ptr:     storage.getSingleton(t).(*T),
	}
}

// Init initializes the Singleton with a storage reference. Called
// automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.ptr = nil
	s.lookup()
}

// Get returns a pointer to the singleton, or nil if it has not been added.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil {
		s.lookup()
	}
	return s.ptr
}

// Exists reports whether the singleton has been added to storage.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) lookup() {
	if s.storage == nil {
		return
	}
	if stored := s.storage.getSingleton(reflect.TypeFor[T]()); stored != nil {
		s.ptr = stored.(*T)
	}
}
