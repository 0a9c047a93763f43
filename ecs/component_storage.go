package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// iComponentStorage is a type-erased store mapping entities to components of
// a single type. Get returns a pointer to the stored component wrapped in an
// interface, or nil when the entity has no component of this type.
type iComponentStorage interface {
	Add(id EntityId, component any)
	Get(id EntityId) any
	Has(id EntityId) bool
	Delete(id EntityId)
	Len() int
	Iter() iter.Seq[EntityId]
}

// genericComponentStorage keeps components of type T in a dense slice with an
// entity-id index. Deletion swap-removes the slot, so iteration order is
// insertion order until the first delete.
//
// Pointers handed out by Get stay valid for the remainder of a tick because
// structural changes go through Commands and only flush after all systems
// have run.
type genericComponentStorage[T any] struct {
	items []T
	ids   []EntityId
	index *intmap.Map[EntityId, int]
}

func newGenericComponentStorage[T any]() *genericComponentStorage[T] {
	return &genericComponentStorage[T]{
		index: intmap.New[EntityId, int](64),
	}
}

func (s *genericComponentStorage[T]) Add(id EntityId, component any) {
	value := component.(T)
	if slot, ok := s.index.Get(id); ok {
		s.items[slot] = value
		return
	}
	s.items = append(s.items, value)
	s.ids = append(s.ids, id)
	s.index.Put(id, len(s.items)-1)
}

func (s *genericComponentStorage[T]) Get(id EntityId) any {
	slot, ok := s.index.Get(id)
	if !ok {
		return nil
	}
	return &s.items[slot]
}

func (s *genericComponentStorage[T]) Has(id EntityId) bool {
	_, ok := s.index.Get(id)
	return ok
}

func (s *genericComponentStorage[T]) Delete(id EntityId) {
	slot, ok := s.index.Get(id)
	if !ok {
		return
	}

	last := len(s.items) - 1
	moved := s.ids[last]
	s.items[slot] = s.items[last]
	s.ids[slot] = moved

	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	s.ids = s.ids[:last]

	s.index.Del(id)
	if moved != id {
		s.index.Put(moved, slot)
	}
}

func (s *genericComponentStorage[T]) Len() int {
	return len(s.items)
}

func (s *genericComponentStorage[T]) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for _, id := range s.ids {
			if !yield(id) {
				return
			}
		}
	}
}
