package ecs

import "reflect"

// Storage holds all entities, components, and singletons of one ECS world.
// Components of each type live in their own store; there is no archetype
// grouping, so adding or removing a component never moves an entity.
type Storage struct {
	registry   *ComponentRegistry
	stores     map[reflect.Type]iComponentStorage
	singletons map[reflect.Type]any
	nextEntity EntityId
	version    uint64
}

// NewStorage creates a new ECS storage with the given component registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		stores:     make(map[reflect.Type]iComponentStorage),
		singletons: make(map[reflect.Type]any),
	}
}

// Spawn creates a new entity with the provided components and returns its id.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	s.nextEntity++
	id := s.nextEntity

	for _, comp := range components {
		t, value := normalizeComponent(comp)
		s.storeFor(t).Add(id, value)
	}

	s.version++
	return id
}

// Delete removes all components of the entity. Unknown ids are a no-op.
func (s *Storage) Delete(id EntityId) {
	for _, store := range s.stores {
		store.Delete(id)
	}
	s.version++
}

// AddComponent attaches a component to an existing entity, replacing any
// previous component of the same type.
func (s *Storage) AddComponent(id EntityId, component any) {
	t, value := normalizeComponent(component)
	s.storeFor(t).Add(id, value)
	s.version++
}

// RemoveComponent detaches a component of the given type from the entity.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) {
	if store, ok := s.stores[compType]; ok {
		store.Delete(id)
		s.version++
	}
}

// GetComponent returns a pointer to the entity's component of the given type
// wrapped in an interface, or nil if absent.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	store, ok := s.stores[compType]
	if !ok {
		return nil
	}
	return store.Get(id)
}

// HasComponent reports whether the entity has a component of the given type.
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	store, ok := s.stores[compType]
	return ok && store.Has(id)
}

// AddSingleton stores a single component instance not associated with any
// entity, replacing a previous value of the same type.
func (s *Storage) AddSingleton(value any) {
	t, v := normalizeComponent(value)
	ptr := reflect.New(t)
	ptr.Elem().Set(reflect.ValueOf(v))
	s.singletons[t] = ptr.Interface()
}

// ReadSingleton fills out, which must be a pointer to a pointer of the
// singleton type (e.g. **Camera), with the stored singleton. It returns
// false if no singleton of that type exists.
func (s *Storage) ReadSingleton(out any) bool {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Pointer {
		panic("ReadSingleton requires a pointer to a pointer")
	}

	t := v.Elem().Type().Elem()
	stored, ok := s.singletons[t]
	if !ok {
		return false
	}

	v.Elem().Set(reflect.ValueOf(stored))
	return true
}

func (s *Storage) getSingleton(t reflect.Type) any {
	return s.singletons[t]
}

func (s *Storage) storeFor(t reflect.Type) iComponentStorage {
	store, ok := s.stores[t]
	if !ok {
		factory := s.registry.getFactory(t)
		if factory == nil {
			panic("component type " + t.String() + " not registered")
		}
		store = factory()
		s.stores[t] = store
	}
	return store
}

// normalizeComponent resolves a component value or pointer-to-value into its
// component type and value form.
func normalizeComponent(component any) (reflect.Type, any) {
	t := reflect.TypeOf(component)
	if t == nil {
		panic("component must not be nil")
	}

	if t.Kind() == reflect.Pointer {
		elem := reflect.ValueOf(component).Elem()
		t = elem.Type()
		component = elem.Interface()
	}

	// Components are value types: structs or primitives.
	if t.Kind() == reflect.Pointer || t.Kind() == reflect.Map ||
		t.Kind() == reflect.Chan || t.Kind() == reflect.Func {
		panic("components cannot be pointers, maps, channels, or functions")
	}

	return t, component
}

// StorageStats summarizes the contents of a Storage.
type StorageStats struct {
	ComponentTypeCount int
	ComponentCount     int
	SingletonCount     int
}

// CollectStats gathers counts over all component stores and singletons.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		ComponentTypeCount: len(s.stores),
		SingletonCount:     len(s.singletons),
	}
	for _, store := range s.stores {
		stats.ComponentCount += store.Len()
	}
	return stats
}

// ComponentReader reads components by entity id and type.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns a typed pointer to the entity's component, or nil.
func ReadComponent[T any](reader ComponentReader, id EntityId) *T {
	c := reader.GetComponent(id, reflect.TypeFor[T]())
	if c == nil {
		return nil
	}
	return c.(*T)
}
