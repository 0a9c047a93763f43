package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// iface mirrors the runtime layout of an interface value; used to extract
// the data pointer without reflection in the iteration hot path.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

var entityIdType = reflect.TypeFor[EntityId]()

type viewField struct {
	typ        reflect.Type
	offset     uintptr
	optional   bool
	isEntityId bool
}

// View queries entities with a specific combination of components. The type
// T must be a struct whose fields are pointers to component types; a field
// of type EntityId is filled with the entity's id. Named fields may carry
// the `ecs:"optional"` tag, in which case they are nil when absent.
type View[T any] struct {
	storage *Storage
	fields  []viewField
}

// NewView creates a view for the given struct type.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	fields := make([]viewField, 0, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			fields = append(fields, viewField{
				typ:        entityIdType,
				offset:     field.Offset,
				isEntityId: true,
			})
			continue
		}

		if field.Type.Kind() != reflect.Pointer {
			panic("View struct fields must be pointer types or EntityId")
		}

		isOptional := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				isOptional = true
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
		}

		fields = append(fields, viewField{
			typ:      field.Type.Elem(),
			offset:   field.Offset,
			optional: isOptional,
		})
	}

	return &View[T]{storage: storage, fields: fields}
}

// Fill populates the struct pointed to by ptr with component data for the
// given entity. It returns false if a required component is missing.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	structPtr := unsafe.Pointer(ptr)

	for i := range v.fields {
		field := &v.fields[i]
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + field.offset)

		if field.isEntityId {
			*(*EntityId)(fieldPtr) = id
			continue
		}

		component := v.storage.GetComponent(id, field.typ)
		if component == nil {
			if !field.optional {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		*(*unsafe.Pointer)(fieldPtr) = (*iface)(unsafe.Pointer(&component)).data
	}

	return true
}

// Get returns a populated view struct for the entity, or nil if the entity
// is missing a required component.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// driverStore picks the smallest store among the required component types;
// iterating it visits the fewest candidate entities.
func (v *View[T]) driverStore() iComponentStorage {
	var smallest iComponentStorage
	for i := range v.fields {
		field := &v.fields[i]
		if field.isEntityId || field.optional {
			continue
		}
		store, ok := v.storage.stores[field.typ]
		if !ok {
			return nil
		}
		if smallest == nil || store.Len() < smallest.Len() {
			smallest = store
		}
	}
	return smallest
}

// Iter iterates all entities that have every required component, yielding
// (EntityId, T) pairs. Optional components are nil when absent.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		store := v.driverStore()
		if store == nil {
			return
		}

		var result T
		for id := range store.Iter() {
			if !v.Fill(id, &result) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values iterates just the view structs, without entity ids.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}
