package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/puppet/ecs"
)

func TestViewGet(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 3, DY: 4})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	item := view.Get(id)
	assert.NotNil(t, item)
	assert.Equal(t, float32(1), item.Position.X)
	assert.Equal(t, float32(4), item.Velocity.DY)
}

func TestViewMissingRequiredComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 5})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	assert.Nil(t, view.Get(id))
}

func TestViewOptionalComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	bare := storage.Spawn(Position{X: 1})
	named := storage.Spawn(Position{X: 2}, Name{Value: "avatar"})

	view := ecs.NewView[struct {
		*Position
		Name *Name `ecs:"optional"`
	}](storage)

	item := view.Get(bare)
	assert.NotNil(t, item)
	assert.Nil(t, item.Name)

	item = view.Get(named)
	assert.NotNil(t, item)
	assert.Equal(t, "avatar", item.Name.Value)
}

func TestViewEntityIdField(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 9})

	view := ecs.NewView[struct {
		ecs.EntityId
		*Position
	}](storage)

	item := view.Get(id)
	assert.NotNil(t, item)
	assert.Equal(t, id, item.EntityId)
}

func TestViewIter(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 1}, Velocity{DX: 1})
	storage.Spawn(Position{X: 2}, Velocity{DX: 2})
	storage.Spawn(Position{X: 3}) // missing Velocity, must not match

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	var total float32
	count := 0
	for _, item := range view.Iter() {
		total += item.Position.X
		count++
	}

	assert.Equal(t, 2, count)
	assert.Equal(t, float32(3), total)
}

func TestViewIterMutation(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 0}, Velocity{DX: 10})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	for item := range view.Values() {
		item.Position.X += item.Velocity.DX
	}

	assert.Equal(t, float32(10), ecs.ReadComponent[Position](storage, id).X)
}

func TestViewZeroSizeComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 1}, Tagged{})
	storage.Spawn(Position{X: 2})

	view := ecs.NewView[struct {
		*Position
		*Tagged
	}](storage)

	count := 0
	for _, item := range view.Iter() {
		assert.Equal(t, float32(1), item.Position.X)
		count++
	}
	assert.Equal(t, 1, count)
}

func TestViewNonStructPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() {
		ecs.NewView[int](storage)
	})
}

func TestViewNonPointerFieldPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() {
		ecs.NewView[struct {
			Position Position
		}](storage)
	})
}
