package ecs

// EntityId identifies a live entity. Ids are allocated sequentially by the
// Storage and never reused. 0 is reserved as the invalid id.
type EntityId uint64

// InvalidEntity is the zero EntityId, never assigned to a spawned entity.
const InvalidEntity EntityId = 0
