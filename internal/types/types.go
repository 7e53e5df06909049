// internal/types/types.go
package types

// EntityID identifies a live entity. Zero is never allocated and means "none".
type EntityID uint64

const NoEntity EntityID = 0
