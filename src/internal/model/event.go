package model

// Event is the contract every Kafka payload satisfies; the id becomes the
// message key so per-entity ordering is preserved within a partition.
type Event interface {
	GetId() string
}
