package shared

import "time"

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
	AddDomainEvent(event DomainEvent)
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot provides common fields for aggregate roots.
// Version is the optimistic concurrency token: it is bumped on every
// mutation, while persistedVersion remembers the value last read from
// or written to the store. Repositories guard their writes on the
// persisted value, so any number of setter calls between a load and a
// save count as one unit of work.
type BaseAggregateRoot struct {
	BaseEntity
	Version          int           `gorm:"not null;default:1"`
	persistedVersion int           `gorm:"-"`
	domainEvents     []DomainEvent `gorm:"-"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// PersistedVersion returns the concurrency token the store held when
// the aggregate was last loaded or saved.
func (a *BaseAggregateRoot) PersistedVersion() int {
	return a.persistedVersion
}

// SyncPersistedVersion records the current version as the stored one.
// Repositories call it after hydrating an aggregate and after every
// successful write.
func (a *BaseAggregateRoot) SyncPersistedVersion() {
	a.persistedVersion = a.Version
}

// Touch bumps the update timestamp and the concurrency token together
func (a *BaseAggregateRoot) Touch() {
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}

// AddDomainEvent adds a domain event to be published
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns all pending domain events
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents clears the pending domain events
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity:       NewBaseEntity(),
		Version:          1,
		persistedVersion: 1,
		domainEvents:     make([]DomainEvent, 0),
	}
}
