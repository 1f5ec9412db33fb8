package repository

import (
	"context"

	"alerts/internal/domain/entity"
	"alerts/internal/errors"
)

// Domain-specific outcomes for fire-station mapping persistence.
var (
	// ErrFirestationNotFound is returned when no mapping matches the requested pair.
	ErrFirestationNotFound = errors.New("firestation mapping not found")
	// ErrFirestationAlreadyExists is returned when a create collides with an existing (station, address) pair.
	ErrFirestationAlreadyExists = errors.New("firestation mapping already exists")
	// ErrFirestationUnchanged is returned when the new station number equals the old one.
	ErrFirestationUnchanged = errors.New("firestation mapping already up to date")
)

// FirestationRepository defines the operations over the fire-station mapping
// collection.
type FirestationRepository interface {
	// ListFirestations returns every mapping in insertion order.
	ListFirestations(ctx context.Context) ([]entity.Firestation, error)

	// FindFirestationsByAddress returns one mapping per distinct station
	// number covering the address, first occurrence winning when raw
	// duplicates exist.
	FindFirestationsByAddress(ctx context.Context, address string) ([]entity.Firestation, error)

	// FindFirestationsByNumberAndAddress returns every exact match of the
	// pair. Normally 0 or 1 entries, but duplicates are tolerated.
	FindFirestationsByNumberAndAddress(ctx context.Context, station int64, address string) ([]entity.Firestation, error)

	// AddFirestation appends a new mapping. Returns
	// ErrFirestationAlreadyExists on an exact (station, address) duplicate.
	AddFirestation(ctx context.Context, firestation entity.Firestation) (*entity.Firestation, error)

	// UpdateFirestationNumber reassigns every mapping matching
	// (station, address) to newStation, as one logical group. Returns
	// ErrFirestationUnchanged when newStation equals station (checked
	// before existence) and ErrFirestationNotFound when nothing matches.
	UpdateFirestationNumber(ctx context.Context, station int64, address string, newStation int64) ([]entity.Firestation, error)

	// DeleteFirestation removes every mapping matching the pair.
	// Deleting an absent mapping is a no-op.
	DeleteFirestation(ctx context.Context, station int64, address string) error
}
