// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
//
// Operation outcomes that the HTTP boundary collapses into "no content"
// (not found, already exists, already up to date) are kept distinct here as
// sentinel errors so internal code can tell them apart.
package repository

import (
	"context"

	"alerts/internal/domain/entity"
	"alerts/internal/errors"
)

// Domain-specific outcomes for person persistence.
var (
	// ErrPersonNotFound is returned when no person carries the requested identity.
	ErrPersonNotFound = errors.New("person not found")
	// ErrPersonAlreadyExists is returned when a create collides with an existing identity.
	ErrPersonAlreadyExists = errors.New("person already exists")
	// ErrPersonUnchanged is returned when an update leaves every field equal to its current value.
	ErrPersonUnchanged = errors.New("person already up to date")
)

// PersonRepository defines the operations over the person collection.
// All lookups are linear scans over an insertion-ordered list.
type PersonRepository interface {
	// ListPersons returns every person, each merged with their medical
	// record (birthdate, computed age, medications, allergies) when one
	// exists. The merge is recomputed on every call and never persisted.
	ListPersons(ctx context.Context) ([]entity.Person, error)

	// FindPersonByName retrieves a person by exact identity match.
	// Returns ErrPersonNotFound if absent.
	FindPersonByName(ctx context.Context, firstName, lastName string) (*entity.Person, error)

	// AddPerson appends a new person, defaulting blank optional fields to
	// empty strings. Returns ErrPersonAlreadyExists on identity collision.
	AddPerson(ctx context.Context, person entity.Person) (*entity.Person, error)

	// UpdatePerson merges non-nil patch fields into the stored person.
	// Returns ErrPersonNotFound if absent, ErrPersonUnchanged if the merge
	// leaves every field as it was.
	UpdatePerson(ctx context.Context, firstName, lastName string, patch entity.PersonPatch) (*entity.Person, error)

	// DeletePerson removes a person by identity. Deleting an absent person
	// is a no-op, not an error.
	DeletePerson(ctx context.Context, firstName, lastName string) error
}
