package repository

import (
	"context"

	"alerts/internal/domain/entity"
	"alerts/internal/errors"
)

// Domain-specific outcomes for medical record persistence.
var (
	// ErrMedicalRecordNotFound is returned when no record carries the requested identity.
	ErrMedicalRecordNotFound = errors.New("medical record not found")
	// ErrMedicalRecordAlreadyExists is returned when a create collides with an existing identity.
	ErrMedicalRecordAlreadyExists = errors.New("medical record already exists")
	// ErrMedicalRecordUnchanged is returned when an update leaves every field equal to its current value.
	ErrMedicalRecordUnchanged = errors.New("medical record already up to date")
)

// MedicalRecordRepository defines the operations over the medical record
// collection.
type MedicalRecordRepository interface {
	// ListMedicalRecords returns every record in insertion order.
	ListMedicalRecords(ctx context.Context) ([]entity.MedicalRecord, error)

	// FindMedicalRecordByName retrieves a record by exact identity match.
	// Returns ErrMedicalRecordNotFound if absent.
	FindMedicalRecordByName(ctx context.Context, firstName, lastName string) (*entity.MedicalRecord, error)

	// AddMedicalRecord appends a new record, defaulting an absent birthdate
	// to the current date and absent lists to empty lists. Returns
	// ErrMedicalRecordAlreadyExists on identity collision.
	AddMedicalRecord(ctx context.Context, record entity.MedicalRecord) (*entity.MedicalRecord, error)

	// UpdateMedicalRecord merges non-nil patch fields into the stored
	// record. Returns ErrMedicalRecordNotFound if absent,
	// ErrMedicalRecordUnchanged if the merge leaves every field as it was.
	UpdateMedicalRecord(ctx context.Context, firstName, lastName string, patch entity.MedicalRecordPatch) (*entity.MedicalRecord, error)

	// DeleteMedicalRecord removes a record by identity. Deleting an absent
	// record is a no-op, not an error.
	DeleteMedicalRecord(ctx context.Context, firstName, lastName string) error
}
