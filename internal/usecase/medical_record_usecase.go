package usecase

import (
	"context"

	"alerts/internal/domain/entity"
)

// AddMedicalRecordInput represents the request body for creating a medical
// record. An absent birthdate defaults to the current date, absent lists to
// empty lists.
type AddMedicalRecordInput struct {
	FirstName   string       `json:"firstName" validate:"required"`
	LastName    string       `json:"lastName" validate:"required"`
	Birthdate   *entity.Date `json:"birthdate"`
	Medications []string     `json:"medications"`
	Allergies   []string     `json:"allergies"`
}

// UpdateMedicalRecordInput represents the request body for updating a
// medical record. Nil fields keep the current value.
type UpdateMedicalRecordInput struct {
	Birthdate   *entity.Date `json:"birthdate"`
	Medications []string     `json:"medications"`
	Allergies   []string     `json:"allergies"`
}

// MedicalRecordUsecase defines the medical record CRUD use cases.
type MedicalRecordUsecase interface {
	ListMedicalRecords(ctx context.Context) ([]entity.MedicalRecord, error)
	GetMedicalRecord(ctx context.Context, firstName, lastName string) (*entity.MedicalRecord, error)
	AddMedicalRecord(ctx context.Context, input *AddMedicalRecordInput) (*entity.MedicalRecord, error)
	UpdateMedicalRecord(ctx context.Context, firstName, lastName string, input *UpdateMedicalRecordInput) (*entity.MedicalRecord, error)
	DeleteMedicalRecord(ctx context.Context, firstName, lastName string) error
}
