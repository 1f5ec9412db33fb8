// Package usecase defines the application use case interfaces and their
// input/output DTOs.
package usecase

import (
	"context"

	"alerts/internal/domain/entity"
)

// AddPersonInput represents the request body for creating a person.
// Identity fields are required; every other field defaults to an empty
// string when absent.
type AddPersonInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// UpdatePersonInput represents the request body for updating a person.
// Nil fields keep the current value.
type UpdatePersonInput struct {
	Address *string `json:"address"`
	City    *string `json:"city"`
	Zip     *string `json:"zip"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

// PersonUsecase defines the person CRUD use cases.
type PersonUsecase interface {
	ListPersons(ctx context.Context) ([]entity.Person, error)
	GetPerson(ctx context.Context, firstName, lastName string) (*entity.Person, error)
	AddPerson(ctx context.Context, input *AddPersonInput) (*entity.Person, error)
	UpdatePerson(ctx context.Context, firstName, lastName string, input *UpdatePersonInput) (*entity.Person, error)
	DeletePerson(ctx context.Context, firstName, lastName string) error
}
