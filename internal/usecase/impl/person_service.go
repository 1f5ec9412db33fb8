// Package impl contains the use case service implementations.
package impl

import (
	"context"
	"log/slog"

	"alerts/internal/domain/entity"
	"alerts/internal/domain/repository"
	"alerts/internal/usecase"
)

type personService struct {
	personRepo repository.PersonRepository
	logger     *slog.Logger
}

// NewPersonService creates a new person service instance. The CRUD
// semantics live in the repository; this layer converts DTOs and logs.
func NewPersonService(personRepo repository.PersonRepository, logger *slog.Logger) usecase.PersonUsecase {
	return &personService{
		personRepo: personRepo,
		logger:     logger,
	}
}

func (s *personService) ListPersons(ctx context.Context) ([]entity.Person, error) {
	return s.personRepo.ListPersons(ctx)
}

func (s *personService) GetPerson(ctx context.Context, firstName, lastName string) (*entity.Person, error) {
	return s.personRepo.FindPersonByName(ctx, firstName, lastName)
}

func (s *personService) AddPerson(ctx context.Context, input *usecase.AddPersonInput) (*entity.Person, error) {
	person := entity.Person{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Address:   input.Address,
		City:      input.City,
		Zip:       input.Zip,
		Phone:     input.Phone,
		Email:     input.Email,
	}

	return s.personRepo.AddPerson(ctx, person)
}

func (s *personService) UpdatePerson(ctx context.Context, firstName, lastName string, input *usecase.UpdatePersonInput) (*entity.Person, error) {
	patch := entity.PersonPatch{
		Address: input.Address,
		City:    input.City,
		Zip:     input.Zip,
		Phone:   input.Phone,
		Email:   input.Email,
	}

	return s.personRepo.UpdatePerson(ctx, firstName, lastName, patch)
}

func (s *personService) DeletePerson(ctx context.Context, firstName, lastName string) error {
	return s.personRepo.DeletePerson(ctx, firstName, lastName)
}
