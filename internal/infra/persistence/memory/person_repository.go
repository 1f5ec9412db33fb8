package memory

import (
	"context"
	"log/slog"
	"slices"

	"alerts/internal/domain/entity"
	"alerts/internal/domain/repository"
)

type personRepository struct {
	store  *Store
	logger *slog.Logger
}

// NewPersonRepository creates a person repository over the shared store.
func NewPersonRepository(store *Store, logger *slog.Logger) repository.PersonRepository {
	return &personRepository{
		store:  store,
		logger: logger,
	}
}

// ListPersons returns enriched copies of every person. The medical join is
// computed on the copies; the stored entities stay untouched.
func (r *personRepository) ListPersons(ctx context.Context) ([]entity.Person, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	now := r.store.now()
	persons := make([]entity.Person, len(r.store.persons))
	for i, person := range r.store.persons {
		for _, record := range r.store.medicalRecords {
			if record.HasName(person.FirstName, person.LastName) {
				birthdate := record.Birthdate
				age := birthdate.Age(now)

				person.Birthdate = &birthdate
				person.Age = &age
				person.Medications = slices.Clone(record.Medications)
				person.Allergies = slices.Clone(record.Allergies)
			}
		}
		persons[i] = person
	}

	return persons, nil
}

func (r *personRepository) FindPersonByName(ctx context.Context, firstName, lastName string) (*entity.Person, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, person := range r.store.persons {
		if person.HasName(firstName, lastName) {
			return &person, nil
		}
	}

	return nil, repository.ErrPersonNotFound
}

func (r *personRepository) AddPerson(ctx context.Context, person entity.Person) (*entity.Person, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.persons {
		if existing.HasName(person.FirstName, person.LastName) {
			r.logger.Warn("Person already exists",
				slog.String("firstName", person.FirstName),
				slog.String("lastName", person.LastName),
			)

			return nil, repository.ErrPersonAlreadyExists
		}
	}

	// Optional fields default to empty strings, never absent.
	person.Birthdate = nil
	person.Age = nil
	person.Medications = nil
	person.Allergies = nil

	r.store.persons = append(r.store.persons, person)

	return &person, nil
}

func (r *personRepository) UpdatePerson(ctx context.Context, firstName, lastName string, patch entity.PersonPatch) (*entity.Person, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	idx := -1
	for i, person := range r.store.persons {
		if person.HasName(firstName, lastName) {
			idx = i

			break
		}
	}
	if idx < 0 {
		r.logger.Warn("Person to update does not exist",
			slog.String("firstName", firstName),
			slog.String("lastName", lastName),
		)

		return nil, repository.ErrPersonNotFound
	}

	current := r.store.persons[idx]
	merged := current
	if patch.Address != nil {
		merged.Address = *patch.Address
	}
	if patch.City != nil {
		merged.City = *patch.City
	}
	if patch.Zip != nil {
		merged.Zip = *patch.Zip
	}
	if patch.Phone != nil {
		merged.Phone = *patch.Phone
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}

	unchanged := merged.Address == current.Address &&
		merged.City == current.City &&
		merged.Zip == current.Zip &&
		merged.Phone == current.Phone &&
		merged.Email == current.Email
	if unchanged {
		r.logger.Warn("Person seems to be already updated",
			slog.String("firstName", firstName),
			slog.String("lastName", lastName),
		)

		return nil, repository.ErrPersonUnchanged
	}

	r.store.persons[idx] = merged

	return &merged, nil
}

func (r *personRepository) DeletePerson(ctx context.Context, firstName, lastName string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, person := range r.store.persons {
		if person.HasName(firstName, lastName) {
			r.store.persons = slices.Delete(r.store.persons, i, i+1)

			return nil
		}
	}

	r.logger.Warn("Person to delete does not exist",
		slog.String("firstName", firstName),
		slog.String("lastName", lastName),
	)

	return nil
}
