package impl

import (
	"context"
	"log/slog"
	"slices"

	"alerts/internal/domain/entity"
	"alerts/internal/domain/repository"
	"alerts/internal/usecase"
)

type alertService struct {
	personRepo      repository.PersonRepository
	firestationRepo repository.FirestationRepository
	logger          *slog.Logger
}

// NewAlertService creates the cross-entity aggregation service. Every
// operation composes repository reads; the store is never mutated and no
// repository lock is held across entity kinds.
func NewAlertService(
	personRepo repository.PersonRepository,
	firestationRepo repository.FirestationRepository,
	logger *slog.Logger,
) usecase.AlertUsecase {
	return &alertService{
		personRepo:      personRepo,
		firestationRepo: firestationRepo,
		logger:          logger,
	}
}

func (s *alertService) CoverageByStation(ctx context.Context, station int64) (*usecase.FirestationScope, error) {
	firestations, err := s.firestationRepo.ListFirestations(ctx)
	if err != nil {
		return nil, err
	}
	persons, err := s.personRepo.ListPersons(ctx)
	if err != nil {
		return nil, err
	}

	scope := &usecase.FirestationScope{Persons: make([]entity.Person, 0)}
	for _, firestation := range firestations {
		if firestation.Station != station {
			continue
		}
		for _, person := range persons {
			if person.Address != firestation.Address {
				continue
			}
			scope.Persons = append(scope.Persons, person)

			if person.EffectiveAge() > 18 {
				scope.AdultQuantity++
			} else {
				scope.ChildQuantity++
			}
		}
	}

	s.logger.Debug("Computed firestation coverage",
		slog.Int64("station", station),
		slog.Int("adults", scope.AdultQuantity),
		slog.Int("children", scope.ChildQuantity),
	)

	return scope, nil
}

func (s *alertService) ChildrenAtAddress(ctx context.Context, address string) ([]usecase.Child, error) {
	persons, err := s.personRepo.ListPersons(ctx)
	if err != nil {
		return nil, err
	}

	children := make([]usecase.Child, 0)
	for _, person := range persons {
		if person.Address != address || person.EffectiveAge() > 18 {
			continue
		}

		child := usecase.Child{
			FirstName:        person.FirstName,
			LastName:         person.LastName,
			Age:              person.EffectiveAge(),
			HouseholdMembers: make([]entity.Person, 0),
		}

		// Self-exclusion matches on first name only. Two children sharing
		// a first name at the same address exclude each other; kept until
		// product clarifies the intent.
		for _, member := range persons {
			if member.Address == address && member.FirstName != child.FirstName {
				child.HouseholdMembers = append(child.HouseholdMembers, member)
			}
		}

		children = append(children, child)
	}

	return children, nil
}

func (s *alertService) PhoneNumbersByStation(ctx context.Context, station int64) ([]string, error) {
	scope, err := s.CoverageByStation(ctx, station)
	if err != nil {
		return nil, err
	}

	phoneNumbers := make([]string, 0)
	for _, person := range scope.Persons {
		if !slices.Contains(phoneNumbers, person.Phone) {
			phoneNumbers = append(phoneNumbers, person.Phone)
		}
	}

	return phoneNumbers, nil
}

func (s *alertService) HouseholdAtAddress(ctx context.Context, address string) (*usecase.Household, error) {
	firestations, err := s.firestationRepo.FindFirestationsByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	persons, err := s.personRepo.ListPersons(ctx)
	if err != nil {
		return nil, err
	}

	household := &usecase.Household{
		Stations: make([]int64, 0, len(firestations)),
		Members:  make([]entity.Person, 0),
	}
	for _, firestation := range firestations {
		household.Stations = append(household.Stations, firestation.Station)
	}
	for _, person := range persons {
		if person.Address == address {
			household.Members = append(household.Members, person)
		}
	}

	return household, nil
}

func (s *alertService) AddressesByStation(ctx context.Context, station int64) ([]string, error) {
	firestations, err := s.firestationRepo.ListFirestations(ctx)
	if err != nil {
		return nil, err
	}

	addresses := make([]string, 0)
	for _, firestation := range firestations {
		if firestation.Station == station {
			addresses = append(addresses, firestation.Address)
		}
	}

	return addresses, nil
}

func (s *alertService) HouseholdsByStations(ctx context.Context, stations []int64) (map[int64]map[string]usecase.Household, error) {
	seenAddresses := make([]string, 0)
	householdsByStation := make(map[int64]map[string]usecase.Household)

	for _, station := range stations {
		addresses, err := s.AddressesByStation(ctx, station)
		if err != nil {
			return nil, err
		}
		if len(addresses) == 0 {
			continue
		}

		householdsByAddress := make(map[string]usecase.Household)
		for _, address := range addresses {
			if slices.Contains(seenAddresses, address) {
				continue
			}
			seenAddresses = append(seenAddresses, address)

			household, err := s.HouseholdAtAddress(ctx, address)
			if err != nil {
				return nil, err
			}
			householdsByAddress[address] = *household
		}
		householdsByStation[station] = householdsByAddress
	}

	return householdsByStation, nil
}

func (s *alertService) PersonsByName(ctx context.Context, firstName, lastName string) ([]entity.Person, error) {
	persons, err := s.personRepo.ListPersons(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]entity.Person, 0)
	for _, person := range persons {
		if person.HasName(firstName, lastName) {
			matches = append(matches, person)
		}
	}

	return matches, nil
}

func (s *alertService) EmailsByCity(ctx context.Context, city string) ([]string, error) {
	persons, err := s.personRepo.ListPersons(ctx)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0)
	for _, person := range persons {
		if person.City == city && !slices.Contains(emails, person.Email) {
			emails = append(emails, person.Email)
		}
	}

	return emails, nil
}
