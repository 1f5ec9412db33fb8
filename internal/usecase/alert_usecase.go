package usecase

import (
	"context"

	"alerts/internal/domain/entity"
)

// FirestationScope lists the persons covered by one fire station, split
// into adult and child counts. Adult means age strictly greater than 18.
type FirestationScope struct {
	Persons       []entity.Person
	AdultQuantity int
	ChildQuantity int
}

// Empty reports whether the scope found nobody; the boundary turns an
// empty scope into a no-content response.
func (s FirestationScope) Empty() bool {
	return s.AdultQuantity == 0 && s.ChildQuantity == 0
}

// Child is one resident aged 18 or less at an address, together with the
// other members of the household.
type Child struct {
	FirstName        string
	LastName         string
	Age              int
	HouseholdMembers []entity.Person
}

// Household is the set of persons sharing one address, with the distinct
// station numbers covering it.
type Household struct {
	Stations []int64
	Members  []entity.Person
}

// Empty reports whether neither stations nor members were found.
func (h Household) Empty() bool {
	return len(h.Stations) == 0 && len(h.Members) == 0
}

// AlertUsecase defines the read-only cross-entity aggregation use cases.
// None of them mutate the store.
type AlertUsecase interface {
	// CoverageByStation collects every person whose address is covered by
	// the station. Duplicate same-station mappings to one address produce
	// duplicate persons; deduplication only happens downstream (phone
	// numbers).
	CoverageByStation(ctx context.Context, station int64) (*FirestationScope, error)

	// ChildrenAtAddress returns every resident aged 18 or less at the
	// address, each with the other household members.
	ChildrenAtAddress(ctx context.Context, address string) ([]Child, error)

	// PhoneNumbersByStation returns the distinct phone numbers of the
	// persons covered by the station, first-seen order.
	PhoneNumbersByStation(ctx context.Context, station int64) ([]string, error)

	// HouseholdAtAddress returns the residents at the address and the
	// distinct stations covering it.
	HouseholdAtAddress(ctx context.Context, address string) (*Household, error)

	// AddressesByStation returns the mapping addresses of the station in
	// insertion order, without deduplication.
	AddressesByStation(ctx context.Context, station int64) ([]string, error)

	// HouseholdsByStations groups households by station for each station
	// in input order. An address already emitted for an earlier station in
	// the same call is skipped (first station wins); stations contributing
	// no addresses are omitted.
	HouseholdsByStations(ctx context.Context, stations []int64) (map[int64]map[string]Household, error)

	// PersonsByName returns every person with the exact name. Homonyms are
	// all returned; no identity assumption applies here.
	PersonsByName(ctx context.Context, firstName, lastName string) ([]entity.Person, error)

	// EmailsByCity returns the distinct emails of the city's residents,
	// first-seen order.
	EmailsByCity(ctx context.Context, city string) ([]string, error)
}
