// Package view defines the named field-subset projections returned by the
// aggregation endpoints. Each view is a fixed contract, not a type
// hierarchy: a plain struct plus a constructor from the domain entities.
package view

import (
	"alerts/internal/domain/entity"
	"alerts/internal/usecase"
)

// CoveragePerson is the coverage view of a person: first name, last name,
// address and phone.
type CoveragePerson struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// FirestationScope is the /firestation response shape.
type FirestationScope struct {
	Persons       []CoveragePerson `json:"personsCoveredByFirestation"`
	AdultQuantity int              `json:"adultQuantity"`
	ChildQuantity int              `json:"childQuantity"`
}

// FromFirestationScope projects a coverage scope into its view.
func FromFirestationScope(scope *usecase.FirestationScope) FirestationScope {
	persons := make([]CoveragePerson, 0, len(scope.Persons))
	for _, person := range scope.Persons {
		persons = append(persons, CoveragePerson{
			FirstName: person.FirstName,
			LastName:  person.LastName,
			Address:   person.Address,
			Phone:     person.Phone,
		})
	}

	return FirestationScope{
		Persons:       persons,
		AdultQuantity: scope.AdultQuantity,
		ChildQuantity: scope.ChildQuantity,
	}
}

// ChildHouseholdMember is the member shape nested in a child record:
// name and age only.
type ChildHouseholdMember struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       *int   `json:"age,omitempty"`
}

// Child is the /childAlert response element.
type Child struct {
	FirstName        string                 `json:"firstName"`
	LastName         string                 `json:"lastName"`
	Age              int                    `json:"age"`
	HouseholdMembers []ChildHouseholdMember `json:"householdMembers"`
}

// FromChildren projects child records into their view.
func FromChildren(children []usecase.Child) []Child {
	views := make([]Child, 0, len(children))
	for _, child := range children {
		members := make([]ChildHouseholdMember, 0, len(child.HouseholdMembers))
		for _, member := range child.HouseholdMembers {
			members = append(members, ChildHouseholdMember{
				FirstName: member.FirstName,
				LastName:  member.LastName,
				Age:       member.Age,
			})
		}
		views = append(views, Child{
			FirstName:        child.FirstName,
			LastName:         child.LastName,
			Age:              child.Age,
			HouseholdMembers: members,
		})
	}

	return views
}

// HouseholdMember is the household view of a person: name, phone, age,
// medications and allergies.
type HouseholdMember struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Phone       string   `json:"phone"`
	Age         *int     `json:"age,omitempty"`
	Medications []string `json:"medications,omitempty"`
	Allergies   []string `json:"allergies,omitempty"`
}

func householdMembers(persons []entity.Person) []HouseholdMember {
	members := make([]HouseholdMember, 0, len(persons))
	for _, person := range persons {
		members = append(members, HouseholdMember{
			FirstName:   person.FirstName,
			LastName:    person.LastName,
			Phone:       person.Phone,
			Age:         person.Age,
			Medications: person.Medications,
			Allergies:   person.Allergies,
		})
	}

	return members
}

// FireHousehold is the /fire response shape: household members plus the
// station numbers covering the address.
type FireHousehold struct {
	Stations []int64           `json:"firestationsNumber"`
	Members  []HouseholdMember `json:"householdMembers"`
}

// FromFireHousehold projects a household into the fire view.
func FromFireHousehold(household *usecase.Household) FireHousehold {
	return FireHousehold{
		Stations: household.Stations,
		Members:  householdMembers(household.Members),
	}
}

// FloodHousehold is the per-address shape of the /flood/stations response;
// station numbers are hidden in this view.
type FloodHousehold struct {
	Members []HouseholdMember `json:"householdMembers"`
}

// FromFloodHouseholds projects the grouped households into the flood view.
func FromFloodHouseholds(grouped map[int64]map[string]usecase.Household) map[int64]map[string]FloodHousehold {
	views := make(map[int64]map[string]FloodHousehold, len(grouped))
	for station, byAddress := range grouped {
		addressViews := make(map[string]FloodHousehold, len(byAddress))
		for address, household := range byAddress {
			addressViews[address] = FloodHousehold{
				Members: householdMembers(household.Members),
			}
		}
		views[station] = addressViews
	}

	return views
}

// PersonInfo is the /personInfo response element: name, address, email,
// age, medications and allergies.
type PersonInfo struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Address     string   `json:"address"`
	Email       string   `json:"email"`
	Age         *int     `json:"age,omitempty"`
	Medications []string `json:"medications,omitempty"`
	Allergies   []string `json:"allergies,omitempty"`
}

// FromPersonInfos projects persons into the person-info view.
func FromPersonInfos(persons []entity.Person) []PersonInfo {
	views := make([]PersonInfo, 0, len(persons))
	for _, person := range persons {
		views = append(views, PersonInfo{
			FirstName:   person.FirstName,
			LastName:    person.LastName,
			Address:     person.Address,
			Email:       person.Email,
			Age:         person.Age,
			Medications: person.Medications,
			Allergies:   person.Allergies,
		})
	}

	return views
}
