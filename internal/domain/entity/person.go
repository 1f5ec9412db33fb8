// Package entity contains the core business objects of the project.
package entity

// Person is a resident known to the emergency-information service.
// Identity is the (FirstName, LastName) pair, matched case-sensitively.
//
// Birthdate, Age, Medications and Allergies are read-side enrichment fields:
// they are populated by joining against the matching MedicalRecord when the
// person list is read, and are never written back to the store. A person
// without a medical record keeps them unset.
type Person struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`

	Birthdate   *Date    `json:"birthdate,omitempty"`
	Age         *int     `json:"age,omitempty"`
	Medications []string `json:"medications,omitempty"`
	Allergies   []string `json:"allergies,omitempty"`
}

// HasName reports whether the person carries the given identity.
func (p Person) HasName(firstName, lastName string) bool {
	return p.FirstName == firstName && p.LastName == lastName
}

// EffectiveAge returns the computed age, or 0 when no medical record was
// attached. With the zero default a resident without a record counts as a
// child in every age partition.
func (p Person) EffectiveAge() int {
	if p.Age != nil {
		return *p.Age
	}

	return 0
}

// PersonPatch carries a partial update for a person. Nil fields keep the
// existing value.
type PersonPatch struct {
	Address *string
	City    *string
	Zip     *string
	Phone   *string
	Email   *string
}
