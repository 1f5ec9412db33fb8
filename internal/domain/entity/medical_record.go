package entity

import "slices"

// MedicalRecord holds the medical data for one resident. Identity is the
// (FirstName, LastName) pair, the same rule as Person.
type MedicalRecord struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Birthdate   Date     `json:"birthdate"`
	Medications []string `json:"medications"` // "name:dose" entries, order preserved
	Allergies   []string `json:"allergies"`   // order preserved
}

// HasName reports whether the record carries the given identity.
func (m MedicalRecord) HasName(firstName, lastName string) bool {
	return m.FirstName == firstName && m.LastName == lastName
}

// MedicalRecordPatch carries a partial update for a medical record.
// Nil fields keep the existing value; an empty non-nil slice replaces.
type MedicalRecordPatch struct {
	Birthdate   *Date
	Medications []string
	Allergies   []string
}

// Equal reports whether two records hold the same values, field by field.
func (m MedicalRecord) Equal(other MedicalRecord) bool {
	return m.FirstName == other.FirstName &&
		m.LastName == other.LastName &&
		m.Birthdate.Equal(other.Birthdate) &&
		slices.Equal(m.Medications, other.Medications) &&
		slices.Equal(m.Allergies, other.Allergies)
}
