package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"alerts/internal/domain/entity"
	"alerts/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// birthdateWithAge returns a birthdate whose floored age is exactly the
// given number of years, whenever the test runs.
func birthdateWithAge(years int) entity.Date {
	return entity.DateOf(time.Now().AddDate(-years, 0, -1))
}

// newAlertFixture seeds the station 3 scenario: a three-person household
// at 1509 Culver St covered twice by station 3, a two-person household at
// 892 Downing Ct covered by stations 2 and 3, one address on station 1,
// and a John Boyd homonym in another city at an unmapped address.
func newAlertFixture(t *testing.T) *alertService {
	t.Helper()

	store := memory.NewFromData(&memory.Data{
		Persons: []entity.Person{
			{FirstName: "John", LastName: "Boyd", Address: "1509 Culver St", City: "Culver", Zip: "97451", Phone: "841-874-6512", Email: "jaboyd@email.com"},
			{FirstName: "Tenley", LastName: "Boyd", Address: "1509 Culver St", City: "Culver", Zip: "97451", Phone: "841-874-6512", Email: "tenz@email.com"},
			{FirstName: "Roger", LastName: "Boyd", Address: "1509 Culver St", City: "Culver", Zip: "97451", Phone: "841-874-6513", Email: "jaboyd@email.com"},
			{FirstName: "Peter", LastName: "Duncan", Address: "644 Gershwin Cir", City: "Culver", Zip: "97451", Phone: "841-874-6874", Email: "jaboyd@email.com"},
			{FirstName: "Sophia", LastName: "Zemicks", Address: "892 Downing Ct", City: "Culver", Zip: "97451", Phone: "841-874-7878", Email: "soph@email.com"},
			{FirstName: "Warren", LastName: "Zemicks", Address: "892 Downing Ct", City: "Culver", Zip: "97451", Phone: "841-874-7512", Email: "ward@email.com"},
			{FirstName: "John", LastName: "Boyd", Address: "951 LoneTree Rd", City: "Oakdale", Zip: "97452", Phone: "841-874-7458", Email: "gramps@email.com"},
		},
		Firestations: []entity.Firestation{
			{Station: 3, Address: "1509 Culver St"},
			{Station: 3, Address: "1509 Culver St"},
			{Station: 1, Address: "644 Gershwin Cir"},
			{Station: 2, Address: "892 Downing Ct"},
			{Station: 3, Address: "892 Downing Ct"},
		},
		MedicalRecords: []entity.MedicalRecord{
			{FirstName: "John", LastName: "Boyd", Birthdate: birthdateWithAge(39), Medications: []string{"aznol:350mg"}, Allergies: []string{"nillacilan"}},
			{FirstName: "Tenley", LastName: "Boyd", Birthdate: birthdateWithAge(11), Medications: []string{}, Allergies: []string{"peanut"}},
			{FirstName: "Peter", LastName: "Duncan", Birthdate: birthdateWithAge(24), Medications: []string{}, Allergies: []string{"shellfish"}},
			{FirstName: "Sophia", LastName: "Zemicks", Birthdate: birthdateWithAge(36), Medications: []string{"pharmacol:5000mg"}, Allergies: []string{"peanut"}},
			{FirstName: "Warren", LastName: "Zemicks", Birthdate: birthdateWithAge(39), Medications: []string{}, Allergies: []string{}},
		},
	})

	logger := slog.New(slog.DiscardHandler)

	return &alertService{
		personRepo:      memory.NewPersonRepository(store, logger),
		firestationRepo: memory.NewFirestationRepository(store, logger),
		logger:          logger,
	}
}

func TestAlertService_CoverageByStation(t *testing.T) {
	service := newAlertFixture(t)

	scope, err := service.CoverageByStation(context.Background(), 3)
	require.NoError(t, err)

	// The duplicate station 3 mapping to 1509 Culver St doubles the
	// household; counts stay consistent with the person list.
	assert.Len(t, scope.Persons, 8)
	assert.Equal(t, 4, scope.AdultQuantity)
	assert.Equal(t, 4, scope.ChildQuantity)
	assert.Equal(t, len(scope.Persons), scope.AdultQuantity+scope.ChildQuantity)
	assert.False(t, scope.Empty())
}

func TestAlertService_CoverageByStation_TreatsMissingRecordAsChild(t *testing.T) {
	service := newAlertFixture(t)

	scope, err := service.CoverageByStation(context.Background(), 3)
	require.NoError(t, err)

	// Roger has no medical record and counts as a child on both passes.
	children := 0
	for _, person := range scope.Persons {
		if person.FirstName == "Roger" {
			children++
			assert.Nil(t, person.Age)
		}
	}
	assert.Equal(t, 2, children)
}

func TestAlertService_CoverageByStation_UnknownStation(t *testing.T) {
	service := newAlertFixture(t)

	scope, err := service.CoverageByStation(context.Background(), 9)
	require.NoError(t, err)
	assert.True(t, scope.Empty())
}

func TestAlertService_ChildrenAtAddress(t *testing.T) {
	service := newAlertFixture(t)

	children, err := service.ChildrenAtAddress(context.Background(), "1509 Culver St")
	require.NoError(t, err)
	require.Len(t, children, 2)

	tenley := children[0]
	assert.Equal(t, "Tenley", tenley.FirstName)
	assert.Equal(t, 11, tenley.Age)
	require.Len(t, tenley.HouseholdMembers, 2)
	for _, member := range tenley.HouseholdMembers {
		assert.NotEqual(t, "Tenley", member.FirstName)
	}

	// No medical record means age 0, which counts as a child.
	roger := children[1]
	assert.Equal(t, "Roger", roger.FirstName)
	assert.Equal(t, 0, roger.Age)
}

func TestAlertService_ChildrenAtAddress_NoChildren(t *testing.T) {
	service := newAlertFixture(t)

	children, err := service.ChildrenAtAddress(context.Background(), "892 Downing Ct")
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestAlertService_PhoneNumbersByStation_Deduplicates(t *testing.T) {
	service := newAlertFixture(t)

	phones, err := service.PhoneNumbersByStation(context.Background(), 3)
	require.NoError(t, err)

	// Eight covered persons collapse to four distinct numbers, first-seen
	// order.
	assert.Equal(t, []string{"841-874-6512", "841-874-6513", "841-874-7878", "841-874-7512"}, phones)
}

func TestAlertService_HouseholdAtAddress(t *testing.T) {
	service := newAlertFixture(t)

	household, err := service.HouseholdAtAddress(context.Background(), "892 Downing Ct")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, household.Stations)
	require.Len(t, household.Members, 2)
	require.NotNil(t, household.Members[0].Age)
	assert.Equal(t, 36, *household.Members[0].Age)
}

func TestAlertService_HouseholdAtAddress_UnknownAddress(t *testing.T) {
	service := newAlertFixture(t)

	household, err := service.HouseholdAtAddress(context.Background(), "1 Nowhere Ln")
	require.NoError(t, err)
	assert.True(t, household.Empty())
}

func TestAlertService_HouseholdsByStations_FirstStationClaimsSharedAddress(t *testing.T) {
	service := newAlertFixture(t)

	grouped, err := service.HouseholdsByStations(context.Background(), []int64{3, 2})
	require.NoError(t, err)
	require.Contains(t, grouped, int64(3))
	require.Contains(t, grouped, int64(2))

	// Station 3 claims both its addresses, the duplicate mapping collapsing
	// into one household.
	require.Len(t, grouped[3], 2)
	assert.Len(t, grouped[3]["1509 Culver St"].Members, 3)
	assert.Len(t, grouped[3]["892 Downing Ct"].Members, 2)

	// Station 2 only maps the address already claimed by station 3.
	assert.Empty(t, grouped[2])
}

func TestAlertService_HouseholdsByStations_OmitsUnknownStations(t *testing.T) {
	service := newAlertFixture(t)

	grouped, err := service.HouseholdsByStations(context.Background(), []int64{9})
	require.NoError(t, err)
	assert.Empty(t, grouped)
}

func TestAlertService_PersonsByName_ReturnsHomonyms(t *testing.T) {
	service := newAlertFixture(t)

	persons, err := service.PersonsByName(context.Background(), "John", "Boyd")
	require.NoError(t, err)
	require.Len(t, persons, 2)
	assert.Equal(t, "1509 Culver St", persons[0].Address)
	assert.Equal(t, "951 LoneTree Rd", persons[1].Address)

	// Both carry the shared medical enrichment.
	for _, person := range persons {
		require.NotNil(t, person.Age)
		assert.Equal(t, 39, *person.Age)
		assert.Equal(t, []string{"aznol:350mg"}, person.Medications)
	}
}

func TestAlertService_EmailsByCity_Deduplicates(t *testing.T) {
	service := newAlertFixture(t)

	emails, err := service.EmailsByCity(context.Background(), "Culver")
	require.NoError(t, err)
	assert.Equal(t, []string{"jaboyd@email.com", "tenz@email.com", "soph@email.com", "ward@email.com"}, emails)

	emails, err = service.EmailsByCity(context.Background(), "Nowhere")
	require.NoError(t, err)
	assert.Empty(t, emails)
}
