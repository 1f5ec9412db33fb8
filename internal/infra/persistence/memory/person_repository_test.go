package memory

import (
	"context"
	"testing"

	"alerts/internal/domain/entity"
	"alerts/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonRepository_ListPersons_EnrichesWithoutPersisting(t *testing.T) {
	store := newTestStore()
	repo := NewPersonRepository(store, testLogger())

	persons, err := repo.ListPersons(context.Background())
	require.NoError(t, err)
	require.Len(t, persons, 4)

	john := persons[0]
	require.NotNil(t, john.Birthdate)
	require.NotNil(t, john.Age)
	assert.Equal(t, 40, *john.Age)
	assert.Equal(t, []string{"aznol:350mg"}, john.Medications)
	assert.Equal(t, []string{"nillacilan"}, john.Allergies)

	// Peter has no medical record and stays bare.
	peter := persons[2]
	assert.Nil(t, peter.Birthdate)
	assert.Nil(t, peter.Age)
	assert.Nil(t, peter.Medications)

	// The join is computed on copies only.
	assert.Nil(t, store.persons[0].Birthdate)
	assert.Nil(t, store.persons[0].Age)
}

func TestPersonRepository_FindPersonByName(t *testing.T) {
	repo := NewPersonRepository(newTestStore(), testLogger())

	person, err := repo.FindPersonByName(context.Background(), "John", "Boyd")
	require.NoError(t, err)
	assert.Equal(t, "1509 Culver St", person.Address)

	_, err = repo.FindPersonByName(context.Background(), "Nobody", "Here")
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)
}

func TestPersonRepository_AddPerson(t *testing.T) {
	store := newTestStore()
	repo := NewPersonRepository(store, testLogger())

	added, err := repo.AddPerson(context.Background(), entity.Person{
		FirstName: "Eric",
		LastName:  "Cadigan",
		Address:   "951 LoneTree Rd",
		City:      "Culver",
		Zip:       "97451",
		Phone:     "841-874-7458",
		Email:     "gramps@email.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Eric", added.FirstName)
	assert.Len(t, store.persons, 5)
}

func TestPersonRepository_AddPerson_DuplicateIdentity(t *testing.T) {
	store := newTestStore()
	repo := NewPersonRepository(store, testLogger())

	_, err := repo.AddPerson(context.Background(), entity.Person{FirstName: "John", LastName: "Boyd"})
	assert.ErrorIs(t, err, repository.ErrPersonAlreadyExists)
	assert.Len(t, store.persons, 4)
}

func TestPersonRepository_UpdatePerson_MergesAndKeepsOmitted(t *testing.T) {
	repo := NewPersonRepository(newTestStore(), testLogger())

	city := "Oakdale"
	updated, err := repo.UpdatePerson(context.Background(), "John", "Boyd", entity.PersonPatch{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Oakdale", updated.City)
	assert.Equal(t, "1509 Culver St", updated.Address)
	assert.Equal(t, "jaboyd@email.com", updated.Email)
}

func TestPersonRepository_UpdatePerson_NoEffectiveChange(t *testing.T) {
	repo := NewPersonRepository(newTestStore(), testLogger())

	city := "Oakdale"
	_, err := repo.UpdatePerson(context.Background(), "John", "Boyd", entity.PersonPatch{City: &city})
	require.NoError(t, err)

	// The same patch applied twice changes nothing the second time.
	_, err = repo.UpdatePerson(context.Background(), "John", "Boyd", entity.PersonPatch{City: &city})
	assert.ErrorIs(t, err, repository.ErrPersonUnchanged)

	_, err = repo.UpdatePerson(context.Background(), "John", "Boyd", entity.PersonPatch{})
	assert.ErrorIs(t, err, repository.ErrPersonUnchanged)
}

func TestPersonRepository_UpdatePerson_NotFound(t *testing.T) {
	repo := NewPersonRepository(newTestStore(), testLogger())

	city := "Oakdale"
	_, err := repo.UpdatePerson(context.Background(), "Nobody", "Here", entity.PersonPatch{City: &city})
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)
}

func TestPersonRepository_DeletePerson(t *testing.T) {
	store := newTestStore()
	repo := NewPersonRepository(store, testLogger())

	require.NoError(t, repo.DeletePerson(context.Background(), "John", "Boyd"))
	assert.Len(t, store.persons, 3)

	// Deleting an absent person is a silent no-op.
	require.NoError(t, repo.DeletePerson(context.Background(), "John", "Boyd"))
	assert.Len(t, store.persons, 3)
}
