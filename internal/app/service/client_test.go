package service

import (
	"context"
	"testing"
	"time"

	"revenue/internal/app/apperr"
	"revenue/internal/app/ds"
	"revenue/internal/app/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientFixture() (*ClientService, *fakeClients) {
	store := newFakeClients()
	store.individuals[testPesel] = &ds.Individual{Pesel: testPesel, FirstName: "Jan", LastName: "Kowalski", Email: "jan@example.com"}
	store.companies[testKrs] = &ds.Company{Krs: testKrs, Name: "Acme", Email: "office@acme.pl"}
	return NewClientService(store, discardLogger()).WithClock(fixedClock(now)), store
}

func TestListClients(t *testing.T) {
	svc, store := newClientFixture()
	deleted := now
	store.individuals["80010112345"] = &ds.Individual{Pesel: "80010112345", DeletedAt: &deleted}

	summary, err := svc.ListClients(context.Background())
	require.NoError(t, err)
	assert.Len(t, summary.Individuals, 1)
	assert.Len(t, summary.Companies, 1)
	assert.Equal(t, 2, summary.TotalClients)
}

func TestAddIndividual(t *testing.T) {
	svc, store := newClientFixture()
	ctx := context.Background()

	individual, err := svc.AddIndividual(ctx, dto.AddIndividualRequest{
		Pesel: "85020254321", FirstName: "Anna", LastName: "Nowak",
		Address: "Warszawa", Email: "anna@example.com", PhoneNumber: "+48123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, "Anna", individual.FirstName)
	assert.Contains(t, store.individuals, "85020254321")

	_, err = svc.AddIndividual(ctx, dto.AddIndividualRequest{Pesel: testPesel})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestAddIndividual_SoftDeletedPeselStaysTaken(t *testing.T) {
	svc, _ := newClientFixture()
	ctx := context.Background()

	require.NoError(t, svc.DeleteIndividual(ctx, testPesel))

	_, err := svc.AddIndividual(ctx, dto.AddIndividualRequest{Pesel: testPesel, FirstName: "Jan"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestAddCompany(t *testing.T) {
	svc, store := newClientFixture()
	ctx := context.Background()

	_, err := svc.AddCompany(ctx, dto.AddCompanyRequest{Krs: "0000654321", Name: "Globex"})
	require.NoError(t, err)
	assert.Contains(t, store.companies, "0000654321")

	_, err = svc.AddCompany(ctx, dto.AddCompanyRequest{Krs: testKrs, Name: "Acme 2"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestUpdateIndividual_Partial(t *testing.T) {
	svc, store := newClientFixture()
	email := "jan.kowalski@example.com"

	updated, err := svc.UpdateIndividual(context.Background(), dto.UpdateIndividualRequest{Pesel: testPesel, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, email, updated.Email)
	assert.Equal(t, "Jan", updated.FirstName)
	assert.Equal(t, email, store.individuals[testPesel].Email)
	assert.Equal(t, "Kowalski", store.individuals[testPesel].LastName)
}

func TestUpdateIndividual_DeletedIsNotFound(t *testing.T) {
	svc, store := newClientFixture()
	deleted := now.Add(-time.Hour)
	store.individuals[testPesel].DeletedAt = &deleted
	name := "Janusz"

	_, err := svc.UpdateIndividual(context.Background(), dto.UpdateIndividualRequest{Pesel: testPesel, FirstName: &name})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateCompany(t *testing.T) {
	svc, store := newClientFixture()
	name := "Acme Sp. z o.o."
	ctx := context.Background()

	_, err := svc.UpdateCompany(ctx, dto.UpdateCompanyRequest{Krs: testKrs, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, store.companies[testKrs].Name)
	assert.Equal(t, "office@acme.pl", store.companies[testKrs].Email)

	_, err = svc.UpdateCompany(ctx, dto.UpdateCompanyRequest{Krs: "0000000001", Name: &name})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteIndividual(t *testing.T) {
	svc, store := newClientFixture()
	ctx := context.Background()

	require.NoError(t, svc.DeleteIndividual(ctx, testPesel))
	require.NotNil(t, store.individuals[testPesel].DeletedAt)
	assert.Equal(t, now, *store.individuals[testPesel].DeletedAt)

	assert.ErrorIs(t, svc.DeleteIndividual(ctx, testPesel), apperr.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteIndividual(ctx, "123"), apperr.ErrInvalidArgument)
}

func TestDeleteCompany_AlwaysRejected(t *testing.T) {
	svc, store := newClientFixture()

	err := svc.DeleteCompany(context.Background(), testKrs)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Contains(t, store.companies, testKrs)
}
