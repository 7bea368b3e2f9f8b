package repository

import (
	"context"
	"testing"
	"time"

	"revenue/internal/app/ds"
	"revenue/internal/app/role"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var base = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	// одна база :memory: живёт в пределах одного соединения
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := NewWithDB(db)
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func seedCatalog(t *testing.T, repo *Repository) {
	t.Helper()
	err := repo.SeedCatalog(context.Background(),
		[]ds.Category{{ID: 1, Name: "Office"}},
		[]ds.Software{
			{ID: 1, Name: "Office Suite", CurrentVersion: "2.1", CategoryID: 1, Price: decimal.RequireFromString("1000")},
			{ID: 2, Name: "Spreadsheet", CurrentVersion: "1.0", CategoryID: 1, Price: decimal.RequireFromString("249.99")},
		})
	require.NoError(t, err)
}

func ptr[T any](v T) *T { return &v }

func TestAutoMigrate(t *testing.T) {
	repo := setupTestDB(t)
	for _, model := range Models() {
		assert.True(t, repo.db.Migrator().HasTable(model), "%T", model)
	}
}

func TestClients(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateIndividual(ctx, &ds.Individual{Pesel: "90010112345", FirstName: "Jan", LastName: "Kowalski", Address: "Kraków", Email: "jan@example.com", PhoneNumber: "123"}))
	require.NoError(t, repo.CreateCompany(ctx, &ds.Company{Krs: "0000123456", Name: "Acme", Address: "Gdańsk", Email: "acme@example.com", PhoneNumber: "456"}))

	exists, err := repo.IndividualExists(ctx, "90010112345")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.CompanyExists(ctx, "0000123456")
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := repo.SoftDeleteIndividual(ctx, "90010112345", base)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.SoftDeleteIndividual(ctx, "90010112345", base)
	require.NoError(t, err)
	assert.False(t, deleted)

	exists, err = repo.IndividualExists(ctx, "90010112345")
	require.NoError(t, err)
	assert.False(t, exists)

	registered, err := repo.IndividualRegistered(ctx, "90010112345")
	require.NoError(t, err)
	assert.True(t, registered)

	individual, err := repo.GetIndividual(ctx, "90010112345")
	require.NoError(t, err)
	assert.Nil(t, individual)

	individuals, err := repo.ListIndividuals(ctx)
	require.NoError(t, err)
	assert.Empty(t, individuals)

	company, err := repo.GetCompany(ctx, "0000123456")
	require.NoError(t, err)
	require.NotNil(t, company)
	company.Name = "Acme S.A."
	require.NoError(t, repo.UpdateCompany(ctx, company))

	companies, err := repo.ListCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme S.A.", companies[0].Name)
}

func TestSoftware(t *testing.T) {
	repo := setupTestDB(t)
	seedCatalog(t, repo)
	// повторный seed ничего не дублирует
	seedCatalog(t, repo)
	ctx := context.Background()

	software, err := repo.GetSoftware(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, software)
	assert.Equal(t, "Office", software.Category.Name)
	assert.Equal(t, "249.99", software.Price.StringFixed(2))

	missing, err := repo.GetSoftware(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := repo.ListSoftware(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDiscounts(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	first := &ds.Discount{Percentage: 10, Start: base.Add(-time.Hour), End: base.Add(time.Hour)}
	second := &ds.Discount{Percentage: 25, Start: base.Add(time.Hour), End: base.Add(48 * time.Hour)}
	third := &ds.Discount{Percentage: 30, Start: base.Add(-48 * time.Hour), End: base}
	require.NoError(t, repo.CreateDiscount(ctx, first))
	require.NoError(t, repo.CreateDiscount(ctx, second))
	require.NoError(t, repo.CreateDiscount(ctx, third))
	assert.Equal(t, []int{1, 2, 3}, []int{first.ID, second.ID, third.ID})

	active, err := repo.ListActiveDiscounts(ctx, base)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, 1, active[0].ID)
	assert.Equal(t, 3, active[1].ID)
}

func TestContracts(t *testing.T) {
	repo := setupTestDB(t)
	seedCatalog(t, repo)
	ctx := context.Background()

	id, err := repo.NextContractID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	contract := &ds.Contract{
		ID:               5,
		IndividualPesel:  ptr("90010112345"),
		SoftwareID:       1,
		Start:            base,
		End:              base.Add(10 * 24 * time.Hour),
		SoftwareDeadline: base.AddDate(2, 0, 0),
		ToPay:            decimal.RequireFromString("1800.50"),
		Paid:             decimal.Zero,
	}
	require.NoError(t, repo.CreateContract(ctx, contract))

	id, err = repo.NextContractID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, id)

	stored, err := repo.GetContract(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Nil(t, stored.CompanyKrs)
	assert.Nil(t, stored.DiscountID)
	assert.True(t, base.Equal(stored.Start))
	assert.Equal(t, 1, stored.AdditionalSupportYears())
	assert.Equal(t, "1800.50", stored.ToPay.StringFixed(2))

	active, err := repo.HasActiveSubscription(ctx, "90010112345", "", 1, base)
	require.NoError(t, err)
	assert.False(t, active, "unsigned contract is not a subscription")

	stored.Paid = stored.ToPay
	stored.IsPaid, stored.IsSigned = true, true
	require.NoError(t, repo.UpdateContract(ctx, stored))

	active, err = repo.HasActiveSubscription(ctx, "90010112345", "", 1, base)
	require.NoError(t, err)
	assert.True(t, active)

	active, err = repo.HasActiveSubscription(ctx, "90010112345", "", 2, base)
	require.NoError(t, err)
	assert.False(t, active)

	active, err = repo.HasActiveSubscription(ctx, "90010112345", "", 1, base.AddDate(2, 0, 0))
	require.NoError(t, err)
	assert.False(t, active, "deadline is exclusive")

	active, err = repo.HasActiveSubscription(ctx, "", "0000123456", 1, base)
	require.NoError(t, err)
	assert.False(t, active)

	contracts, err := repo.ListContracts(ctx)
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.True(t, contracts[0].IsPaid)
	assert.Equal(t, "1800.50", contracts[0].Paid.StringFixed(2))

	deleted, err := repo.DeleteContract(ctx, 5)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteContract(ctx, 5)
	require.NoError(t, err)
	assert.False(t, deleted)

	missing, err := repo.GetContract(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUsers(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	exists, err := repo.AdminExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	user, err := repo.CreateUser(ctx, "root", "hash", role.Admin)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	exists, err = repo.AdminExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.UserExistsByLogin(ctx, "root")
	require.NoError(t, err)
	assert.True(t, exists)

	byLogin, err := repo.GetUserByLogin(ctx, "root")
	require.NoError(t, err)
	require.NotNil(t, byLogin)
	assert.Equal(t, role.Admin, byLogin.Role)

	byID, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "root", byID.Login)

	missing, err := repo.GetUserByLogin(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSeedDefaultCatalog(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	categories, software := DefaultCatalog()
	require.NoError(t, repo.SeedCatalog(ctx, categories, software))

	all, err := repo.ListSoftware(ctx)
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "Office Suite Pro", all[0].Name)
	assert.Equal(t, "Business Software", all[0].Category.Name)
	assert.Equal(t, 8, all[6].ID)
}
