package repositories_test

import (
	"testing"

	"lapak/internal/models"
	"lapak/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProductRepository_KeepsNewestFirst(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	first, err := repo.Create(&models.Product{Name: "Laptop", Price: 12000000, Stock: 10})
	require.NoError(t, err)
	second, err := repo.Create(&models.Product{Name: "Mouse", Price: 250000, Stock: 50})
	require.NoError(t, err)

	products, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, second.ID, products[0].ID)
	assert.Equal(t, first.ID, products[1].ID)
}

func TestMockProductRepository_CRUD(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	created, err := repo.Create(&models.Product{Name: "Laptop", Price: 12000000, Stock: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", found.Name)

	found.Stock = 8
	updated, err := repo.Update(found)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Stock)

	require.NoError(t, repo.Delete(created.ID))
	_, err = repo.GetByID(created.ID)
	assert.Error(t, err)
	assert.Error(t, repo.Delete(created.ID))
}

func TestMockProductRepository_CountByCategory(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	_, err := repo.Create(&models.Product{Name: "Laptop", CategoryID: "c1"})
	require.NoError(t, err)
	_, err = repo.Create(&models.Product{Name: "Mouse", CategoryID: "c1"})
	require.NoError(t, err)
	_, err = repo.Create(&models.Product{Name: "Desk", CategoryID: "c2"})
	require.NoError(t, err)

	count, err := repo.CountByCategory("c1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByCategory("missing")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMockCategoryRepository_OrdersByName(t *testing.T) {
	repo := repositories.NewMockCategoryRepository()

	_, err := repo.Create(&models.Category{Name: "Furniture"})
	require.NoError(t, err)
	_, err = repo.Create(&models.Category{Name: "Electronics"})
	require.NoError(t, err)

	categories, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Electronics", categories[0].Name)
	assert.Equal(t, "Furniture", categories[1].Name)
}

func TestMockCategoryRepository_UpdateUnknownID(t *testing.T) {
	repo := repositories.NewMockCategoryRepository()

	_, err := repo.Update(&models.Category{ID: "missing", Name: "Ghost"})
	assert.Error(t, err)
}

func TestMockAdminRepository_RejectsDuplicateEmail(t *testing.T) {
	repo := repositories.NewMockAdminRepository()

	_, err := repo.Create(&models.Admin{Name: "Budi", Email: "budi@example.com"})
	require.NoError(t, err)

	_, err = repo.Create(&models.Admin{Name: "Other Budi", Email: "budi@example.com"})
	assert.Error(t, err)

	admins, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}
