package repositories_test

import (
	"testing"

	"github.com/TaylenH/apiDirectory/internal/database"
	"github.com/TaylenH/apiDirectory/internal/models"
	"github.com/TaylenH/apiDirectory/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRepo connects to the shared in-memory SQLite database and wipes
// the products table so each test starts from a clean collection.
func setupRepo(t *testing.T) *repositories.GORMProductRepository {
	t.Helper()

	db, err := database.ConnectTest()
	require.NoError(t, err)
	require.NoError(t, database.Reset(db))

	return repositories.NewGORMProductRepository(db)
}

func TestGORMProductRepository_CreateAndGetByID(t *testing.T) {
	repo := setupRepo(t)

	product := &models.Product{ID: 1, ProductName: "pizza", Price: 5.99, Stock: 55}
	require.NoError(t, repo.Create(product))

	fetched, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.ID)
	assert.Equal(t, "pizza", fetched.ProductName)
	assert.Equal(t, 5.99, fetched.Price)
	assert.Equal(t, 55, fetched.Stock)
}

func TestGORMProductRepository_CreateDuplicateID(t *testing.T) {
	repo := setupRepo(t)

	first := &models.Product{ID: 1, ProductName: "pizza", Price: 5.99, Stock: 55}
	require.NoError(t, repo.Create(first))

	// The primary key constraint, not any pre-check, rejects the second
	// insert.
	second := &models.Product{ID: 1, ProductName: "cheese", Price: 3.49, Stock: 10}
	err := repo.Create(second)
	assert.ErrorIs(t, err, models.ErrProductIDExists)

	fetched, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "pizza", fetched.ProductName)
}

func TestGORMProductRepository_GetByIDNotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetByID(99999)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestGORMProductRepository_FindByName(t *testing.T) {
	repo := setupRepo(t)

	require.NoError(t, repo.Create(&models.Product{ID: 1, ProductName: "Deep-Dish Pizza", Price: 12.50, Stock: 5}))
	require.NoError(t, repo.Create(&models.Product{ID: 2, ProductName: "pizza roll", Price: 3.25, Stock: 40}))
	require.NoError(t, repo.Create(&models.Product{ID: 3, ProductName: "cheese", Price: 3.25, Stock: 40}))

	matches, err := repo.FindByName("PIZZA")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	ids := []int{matches[0].ID, matches[1].ID}
	assert.ElementsMatch(t, []int{1, 2}, ids)

	none, err := repo.FindByName("sushi")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGORMProductRepository_FindByPriceAndStock(t *testing.T) {
	repo := setupRepo(t)

	require.NoError(t, repo.Create(&models.Product{ID: 1, ProductName: "pizza", Price: 5.99, Stock: 55}))
	require.NoError(t, repo.Create(&models.Product{ID: 2, ProductName: "cheese", Price: 5.99, Stock: 10}))
	require.NoError(t, repo.Create(&models.Product{ID: 3, ProductName: "bread", Price: 2.49, Stock: 55}))

	byPrice, err := repo.FindByPrice(5.99)
	require.NoError(t, err)
	assert.Len(t, byPrice, 2)

	byStock, err := repo.FindByStock(55)
	require.NoError(t, err)
	assert.Len(t, byStock, 2)
}

func TestGORMProductRepository_ExistsByID(t *testing.T) {
	repo := setupRepo(t)

	exists, err := repo.ExistsByID(1)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(&models.Product{ID: 1, ProductName: "pizza", Price: 5.99, Stock: 55}))

	exists, err = repo.ExistsByID(1)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGORMProductRepository_Update(t *testing.T) {
	repo := setupRepo(t)

	require.NoError(t, repo.Create(&models.Product{ID: 1, ProductName: "pizza", Price: 5.99, Stock: 55}))

	err := repo.Update(&models.Product{ID: 1, ProductName: "pizza", Price: 6.49, Stock: 0})
	require.NoError(t, err)

	fetched, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 6.49, fetched.Price)
	assert.Equal(t, 0, fetched.Stock)
}

func TestGORMProductRepository_UpdateNotFound(t *testing.T) {
	repo := setupRepo(t)

	err := repo.Update(&models.Product{ID: 99999, ProductName: "ghost", Price: 1.00, Stock: 1})
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}
