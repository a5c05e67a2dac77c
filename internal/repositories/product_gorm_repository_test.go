package repositories_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"inventaris/internal/models"
	"inventaris/internal/repositories"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }

// setupRepo opens a per-test in-memory SQLite database.
func setupRepo(t *testing.T) *repositories.GORMProductRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return repositories.NewGORMProductRepository(db)
}

func seed(t *testing.T, repo *repositories.GORMProductRepository, products ...models.Product) {
	t.Helper()
	for i := range products {
		require.NoError(t, repo.Create(&products[i]))
	}
}

func TestCreateAssignsPublicID(t *testing.T) {
	repo := setupRepo(t)

	product := models.Product{Name: "Widget", Price: 19.99, Quantity: 5}
	require.NoError(t, repo.Create(&product))

	assert.NotEmpty(t, product.PublicID)
	_, err := uuid.Parse(product.PublicID)
	assert.NoError(t, err, "public id should be UUID-shaped")
	assert.NotZero(t, product.ID)
}

func TestCreateDuplicateName(t *testing.T) {
	repo := setupRepo(t)
	seed(t, repo, models.Product{Name: "Widget", Price: 19.99, Quantity: 5})

	dup := models.Product{Name: "Widget", Price: 1.00, Quantity: 1}
	err := repo.Create(&dup)

	assert.ErrorIs(t, err, repositories.ErrDuplicateName)

	// The first row is unaffected by the failed insert.
	_, total, err := repo.Find(models.ProductFilter{}, models.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestFindByPublicID(t *testing.T) {
	repo := setupRepo(t)
	product := models.Product{Name: "Widget", Price: 19.99, Description: "x", Quantity: 5}
	seed(t, repo, product)

	created, total, err := repo.Find(models.ProductFilter{}, models.PageRequest{Size: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)

	found, err := repo.FindByPublicID(created[0].PublicID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", found.Name)
	assert.Equal(t, 19.99, found.Price)
	assert.Equal(t, "x", found.Description)
	assert.Equal(t, 5, found.Quantity)

	_, err = repo.FindByPublicID("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestExistsByName(t *testing.T) {
	repo := setupRepo(t)
	product := models.Product{Name: "Widget", Price: 19.99, Quantity: 5}
	require.NoError(t, repo.Create(&product))

	exists, err := repo.ExistsByName("Widget")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName("Gadget")
	require.NoError(t, err)
	assert.False(t, exists)

	// A product does not conflict with itself during update checks.
	exists, err = repo.ExistsByNameExcluding("Widget", product.PublicID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByNameExcluding("Widget", "some-other-id")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFindNameFilterCaseInsensitive(t *testing.T) {
	repo := setupRepo(t)
	seed(t, repo,
		models.Product{Name: "Spring Boot Book", Price: 49.99, Quantity: 3},
		models.Product{Name: "Java Performance", Price: 59.99, Quantity: 7},
	)

	rows, total, err := repo.Find(models.ProductFilter{Name: "spring"}, models.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Spring Boot Book", rows[0].Name)

	// Whitespace-only input imposes no name constraint.
	_, total, err = repo.Find(models.ProductFilter{Name: "   "}, models.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestFindPriceAndQuantityRanges(t *testing.T) {
	repo := setupRepo(t)
	seed(t, repo,
		models.Product{Name: "Cheap", Price: 5.00, Quantity: 10},
		models.Product{Name: "Middle", Price: 50.00, Quantity: 20},
		models.Product{Name: "Expensive", Price: 500.00, Quantity: 30},
	)

	rows, total, err := repo.Find(models.ProductFilter{
		MinPrice: floatPtr(10.00),
		MaxPrice: floatPtr(100.00),
	}, models.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Middle", rows[0].Name)

	// Single-sided bounds.
	_, total, err = repo.Find(models.ProductFilter{MinPrice: floatPtr(50.00)}, models.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, total, err = repo.Find(models.ProductFilter{MaxQuantity: intPtr(20)}, models.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// Combined predicates AND together.
	_, total, err = repo.Find(models.ProductFilter{
		MinPrice:    floatPtr(10.00),
		MinQuantity: intPtr(25),
	}, models.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestFindStockFilter(t *testing.T) {
	repo := setupRepo(t)
	seed(t, repo,
		models.Product{Name: "In Stock", Price: 10.00, Quantity: 3},
		models.Product{Name: "Sold Out", Price: 10.00, Quantity: 0},
	)

	// Default includes out-of-stock rows.
	_, total, err := repo.Find(models.ProductFilter{}, models.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, total, err = repo.Find(models.ProductFilter{IncludeOutOfStock: boolPtr(true)}, models.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	rows, total, err := repo.Find(models.ProductFilter{IncludeOutOfStock: boolPtr(false)}, models.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "In Stock", rows[0].Name)
}

func TestFindPaginationAndSorting(t *testing.T) {
	repo := setupRepo(t)
	seed(t, repo,
		models.Product{Name: "Product A", Price: 10.00, Quantity: 1},
		models.Product{Name: "Product B", Price: 20.00, Quantity: 2},
		models.Product{Name: "Product C", Price: 30.00, Quantity: 3},
		models.Product{Name: "Product D", Price: 40.00, Quantity: 4},
		models.Product{Name: "Product E", Price: 50.00, Quantity: 5},
	)

	rows, total, err := repo.Find(models.ProductFilter{}, models.PageRequest{Page: 0, Size: 2, SortField: "id"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, rows, 2)

	rows, _, err = repo.Find(models.ProductFilter{}, models.PageRequest{Page: 2, Size: 2, SortField: "id"})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Product E", rows[0].Name)

	rows, _, err = repo.Find(models.ProductFilter{}, models.PageRequest{Page: 0, Size: 2, SortField: "price", SortDesc: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Product E", rows[0].Name)
	assert.Equal(t, "Product D", rows[1].Name)
}

func TestUpdatePersistsAllMutableFields(t *testing.T) {
	repo := setupRepo(t)
	product := models.Product{Name: "Widget", Price: 19.99, Description: "old", Quantity: 5}
	require.NoError(t, repo.Create(&product))
	originalPublicID := product.PublicID

	product.Name = "Widget Pro"
	product.Price = 29.99
	product.Description = "new"
	product.Quantity = 0
	require.NoError(t, repo.Update(&product))

	found, err := repo.FindByPublicID(originalPublicID)
	require.NoError(t, err)
	assert.Equal(t, "Widget Pro", found.Name)
	assert.Equal(t, 29.99, found.Price)
	assert.Equal(t, "new", found.Description)
	assert.Equal(t, 0, found.Quantity)
	assert.Equal(t, product.ID, found.ID)
}

func TestUpdateDuplicateName(t *testing.T) {
	repo := setupRepo(t)
	first := models.Product{Name: "Widget", Price: 19.99, Quantity: 5}
	second := models.Product{Name: "Gadget", Price: 9.99, Quantity: 5}
	require.NoError(t, repo.Create(&first))
	require.NoError(t, repo.Create(&second))

	second.Name = "Widget"
	err := repo.Update(&second)

	assert.ErrorIs(t, err, repositories.ErrDuplicateName)
}

func TestDeleteByPublicID(t *testing.T) {
	repo := setupRepo(t)
	product := models.Product{Name: "Widget", Price: 19.99, Quantity: 5}
	require.NoError(t, repo.Create(&product))

	deleted, err := repo.DeleteByPublicID(product.PublicID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Second delete finds nothing and is not an error.
	deleted, err = repo.DeleteByPublicID(product.PublicID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindByPublicID(product.PublicID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}
