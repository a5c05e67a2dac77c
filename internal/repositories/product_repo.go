package repositories

import (
	"errors"

	"inventaris/internal/models"
)

// ErrProductNotFound is returned by lookups and updates that target a public
// id with no matching row.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateName is returned when a write violates the name uniqueness
// constraint at the storage layer. The service pre-checks names for a
// friendlier error, but the constraint stays authoritative under races.
var ErrDuplicateName = errors.New("product name already exists")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// Find runs one filtered, sorted, paginated scan and returns the page
	// rows plus the total match count.
	Find(filter models.ProductFilter, page models.PageRequest) ([]models.Product, int64, error)
	FindByPublicID(publicID string) (*models.Product, error)
	ExistsByName(name string) (bool, error)
	// ExistsByNameExcluding ignores the product with the given public id,
	// for uniqueness checks during update.
	ExistsByNameExcluding(name, publicID string) (bool, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	// DeleteByPublicID reports whether a row was removed; deleting an
	// unknown id is not an error.
	DeleteByPublicID(publicID string) (bool, error)
}
