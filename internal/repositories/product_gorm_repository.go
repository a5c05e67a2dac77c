package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inventaris/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// sortColumns whitelists the sortable columns. Unknown fields fall back to
// the primary key so a scan is always deterministic.
var sortColumns = map[string]string{
	"id":       "id",
	"name":     "name",
	"price":    "price",
	"quantity": "quantity",
}

func orderClause(page models.PageRequest) string {
	column, ok := sortColumns[page.SortField]
	if !ok {
		column = "id"
	}
	if page.SortDesc {
		return column + " DESC"
	}
	return column + " ASC"
}

// Find counts and fetches one page of matching rows. The filter fragments
// and pagination are pushed down into the two storage queries; nothing is
// re-scanned in memory.
func (r *GORMProductRepository) Find(filter models.ProductFilter, page models.PageRequest) ([]models.Product, int64, error) {
	scopes := buildProductScopes(filter)

	var total int64
	if err := r.db.Model(&models.Product{}).Scopes(scopes...).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := r.db.Scopes(scopes...).
		Order(orderClause(page)).
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// FindByPublicID retrieves a single product by its public identifier.
func (r *GORMProductRepository) FindByPublicID(publicID string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "public_id = ?", publicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by public id %s: %w", publicID, err)
	}
	return &product, nil
}

// ExistsByName reports whether any product carries the given name.
func (r *GORMProductRepository) ExistsByName(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check name existence: %w", err)
	}
	return count > 0, nil
}

// ExistsByNameExcluding reports whether a different product carries the name.
func (r *GORMProductRepository) ExistsByNameExcluding(name, publicID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("name = ? AND public_id <> ?", name, publicID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check name existence: %w", err)
	}
	return count > 0, nil
}

// Create persists a new product. The public id is assigned by the entity's
// BeforeCreate hook inside the transaction.
func (r *GORMProductRepository) Create(product *models.Product) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists all fields of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Save(product)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}
		if errors.Is(err, ErrProductNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// DeleteByPublicID removes a product if it exists and reports whether a row
// was actually deleted.
func (r *GORMProductRepository) DeleteByPublicID(publicID string) (bool, error) {
	res := r.db.Delete(&models.Product{}, "public_id = ?", publicID)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete product: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
