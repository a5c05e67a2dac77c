package repositories

import (
	"strings"

	"gorm.io/gorm"

	"inventaris/internal/models"
)

// scopeFunc is one composable query fragment. Constructors return nil when
// their inputs impose no constraint, so an absent filter contributes nothing
// to the final query instead of an always-true predicate.
type scopeFunc = func(*gorm.DB) *gorm.DB

// buildProductScopes translates a filter into the list of fragments that are
// ANDed together by the storage engine in a single query.
func buildProductScopes(f models.ProductFilter) []scopeFunc {
	candidates := []scopeFunc{
		nameContains(f.Name),
		priceBetween(f.MinPrice, f.MaxPrice),
		quantityBetween(f.MinQuantity, f.MaxQuantity),
		stockFilter(f.OutOfStockIncluded()),
	}

	scopes := make([]scopeFunc, 0, len(candidates))
	for _, s := range candidates {
		if s != nil {
			scopes = append(scopes, s)
		}
	}
	return scopes
}

// nameContains matches a case-insensitive substring. Blank and
// whitespace-only input means no name constraint.
func nameContains(name string) scopeFunc {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(name) LIKE ?", "%"+name+"%")
	}
}

func priceBetween(min, max *float64) scopeFunc {
	switch {
	case min != nil && max != nil:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("price BETWEEN ? AND ?", *min, *max)
		}
	case min != nil:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("price >= ?", *min)
		}
	case max != nil:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("price <= ?", *max)
		}
	}
	return nil
}

func quantityBetween(min, max *int) scopeFunc {
	switch {
	case min != nil && max != nil:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("quantity BETWEEN ? AND ?", *min, *max)
		}
	case min != nil:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("quantity >= ?", *min)
		}
	case max != nil:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("quantity <= ?", *max)
		}
	}
	return nil
}

// stockFilter restricts to in-stock rows only when out-of-stock rows were
// explicitly excluded.
func stockFilter(includeOutOfStock bool) scopeFunc {
	if includeOutOfStock {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("quantity > ?", 0)
	}
}
