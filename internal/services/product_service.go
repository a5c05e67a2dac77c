package services

import (
	"errors"
	"log"

	"inventaris/internal/apperrors"
	"inventaris/internal/models"
	"inventaris/internal/repositories"
	"inventaris/internal/validation"
)

// ProductEventPublisher publishes product lifecycle events. A nil publisher
// disables events without touching the service logic.
type ProductEventPublisher interface {
	PublishProductEvent(action string, data map[string]interface{}) error
}

// ProductService handles business logic related to products: validation,
// identity rules and name uniqueness sit here, persistence stays behind the
// repository.
type ProductService struct {
	repo      repositories.ProductRepository
	validator *validation.Engine
	events    ProductEventPublisher
}

// NewProductService creates a new ProductService. events may be nil.
func NewProductService(repo repositories.ProductRepository, validator *validation.Engine, events ProductEventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		validator: validator,
		events:    events,
	}
}

// ListProducts validates the filter, runs one paginated scan and maps the
// rows to their client representation.
func (s *ProductService) ListProducts(filter models.ProductFilter, page models.PageRequest) (*models.ProductPage, error) {
	if violations := s.validator.ValidateFilter(&filter); len(violations) > 0 {
		return nil, &apperrors.ValidationError{Violations: violations}
	}

	products, total, err := s.repo.Find(filter, page)
	if err != nil {
		return nil, err
	}

	content := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		content = append(content, products[i].ToResponse())
	}

	result := models.NewProductPage(content, page, total)
	return &result, nil
}

// GetProductByPublicID retrieves a single product by its public identifier.
func (s *ProductService) GetProductByPublicID(publicID string) (*models.ProductResponse, error) {
	product, err := s.repo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, &apperrors.NotFoundError{PublicID: publicID}
		}
		return nil, err
	}
	resp := product.ToResponse()
	return &resp, nil
}

// CreateProduct validates the request, pre-checks name uniqueness and
// persists a new product. The storage unique constraint remains the final
// authority under concurrent creates.
func (s *ProductService) CreateProduct(req models.ProductRequest) (*models.ProductResponse, error) {
	if violations := s.validator.ValidateRequest(&req); len(violations) > 0 {
		return nil, &apperrors.ValidationError{Violations: violations}
	}

	exists, err := s.repo.ExistsByName(req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &apperrors.AlreadyExistsError{Name: req.Name}
	}

	product := req.ToEntity()
	if err := s.repo.Create(&product); err != nil {
		if errors.Is(err, repositories.ErrDuplicateName) {
			return nil, &apperrors.ConstraintError{Err: err}
		}
		return nil, err
	}

	s.publish("created", map[string]interface{}{
		"publicId": product.PublicID,
		"name":     product.Name,
	})

	resp := product.ToResponse()
	return &resp, nil
}

// UpdateProduct overwrites all mutable fields of an existing product. The
// public and internal identifiers are never altered.
func (s *ProductService) UpdateProduct(publicID string, req models.ProductRequest) (*models.ProductResponse, error) {
	if violations := s.validator.ValidateRequest(&req); len(violations) > 0 {
		return nil, &apperrors.ValidationError{Violations: violations}
	}

	product, err := s.repo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, &apperrors.NotFoundError{PublicID: publicID}
		}
		return nil, err
	}

	exists, err := s.repo.ExistsByNameExcluding(req.Name, publicID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &apperrors.AlreadyExistsError{Name: req.Name}
	}

	req.ApplyTo(product)
	if err := s.repo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrDuplicateName) {
			return nil, &apperrors.ConstraintError{Err: err}
		}
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, &apperrors.NotFoundError{PublicID: publicID}
		}
		return nil, err
	}

	s.publish("updated", map[string]interface{}{
		"publicId": product.PublicID,
		"name":     product.Name,
	})

	resp := product.ToResponse()
	return &resp, nil
}

// DeleteProduct removes a product by public id. Deleting an id that does not
// exist succeeds silently; delete is idempotent.
func (s *ProductService) DeleteProduct(publicID string) error {
	deleted, err := s.repo.DeleteByPublicID(publicID)
	if err != nil {
		return err
	}
	if deleted {
		s.publish("deleted", map[string]interface{}{
			"publicId": publicID,
		})
	}
	return nil
}

// publish sends a lifecycle event. Event delivery is best effort; failures
// are logged and never surfaced to the caller.
func (s *ProductService) publish(action string, data map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishProductEvent(action, data); err != nil {
		log.Printf("Failed to publish product %s event: %v", action, err)
	}
}
