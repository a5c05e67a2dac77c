package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a single inventory record.
//
// The numeric primary key never leaves the service; clients only ever see
// PublicID, which is assigned exactly once when the row is first persisted.
type Product struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	PublicID    string    `json:"publicId" gorm:"uniqueIndex;type:varchar(36);not null"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Price       float64   `json:"price" gorm:"not null"`
	Description string    `json:"description" gorm:"size:500"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// BeforeCreate assigns the public identifier on first persist.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.PublicID == "" {
		p.PublicID = uuid.New().String()
	}
	return nil
}

// ToResponse maps the entity to its client representation.
func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		PublicID:    p.PublicID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Quantity:    p.Quantity,
	}
}

// ProductRequest is the create/update payload. Price and Quantity are
// pointers so that an absent field is distinguishable from a zero value.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required,notblank,min=3,max=100"`
	Price       *float64 `json:"price" validate:"required,gte=0.01,lte=999999.99,twodecimals"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0,lte=999999"`
}

// ToEntity builds a fresh entity from the request.
func (r *ProductRequest) ToEntity() Product {
	return Product{
		Name:        r.Name,
		Price:       *r.Price,
		Description: r.Description,
		Quantity:    *r.Quantity,
	}
}

// ApplyTo overwrites all mutable fields of an existing entity. Identifiers
// are left untouched.
func (r *ProductRequest) ApplyTo(p *Product) {
	p.Name = r.Name
	p.Price = *r.Price
	p.Description = r.Description
	p.Quantity = *r.Quantity
}

// ProductResponse is the client-facing representation of a product.
type ProductResponse struct {
	PublicID    string  `json:"publicId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}
