package models

// ProductFilter carries the optional list-endpoint filters. Pointer fields
// distinguish "not supplied" from a zero bound.
type ProductFilter struct {
	Name              string   `validate:"omitempty,min=1,max=50"`
	MinPrice          *float64 `validate:"omitempty,gte=0.01,lte=999999.99"`
	MaxPrice          *float64 `validate:"omitempty,gte=0.01,lte=999999.99"`
	MinQuantity       *int     `validate:"omitempty,gte=0,lte=999999"`
	MaxQuantity       *int     `validate:"omitempty,gte=0,lte=999999"`
	IncludeOutOfStock *bool
}

// OutOfStockIncluded reports whether out-of-stock rows should be returned.
// An omitted flag defaults to true.
func (f *ProductFilter) OutOfStockIncluded() bool {
	return f.IncludeOutOfStock == nil || *f.IncludeOutOfStock
}
