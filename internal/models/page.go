package models

// PageRequest describes pagination and sorting for the list endpoint.
// Pages are zero-based. Sort fields are whitelisted at the HTTP layer.
type PageRequest struct {
	Page      int
	Size      int
	SortField string
	SortDesc  bool
}

// Offset returns the row offset for this page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// ProductPage is one page of results plus its metadata.
type ProductPage struct {
	Content       []ProductResponse `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
	First         bool              `json:"first"`
	Last          bool              `json:"last"`
	HasNext       bool              `json:"hasNext"`
}

// NewProductPage assembles page metadata from a result slice and total count.
func NewProductPage(content []ProductResponse, page PageRequest, total int64) ProductPage {
	totalPages := int(total) / page.Size
	if int(total)%page.Size != 0 {
		totalPages++
	}
	return ProductPage{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page.Page == 0,
		Last:          page.Page >= totalPages-1,
		HasNext:       page.Page+1 < totalPages,
	}
}
