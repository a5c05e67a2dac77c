package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"inventaris/internal/apperrors"
	"inventaris/internal/models"
	"inventaris/internal/services"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ProductHandler handles HTTP requests for products. All errors are returned
// as-is and rendered by the app-level error handler.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleList)
	products.Post("/", h.HandleCreate)
	products.Get("/:publicId", h.HandleGet)
	products.Put("/:publicId", h.HandleUpdate)
	products.Delete("/:publicId", h.HandleDelete)
}

// HandleList returns a filtered, paginated product page.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	filter, page, err := parseListQuery(c)
	if err != nil {
		return err
	}

	result, err := h.service.ListProducts(filter, page)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// HandleGet returns a single product by its public id.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	product, err := h.service.GetProductByPublicID(c.Params("publicId"))
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleCreate creates a new product.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return &apperrors.MalformedRequestError{Violations: []apperrors.Violation{
			{Field: "requestBody", MessageKey: "malformed.body"},
		}}
	}

	product, err := h.service.CreateProduct(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdate overwrites an existing product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return &apperrors.MalformedRequestError{Violations: []apperrors.Violation{
			{Field: "requestBody", MessageKey: "malformed.body"},
		}}
	}

	product, err := h.service.UpdateProduct(c.Params("publicId"), req)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleDelete removes a product. The response is 204 whether or not the id
// existed, so existence is not leaked through the status code.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("publicId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseListQuery decodes filter and pagination parameters. Parse failures
// are collected per parameter so the client sees every malformed one.
func parseListQuery(c *fiber.Ctx) (models.ProductFilter, models.PageRequest, error) {
	var malformed []apperrors.Violation

	filter := models.ProductFilter{
		Name:              c.Query("name"),
		MinPrice:          queryFloat(c, "minPrice", &malformed),
		MaxPrice:          queryFloat(c, "maxPrice", &malformed),
		MinQuantity:       queryInt(c, "minQuantity", &malformed),
		MaxQuantity:       queryInt(c, "maxQuantity", &malformed),
		IncludeOutOfStock: queryBool(c, "includeOutOfStock", &malformed),
	}

	page := models.PageRequest{
		Page:      0,
		Size:      defaultPageSize,
		SortField: "id",
	}

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			malformed = append(malformed, malformedParam("page", raw))
		} else {
			page.Page = n
		}
	}
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPageSize {
			malformed = append(malformed, malformedParam("size", raw))
		} else {
			page.Size = n
		}
	}
	if raw := c.Query("sort"); raw != "" {
		field, desc, ok := parseSort(raw)
		if !ok {
			malformed = append(malformed, malformedParam("sort", raw))
		} else {
			page.SortField = field
			page.SortDesc = desc
		}
	}

	if len(malformed) > 0 {
		return filter, page, &apperrors.MalformedRequestError{Violations: malformed}
	}
	return filter, page, nil
}

var sortableFields = map[string]bool{
	"id":       true,
	"name":     true,
	"price":    true,
	"quantity": true,
}

// parseSort accepts "field" or "field,asc|desc".
func parseSort(raw string) (field string, desc bool, ok bool) {
	parts := strings.SplitN(raw, ",", 2)
	field = strings.TrimSpace(parts[0])
	if !sortableFields[field] {
		return "", false, false
	}
	if len(parts) == 1 {
		return field, false, true
	}
	switch strings.ToLower(strings.TrimSpace(parts[1])) {
	case "asc":
		return field, false, true
	case "desc":
		return field, true, true
	}
	return "", false, false
}

func malformedParam(name, raw string) apperrors.Violation {
	return apperrors.Violation{
		Field:        name,
		MessageKey:   "malformed.parameter",
		InvalidValue: raw,
	}
}

func queryFloat(c *fiber.Ctx, name string, malformed *[]apperrors.Violation) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*malformed = append(*malformed, malformedParam(name, raw))
		return nil
	}
	return &f
}

func queryInt(c *fiber.Ctx, name string, malformed *[]apperrors.Violation) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*malformed = append(*malformed, malformedParam(name, raw))
		return nil
	}
	return &n
}

func queryBool(c *fiber.Ctx, name string, malformed *[]apperrors.Violation) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		*malformed = append(*malformed, malformedParam(name, raw))
		return nil
	}
	return &b
}
