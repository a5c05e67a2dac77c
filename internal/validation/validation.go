// Package validation implements the two-layer request validation: static
// per-field constraints first, cross-field business rules second. All
// violations are collected so a response always lists every failing field.
package validation

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"inventaris/internal/apperrors"
	"inventaris/internal/models"
)

// Business rule tiers: low-margin items must not pile up in stock, and
// luxury items are kept scarce.
const (
	lowValuePriceLimit  = 10.00
	lowValueMaxQuantity = 100

	highValuePriceLimit  = 10000.00
	highValueMaxQuantity = 10
)

// Engine validates product requests and filter queries. It never touches
// storage; uniqueness and other cross-row rules live in the service layer.
type Engine struct {
	validate *validator.Validate
}

// NewEngine creates an engine with the custom rules registered.
func NewEngine() *Engine {
	v := validator.New()

	// Report violations under JSON field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("twodecimals", twoDecimals); err != nil {
		panic(err)
	}

	return &Engine{validate: v}
}

// twoDecimals accepts values representable with at most two fractional
// digits.
func twoDecimals(fl validator.FieldLevel) bool {
	scaled := fl.Field().Float() * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}

// ValidateRequest checks a create/update payload. Field violations come
// first in declaration order, request-scope business rule violations after.
func (e *Engine) ValidateRequest(req *models.ProductRequest) []apperrors.Violation {
	var violations []apperrors.Violation

	if err := e.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				violations = append(violations, apperrors.Violation{
					Field:        fe.Field(),
					MessageKey:   requestMessageKey(fe),
					InvalidValue: invalidValue(fe),
				})
			}
		}
	}

	// Cross-field rules only apply once both operands are present.
	if req.Price != nil && req.Quantity != nil {
		if *req.Price < lowValuePriceLimit && *req.Quantity > lowValueMaxQuantity {
			violations = append(violations, apperrors.Violation{
				Field:      "productRequest",
				MessageKey: "validation.businessrule.lowvalue",
			})
		}
		if *req.Price > highValuePriceLimit && *req.Quantity > highValueMaxQuantity {
			violations = append(violations, apperrors.Violation{
				Field:      "productRequest",
				MessageKey: "validation.businessrule.highvalue",
			})
		}
	}

	return violations
}

// ValidateFilter checks list-endpoint filters, including the range-order
// invariants, which are request-scope errors rather than silent corrections.
func (e *Engine) ValidateFilter(f *models.ProductFilter) []apperrors.Violation {
	var violations []apperrors.Violation

	if err := e.validate.Struct(f); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				field, key := filterViolation(fe)
				violations = append(violations, apperrors.Violation{
					Field:        field,
					MessageKey:   key,
					InvalidValue: invalidValue(fe),
				})
			}
		}
	}

	if f.MinPrice != nil && f.MaxPrice != nil && *f.MaxPrice < *f.MinPrice {
		violations = append(violations, apperrors.Violation{
			Field:      "productQuery",
			MessageKey: "query.price.range.invalid",
		})
	}
	if f.MinQuantity != nil && f.MaxQuantity != nil && *f.MaxQuantity < *f.MinQuantity {
		violations = append(violations, apperrors.Violation{
			Field:      "productQuery",
			MessageKey: "query.quantity.range.invalid",
		})
	}

	return violations
}

func requestMessageKey(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		if fe.Tag() == "required" || fe.Tag() == "notblank" {
			return "validation.name.required"
		}
		return "validation.name.size"
	case "price":
		switch fe.Tag() {
		case "required":
			return "validation.price.required"
		case "gte":
			return "validation.price.min"
		case "lte":
			return "validation.price.max"
		case "twodecimals":
			return "validation.price.scale"
		}
	case "description":
		return "validation.description.size"
	case "quantity":
		switch fe.Tag() {
		case "required":
			return "validation.quantity.required"
		case "gte":
			return "validation.quantity.min"
		case "lte":
			return "validation.quantity.max"
		}
	}
	return "validation.invalid"
}

func filterViolation(fe validator.FieldError) (field, key string) {
	switch fe.StructField() {
	case "Name":
		return "name", "query.name.size"
	case "MinPrice":
		return "minPrice", "query.price.bounds"
	case "MaxPrice":
		return "maxPrice", "query.price.bounds"
	case "MinQuantity":
		return "minQuantity", "query.quantity.bounds"
	case "MaxQuantity":
		return "maxQuantity", "query.quantity.bounds"
	}
	return fe.StructField(), "validation.invalid"
}

// invalidValue returns the offending value, or nil when the field was simply
// absent or empty.
func invalidValue(fe validator.FieldError) interface{} {
	v := fe.Value()
	if v == nil || v == "" {
		return nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		return rv.Elem().Interface()
	}
	return v
}
