package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"inventaris/internal/apperrors"
	"inventaris/internal/i18n"
)

// problemTypeBase prefixes the stable error-category URIs.
const problemTypeBase = "https://inventaris.example.com/problems"

// problemDetail is the wire format for every 4xx/5xx response.
type problemDetail struct {
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Status      int            `json:"status"`
	Detail      string         `json:"detail"`
	Instance    string         `json:"instance"`
	Errors      []problemError `json:"errors,omitempty"`
	ProductID   string         `json:"productId,omitempty"`
	ProductName string         `json:"productName,omitempty"`
}

type problemError struct {
	Field        string `json:"field"`
	Message      string `json:"message"`
	InvalidValue string `json:"invalidValue,omitempty"`
}

// NewErrorHandler returns the app-level Fiber error handler. Every handler
// simply returns its error; this is the single place where tagged errors
// become localized problem documents. Unanticipated errors are logged in
// full server-side and masked with a generic message.
func NewErrorHandler(catalog *i18n.Catalog) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		locale := catalog.Resolve(c.Get(fiber.HeaderAcceptLanguage))
		problem := problemDetail{Instance: c.Path()}

		var (
			validationErr *apperrors.ValidationError
			malformedErr  *apperrors.MalformedRequestError
			notFoundErr   *apperrors.NotFoundError
			existsErr     *apperrors.AlreadyExistsError
			constraintErr *apperrors.ConstraintError
			fiberErr      *fiber.Error
		)

		switch {
		case errors.As(err, &validationErr):
			problem.Type = problemTypeBase + "/validation-error"
			problem.Status = fiber.StatusBadRequest
			problem.Title = catalog.Message(locale, "error.title.validation")
			problem.Detail = catalog.Message(locale, "validation.error.detail")
			problem.Errors = renderViolations(catalog, locale, validationErr.Violations)

		case errors.As(err, &malformedErr):
			problem.Type = problemTypeBase + "/malformed-request"
			problem.Status = fiber.StatusBadRequest
			problem.Title = catalog.Message(locale, "error.title.malformed")
			problem.Detail = catalog.Message(locale, "malformed.request.detail")
			problem.Errors = renderViolations(catalog, locale, malformedErr.Violations)

		case errors.As(err, &notFoundErr):
			problem.Type = problemTypeBase + "/product-not-found"
			problem.Status = fiber.StatusNotFound
			problem.Title = catalog.Message(locale, "error.title.product.not.found")
			problem.Detail = catalog.Message(locale, "product.not.found.detail")
			problem.ProductID = notFoundErr.PublicID

		case errors.As(err, &existsErr):
			problem.Type = problemTypeBase + "/product-already-exists"
			problem.Status = fiber.StatusConflict
			problem.Title = catalog.Message(locale, "error.title.product.already.exists")
			problem.Detail = catalog.Message(locale, "product.already.exists.detail")
			problem.ProductName = existsErr.Name

		case errors.As(err, &constraintErr):
			// The cause may mention storage internals; log it, mask it.
			log.Printf("Storage constraint violated on %s %s: %v", c.Method(), c.Path(), constraintErr.Err)
			problem.Type = problemTypeBase + "/constraint-violation"
			problem.Status = fiber.StatusConflict
			problem.Title = catalog.Message(locale, "error.title.constraint.violation")
			problem.Detail = catalog.Message(locale, "constraint.violation.detail")

		case errors.As(err, &fiberErr):
			problem.Type = problemTypeBase + "/request-error"
			problem.Status = fiberErr.Code
			problem.Title = catalog.Message(locale, "error.title.request")
			problem.Detail = fiberErr.Message

		default:
			log.Printf("Unexpected error on %s %s: %v", c.Method(), c.Path(), err)
			problem.Type = problemTypeBase + "/internal-error"
			problem.Status = fiber.StatusInternalServerError
			problem.Title = catalog.Message(locale, "error.title.internal")
			problem.Detail = catalog.Message(locale, "internal.error.detail")
		}

		if err := c.Status(problem.Status).JSON(problem); err != nil {
			return err
		}
		// JSON() stamps application/json; the problem media type wins.
		c.Set(fiber.HeaderContentType, "application/problem+json")
		return nil
	}
}

func renderViolations(catalog *i18n.Catalog, locale string, violations []apperrors.Violation) []problemError {
	out := make([]problemError, 0, len(violations))
	for _, v := range violations {
		var msg string
		if v.MessageKey == "malformed.parameter" {
			msg = catalog.Message(locale, v.MessageKey, v.Field)
		} else {
			msg = catalog.Message(locale, v.MessageKey)
		}
		pe := problemError{Field: v.Field, Message: msg}
		if v.InvalidValue != nil {
			pe.InvalidValue = fmt.Sprintf("%v", v.InvalidValue)
		}
		out = append(out, pe)
	}
	return out
}
