// Package contract defines the wire shapes exchanged with API consumers and
// the rules every value crossing the boundary must satisfy.
package contract

import (
	"errors"
	"fmt"
	"strings"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
)

// Product is the wire representation of a catalog product.
type Product struct {
	ID          string  `json:"id" validate:"required,uuid"`
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"finite,gt=0"`
	Description string  `json:"description"`
	InStock     bool    `json:"inStock"`
	CreatedAt   *string `json:"createdAt,omitempty" validate:"omitnil,iso8601"`
	UpdatedAt   *string `json:"updatedAt,omitempty" validate:"omitnil,iso8601"`
}

// ProductListResponse is the wire representation of a product listing.
type ProductListResponse struct {
	Products []Product `json:"products" validate:"required,dive"`
	Total    int       `json:"total" validate:"gte=0"`
}

// FieldError describes one violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field of a value that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var defaultValidator = validator.MustNewDefaultValidator()

// ValidateProduct checks p against the product contract.
func ValidateProduct(p Product) (Product, error) {
	if err := Validate(p); err != nil {
		return Product{}, err
	}
	return p, nil
}

// ValidateListResponse checks r and every product it contains.
func ValidateListResponse(r ProductListResponse) (ProductListResponse, error) {
	if err := Validate(r); err != nil {
		return ProductListResponse{}, err
	}
	return r, nil
}

// Validate runs the struct rules on s and converts failures into a *ValidationError.
func Validate(s any) error {
	err := defaultValidator.Validate(s)
	if err == nil {
		return nil
	}

	var validationErrs govalidator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	return NewValidationError(validationErrs)
}

// NewValidationError converts validator errors into a *ValidationError.
func NewValidationError(errs govalidator.ValidationErrors) *ValidationError {
	fields := make([]FieldError, len(errs))
	for i, fe := range errs {
		fields[i] = FieldError{
			Field:   validator.FieldPath(fe),
			Message: validator.ValidationErrorMessage(fe),
		}
	}
	return &ValidationError{Fields: fields}
}
