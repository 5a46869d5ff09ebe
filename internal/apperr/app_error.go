package apperr

import (
	"fmt"

	"github.com/tuanvumaihuynh/product-catalog/pkg/zerror"
)

const (
	ValidationErrorCode      = "VALIDATION_FAILED"
	ProductNotFoundErrorCode = "PRODUCT_NOT_FOUND"
)

var (
	ValidationErr      = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	ProductNotFoundErr = zerror.NewNotFound(ProductNotFoundErrorCode, "product not found")
)

// NewProductNotFound reports that no product has the given id.
func NewProductNotFound(id string, parent error) zerror.ZError {
	return ProductNotFoundErr.
		WithMsg(fmt.Sprintf("Product with ID %s not found", id)).
		WrapParent(parent)
}
