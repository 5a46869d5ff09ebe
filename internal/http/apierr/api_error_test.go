package apierr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/contract"
	"github.com/tuanvumaihuynh/product-catalog/internal/http/apierr"
)

func TestNew(t *testing.T) {
	t.Run("Should map not found", func(t *testing.T) {
		err := fmt.Errorf("get: %w", apperr.ProductNotFoundErr.WrapParent(errors.New("no rows")))

		res := apierr.New(err)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Equal(t, apperr.ProductNotFoundErrorCode, res.Code)
		assert.Equal(t, "product not found", res.Message)
	})

	t.Run("Should keep the message naming the id", func(t *testing.T) {
		res := apierr.New(apperr.NewProductNotFound("123", nil))
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Equal(t, "Product with ID 123 not found", res.Message)
	})

	t.Run("Should list every field of a validation error", func(t *testing.T) {
		err := &contract.ValidationError{Fields: []contract.FieldError{
			{Field: "name", Message: "field is required"},
			{Field: "price", Message: "must be greater than 0"},
		}}

		res := apierr.New(fmt.Errorf("create: %w", err))
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, apperr.ValidationErrorCode, res.Code)
		assert.Len(t, res.Details, 2)
	})

	t.Run("Should map validation zerror to bad request", func(t *testing.T) {
		res := apierr.New(apperr.ValidationErr.WrapParent(errors.New("bad json")))
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, apperr.ValidationErrorCode, res.Code)
	})

	t.Run("Should hide unknown errors", func(t *testing.T) {
		res := apierr.New(errors.New("connection refused"))
		assert.Equal(t, apierr.InternalServerErr, res)
	})
}
