package validator_test

import (
	"errors"
	"math"
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
)

type item struct {
	Name  string  `json:"name" validate:"required,min=2"`
	Price float64 `json:"price" validate:"finite,gt=0"`
	At    *string `json:"at,omitempty" validate:"omitnil,iso8601"`
}

type basket struct {
	Items []item `json:"items" validate:"required,dive"`
}

func fieldErrors(t *testing.T, err error) govalidator.ValidationErrors {
	t.Helper()

	require.True(t, validator.IsValidationError(err))
	var errs govalidator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	return errs
}

func TestDefaultValidator(t *testing.T) {
	v := validator.MustNewDefaultValidator()

	t.Run("Should accept a valid struct", func(t *testing.T) {
		at := "2025-01-02T03:04:05.123456Z"
		assert.NoError(t, v.Validate(item{Name: "ab", Price: 1, At: &at}))
	})

	t.Run("Should report json paths without the root struct", func(t *testing.T) {
		err := v.Validate(basket{Items: []item{
			{Name: "ab", Price: 1},
			{Name: "ab", Price: math.NaN()},
		}})

		errs := fieldErrors(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "items[1].price", validator.FieldPath(errs[0]))
		assert.Equal(t, "must be a finite number", validator.ValidationErrorMessage(errs[0]))
	})

	t.Run("Should describe each rule", func(t *testing.T) {
		bad := "yesterday"
		err := v.Validate(item{Name: "a", Price: 0, At: &bad})

		errs := fieldErrors(t, err)
		require.Len(t, errs, 3)

		messages := map[string]string{}
		for _, fe := range errs {
			messages[validator.FieldPath(fe)] = validator.ValidationErrorMessage(fe)
		}
		assert.Equal(t, map[string]string{
			"name":  "must be at least 2 characters long",
			"price": "must be greater than 0",
			"at":    "must be a valid ISO-8601 timestamp",
		}, messages)
	})
}
