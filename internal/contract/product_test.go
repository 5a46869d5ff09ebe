package contract_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/contract"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

func validProduct() contract.Product {
	return contract.Product{
		ID:          "0192f3a4-5b6c-7d8e-9f01-23456789abcd",
		Name:        "ワイヤレスマウス",
		Price:       2980,
		Description: "高精度センサー搭載の快適なワイヤレスマウス",
		InStock:     true,
		CreatedAt:   ptr.New("2025-01-02T03:04:05.123Z"),
		UpdatedAt:   ptr.New("2025-01-02T03:04:05Z"),
	}
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()

	var validationErr *contract.ValidationError
	require.ErrorAs(t, err, &validationErr)

	names := make([]string, 0, len(validationErr.Fields))
	for _, f := range validationErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidateProduct(t *testing.T) {
	t.Run("Should accept a valid product", func(t *testing.T) {
		p := validProduct()

		got, err := contract.ValidateProduct(p)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("Should accept missing timestamps and empty description", func(t *testing.T) {
		p := validProduct()
		p.CreatedAt = nil
		p.UpdatedAt = nil
		p.Description = ""

		_, err := contract.ValidateProduct(p)
		assert.NoError(t, err)
	})

	t.Run("Should reject non positive prices", func(t *testing.T) {
		for _, price := range []float64{0, -1, -0.01} {
			p := validProduct()
			p.Price = price

			_, err := contract.ValidateProduct(p)
			assert.Equal(t, []string{"price"}, fieldNames(t, err), "price %v", price)
		}
	})

	t.Run("Should reject non finite prices", func(t *testing.T) {
		for _, price := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			p := validProduct()
			p.Price = price

			_, err := contract.ValidateProduct(p)
			assert.Equal(t, []string{"price"}, fieldNames(t, err), "price %v", price)
		}
	})

	t.Run("Should reject empty name", func(t *testing.T) {
		p := validProduct()
		p.Name = ""

		_, err := contract.ValidateProduct(p)
		assert.Equal(t, []string{"name"}, fieldNames(t, err))
	})

	t.Run("Should reject malformed id", func(t *testing.T) {
		for _, id := range []string{"", "1", "not-a-uuid", "0192f3a4-5b6c-7d8e-9f01"} {
			p := validProduct()
			p.ID = id

			_, err := contract.ValidateProduct(p)
			assert.Equal(t, []string{"id"}, fieldNames(t, err), "id %q", id)
		}
	})

	t.Run("Should reject malformed timestamps", func(t *testing.T) {
		p := validProduct()
		p.CreatedAt = ptr.New("yesterday")
		p.UpdatedAt = ptr.New("2025-13-01T00:00:00Z")

		_, err := contract.ValidateProduct(p)
		assert.Equal(t, []string{"createdAt", "updatedAt"}, fieldNames(t, err))
	})

	t.Run("Should enumerate every failing field", func(t *testing.T) {
		p := contract.Product{
			ID:        "x",
			Name:      "",
			Price:     -5,
			CreatedAt: ptr.New("bad"),
		}

		_, err := contract.ValidateProduct(p)
		assert.Equal(t, []string{"id", "name", "price", "createdAt"}, fieldNames(t, err))
		assert.Contains(t, err.Error(), "price: must be greater than 0")
	})
}

func TestValidateListResponse(t *testing.T) {
	t.Run("Should accept an empty list", func(t *testing.T) {
		r := contract.NewListResponse(nil)

		got, err := contract.ValidateListResponse(r)
		require.NoError(t, err)
		assert.Equal(t, []contract.Product{}, got.Products)
		assert.Equal(t, 0, got.Total)
	})

	t.Run("Should reject invalid products with their index", func(t *testing.T) {
		bad := validProduct()
		bad.Price = 0
		r := contract.NewListResponse([]contract.Product{validProduct(), bad})

		_, err := contract.ValidateListResponse(r)
		assert.Equal(t, []string{"products[1].price"}, fieldNames(t, err))
	})

	t.Run("Should reject negative total", func(t *testing.T) {
		r := contract.ProductListResponse{Products: []contract.Product{}, Total: -1}

		_, err := contract.ValidateListResponse(r)
		assert.Equal(t, []string{"total"}, fieldNames(t, err))
	})

	t.Run("Should reject null products", func(t *testing.T) {
		r := contract.ProductListResponse{Products: nil, Total: 0}

		_, err := contract.ValidateListResponse(r)
		assert.Equal(t, []string{"products"}, fieldNames(t, err))
	})
}

func TestNewListResponse(t *testing.T) {
	products := []contract.Product{validProduct(), validProduct()}

	r := contract.NewListResponse(products)
	assert.Equal(t, products, r.Products)
	assert.Equal(t, 2, r.Total)
}

func TestToWireProduct(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 123000000, time.UTC)
	updated := time.Date(2025, 1, 2, 12, 4, 5, 0, time.FixedZone("JST", 9*60*60))
	record := model.Product{
		ID:          uuid.MustParse("0192f3a4-5b6c-7d8e-9f01-23456789abcd"),
		Name:        "USB-Cハブ",
		Price:       4500,
		Description: "7ポート搭載の多機能USBハブ",
		InStock:     false,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}

	t.Run("Should copy fields and format timestamps in UTC", func(t *testing.T) {
		p := contract.ToWireProduct(record)

		assert.Equal(t, "0192f3a4-5b6c-7d8e-9f01-23456789abcd", p.ID)
		assert.Equal(t, "USB-Cハブ", p.Name)
		assert.Equal(t, 4500.0, p.Price)
		assert.Equal(t, "7ポート搭載の多機能USBハブ", p.Description)
		assert.False(t, p.InStock)
		require.NotNil(t, p.CreatedAt)
		require.NotNil(t, p.UpdatedAt)
		assert.Equal(t, "2025-01-02T03:04:05.123Z", *p.CreatedAt)
		assert.Equal(t, "2025-01-02T03:04:05Z", *p.UpdatedAt)
	})

	t.Run("Should produce a product the contract accepts unchanged", func(t *testing.T) {
		p := contract.ToWireProduct(record)

		got, err := contract.ValidateProduct(p)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("Should be idempotent on wire shaped data", func(t *testing.T) {
		p := validProduct()
		createdAt, err := time.Parse(contract.TimestampLayout, *p.CreatedAt)
		require.NoError(t, err)
		updatedAt, err := time.Parse(contract.TimestampLayout, *p.UpdatedAt)
		require.NoError(t, err)

		again := contract.ToWireProduct(model.Product{
			ID:          uuid.MustParse(p.ID),
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			InStock:     p.InStock,
			CreatedAt:   createdAt,
			UpdatedAt:   updatedAt,
		})
		assert.Equal(t, p, again)
	})

	t.Run("Should omit zero timestamps", func(t *testing.T) {
		p := contract.ToWireProduct(model.Product{ID: uuid.New(), Name: "x", Price: 1})

		assert.Nil(t, p.CreatedAt)
		assert.Nil(t, p.UpdatedAt)
	})

	t.Run("Should keep order for lists", func(t *testing.T) {
		a := model.Product{ID: uuid.New(), Name: "a", Price: 1}
		b := model.Product{ID: uuid.New(), Name: "b", Price: 2}

		got := contract.ToWireProducts([]model.Product{a, b})
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].Name)
		assert.Equal(t, "b", got[1].Name)
		assert.Equal(t, []contract.Product{}, contract.ToWireProducts(nil))
	})
}
