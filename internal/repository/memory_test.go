package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

func TestMemoryProductRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should assign id and timestamps on create", func(t *testing.T) {
		repo := repository.NewMemoryProductRepository()

		p, err := repo.CreateProduct(ctx, repository.CreateProductParams{Name: "a", Price: 1, InStock: true})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
		assert.Equal(t, p.CreatedAt, p.UpdatedAt)

		got, err := repo.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("Should list in insertion order", func(t *testing.T) {
		repo := repository.NewMemoryProductRepository()
		for _, name := range []string{"a", "b", "c"} {
			_, err := repo.CreateProduct(ctx, repository.CreateProductParams{Name: name, Price: 1})
			require.NoError(t, err)
		}

		products, err := repo.ListAllProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, "a", products[0].Name)
		assert.Equal(t, "b", products[1].Name)
		assert.Equal(t, "c", products[2].Name)
	})

	t.Run("Should update only provided fields and move updated_at forward", func(t *testing.T) {
		repo := repository.NewMemoryProductRepository()
		p, err := repo.CreateProduct(ctx, repository.CreateProductParams{Name: "a", Price: 1, Description: "d", InStock: true})
		require.NoError(t, err)

		updated, err := repo.UpdateProduct(ctx, p.ID, repository.UpdateProductParams{InStock: ptr.New(false)})
		require.NoError(t, err)

		assert.Equal(t, "a", updated.Name)
		assert.Equal(t, 1.0, updated.Price)
		assert.Equal(t, "d", updated.Description)
		assert.False(t, updated.InStock)
		assert.Equal(t, p.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(p.UpdatedAt))
	})

	t.Run("Should return not found for unknown ids", func(t *testing.T) {
		repo := repository.NewMemoryProductRepository()
		id := uuid.New()

		_, err := repo.GetProduct(ctx, id)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		_, err = repo.UpdateProduct(ctx, id, repository.UpdateProductParams{Name: ptr.New("x")})
		assert.ErrorIs(t, err, repository.ErrNotFound)

		_, err = repo.DeleteProduct(ctx, id)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Should delete one and all", func(t *testing.T) {
		repo := repository.NewMemoryProductRepository()
		a, err := repo.CreateProduct(ctx, repository.CreateProductParams{Name: "a", Price: 1})
		require.NoError(t, err)
		_, err = repo.CreateProduct(ctx, repository.CreateProductParams{Name: "b", Price: 1})
		require.NoError(t, err)
		_, err = repo.CreateProduct(ctx, repository.CreateProductParams{Name: "c", Price: 1})
		require.NoError(t, err)

		deleted, err := repo.DeleteProduct(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a, deleted)

		products, err := repo.ListAllProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 2)

		n, err := repo.DeleteAllProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		products, err = repo.ListAllProducts(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Should return itself from WithDB", func(t *testing.T) {
		repo := repository.NewMemoryProductRepository()
		assert.Same(t, repo, repo.WithDB(nil))
	})
}
