// Package seed loads the fixed demo catalog.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
)

// Products is the demo catalog inserted by Run.
var Products = []repository.CreateProductParams{
	{
		Name:        "ワイヤレスマウス",
		Price:       2980,
		Description: "高精度センサー搭載の快適なワイヤレスマウス",
		InStock:     true,
	},
	{
		Name:        "メカニカルキーボード",
		Price:       12800,
		Description: "静音性に優れたメカニカルキーボード",
		InStock:     true,
	},
	{
		Name:        "USB-Cハブ",
		Price:       4500,
		Description: "7ポート搭載の多機能USBハブ",
		InStock:     false,
	},
	{
		Name:        "ノートPCスタンド",
		Price:       3200,
		Description: "高さ調節可能なアルミ製スタンド",
		InStock:     true,
	},
}

// Run removes every product and inserts Products.
func Run(ctx context.Context, logger *slog.Logger, repo repository.ProductRepository) ([]model.Product, error) {
	deleted, err := repo.DeleteAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository delete all products: %w", err)
	}
	logger.InfoContext(ctx, "cleared products", slog.Int64("count", deleted))

	created := make([]model.Product, 0, len(Products))
	for _, params := range Products {
		p, err := repo.CreateProduct(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("product repository create product %q: %w", params.Name, err)
		}
		logger.InfoContext(ctx, "created product", slog.String("product_id", p.ID.String()))
		created = append(created, p)
	}

	return created, nil
}
