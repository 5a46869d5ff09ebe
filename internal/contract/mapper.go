package contract

import (
	"time"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

// TimestampLayout is the ISO-8601 layout used for timestamps on the wire.
const TimestampLayout = time.RFC3339Nano

// ToWireProduct converts a persisted product into its wire representation.
// Zero timestamps are omitted.
func ToWireProduct(p model.Product) Product {
	return Product{
		ID:          p.ID.String(),
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		InStock:     p.InStock,
		CreatedAt:   formatTimestamp(p.CreatedAt),
		UpdatedAt:   formatTimestamp(p.UpdatedAt),
	}
}

// ToWireProducts converts every persisted product, keeping order.
func ToWireProducts(products []model.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, ToWireProduct(p))
	}
	return out
}

func formatTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	return ptr.New(t.UTC().Format(TimestampLayout))
}
