package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is the persisted representation of a catalog product.
type Product struct {
	ID          uuid.UUID
	Name        string
	Price       float64
	Description string
	InStock     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
