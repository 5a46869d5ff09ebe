package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
)

// ErrNotFound is returned when no product matches the requested id.
var ErrNotFound = errors.New("not found")

type CreateProductParams struct {
	Name        string
	Price       float64
	Description string
	InStock     bool
}

// UpdateProductParams holds the fields to change. Nil fields are left untouched.
type UpdateProductParams struct {
	Name        *string
	Price       *float64
	Description *string
	InStock     *bool
}

// ProductRepository stores products. The store assigns ids and timestamps.
type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, params UpdateProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) (model.Product, error)
	DeleteAllProducts(ctx context.Context) (int64, error)
}

type productRepository struct {
	db db.DB
}

func NewProductRepository(db db.DB) ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{
		db: db,
	}
}

const productColumns = `id, name, price, description, in_stock, created_at, updated_at`

func (r productRepository) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[productRecord])
	if err != nil {
		return nil, fmt.Errorf("collect products: %w", err)
	}

	products := make([]model.Product, 0, len(records))
	for _, record := range records {
		product, err := recordToModelProduct(record)
		if err != nil {
			return nil, fmt.Errorf("convert product to model product: %w", err)
		}
		products = append(products, product)
	}

	return products, nil
}

func (r productRepository) GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = @id`,
		pgx.NamedArgs{"id": id})
	if err != nil {
		return model.Product{}, fmt.Errorf("query product: %w", err)
	}

	return collectOneProduct(rows)
}

func (r productRepository) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	price, err := floatToNumeric(params.Price)
	if err != nil {
		return model.Product{}, fmt.Errorf("convert price: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		INSERT INTO products (name, price, description, in_stock)
		VALUES (@name, @price, @description, @in_stock)
		RETURNING `+productColumns,
		pgx.NamedArgs{
			"name":        params.Name,
			"price":       price,
			"description": params.Description,
			"in_stock":    params.InStock,
		})
	if err != nil {
		return model.Product{}, fmt.Errorf("insert product: %w", err)
	}

	return collectOneProduct(rows)
}

func (r productRepository) UpdateProduct(ctx context.Context, id uuid.UUID, params UpdateProductParams) (model.Product, error) {
	var price *pgtype.Numeric
	if params.Price != nil {
		n, err := floatToNumeric(*params.Price)
		if err != nil {
			return model.Product{}, fmt.Errorf("convert price: %w", err)
		}
		price = &n
	}

	// clock_timestamp keeps updated_at moving forward within a transaction
	rows, err := r.db.Query(ctx, `
		UPDATE products
		SET
			name        = COALESCE(@name, name),
			price       = COALESCE(@price, price),
			description = COALESCE(@description, description),
			in_stock    = COALESCE(@in_stock, in_stock),
			updated_at  = GREATEST(clock_timestamp(), updated_at + INTERVAL '1 microsecond')
		WHERE id = @id
		RETURNING `+productColumns,
		pgx.NamedArgs{
			"id":          id,
			"name":        params.Name,
			"price":       price,
			"description": params.Description,
			"in_stock":    params.InStock,
		})
	if err != nil {
		return model.Product{}, fmt.Errorf("update product: %w", err)
	}

	return collectOneProduct(rows)
}

func (r productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) (model.Product, error) {
	rows, err := r.db.Query(ctx, `DELETE FROM products WHERE id = @id RETURNING `+productColumns,
		pgx.NamedArgs{"id": id})
	if err != nil {
		return model.Product{}, fmt.Errorf("delete product: %w", err)
	}

	return collectOneProduct(rows)
}

func (r productRepository) DeleteAllProducts(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM products`)
	if err != nil {
		return 0, fmt.Errorf("delete all products: %w", err)
	}

	return tag.RowsAffected(), nil
}

// productRecord mirrors a row of the products table.
type productRecord struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Price       pgtype.Numeric `db:"price"`
	Description string         `db:"description"`
	InStock     bool           `db:"in_stock"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func collectOneProduct(rows pgx.Rows) (model.Product, error) {
	record, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[productRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, ErrNotFound
		}
		return model.Product{}, fmt.Errorf("collect product: %w", err)
	}

	product, err := recordToModelProduct(record)
	if err != nil {
		return model.Product{}, fmt.Errorf("convert product to model product: %w", err)
	}

	return product, nil
}

func recordToModelProduct(record productRecord) (model.Product, error) {
	price, err := record.Price.Float64Value()
	if err != nil {
		return model.Product{}, fmt.Errorf("convert price to float64: %w", err)
	}
	if !price.Valid {
		return model.Product{}, errors.New("price is null")
	}

	return model.Product{
		ID:          record.ID,
		Name:        record.Name,
		Price:       price.Float64,
		Description: record.Description,
		InStock:     record.InStock,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}, nil
}

func floatToNumeric(f float64) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(strconv.FormatFloat(f, 'f', -1, 64)); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("scan numeric: %w", err)
	}
	return n, nil
}
