package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/contract"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

type CreateProductParams struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"finite,gt=0"`
	Description string  `json:"description"`
	// InStock defaults to true when nil.
	InStock *bool `json:"inStock"`
}

type UpdateProductParams struct {
	Name        *string  `json:"name" validate:"omitnil,min=1"`
	Price       *float64 `json:"price" validate:"omitnil,finite,gt=0"`
	Description *string  `json:"description"`
	InStock     *bool    `json:"inStock"`
}

// ProductService exposes the product catalog. Products are returned in their wire shape.
//
// Operations on an id that does not exist, including ids that are not valid
// UUIDs, fail with an error matching apperr.ProductNotFoundErr.
type ProductService interface {
	ListAllProducts(ctx context.Context) ([]contract.Product, error)
	GetProduct(ctx context.Context, id string) (contract.Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (contract.Product, error)
	UpdateProduct(ctx context.Context, id string, params UpdateProductParams) (contract.Product, error)
	DeleteProduct(ctx context.Context, id string) (contract.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{
		productRepo: productRepo,
	}
}

func (s *productService) ListAllProducts(ctx context.Context) ([]contract.Product, error) {
	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list all products: %w", err)
	}

	return contract.ToWireProducts(products), nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (contract.Product, error) {
	productID, err := parseProductID(id)
	if err != nil {
		return contract.Product{}, err
	}

	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		return contract.Product{}, translateRepoErr(err, id, "product repository get product")
	}

	return contract.ToWireProduct(product), nil
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (contract.Product, error) {
	if err := contract.Validate(params); err != nil {
		return contract.Product{}, err
	}

	product, err := s.productRepo.CreateProduct(ctx, repository.CreateProductParams{
		Name:        params.Name,
		Price:       params.Price,
		Description: params.Description,
		InStock:     ptr.Deref(params.InStock, true),
	})
	if err != nil {
		return contract.Product{}, fmt.Errorf("product repository create product: %w", err)
	}

	return contract.ToWireProduct(product), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, params UpdateProductParams) (contract.Product, error) {
	productID, err := parseProductID(id)
	if err != nil {
		return contract.Product{}, err
	}

	if err := contract.Validate(params); err != nil {
		return contract.Product{}, err
	}

	product, err := s.productRepo.UpdateProduct(ctx, productID, repository.UpdateProductParams{
		Name:        params.Name,
		Price:       params.Price,
		Description: params.Description,
		InStock:     params.InStock,
	})
	if err != nil {
		return contract.Product{}, translateRepoErr(err, id, "product repository update product")
	}

	return contract.ToWireProduct(product), nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) (contract.Product, error) {
	productID, err := parseProductID(id)
	if err != nil {
		return contract.Product{}, err
	}

	product, err := s.productRepo.DeleteProduct(ctx, productID)
	if err != nil {
		return contract.Product{}, translateRepoErr(err, id, "product repository delete product")
	}

	return contract.ToWireProduct(product), nil
}

// parseProductID maps ids that cannot exist in the store to not found.
func parseProductID(id string) (uuid.UUID, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperr.NewProductNotFound(id, err)
	}
	return productID, nil
}

// translateRepoErr names the id as the caller sent it.
func translateRepoErr(err error, id string, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NewProductNotFound(id, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
