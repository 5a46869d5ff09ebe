package contract

// NewListResponse pairs products with their count.
func NewListResponse(products []Product) ProductListResponse {
	if products == nil {
		products = []Product{}
	}
	return ProductListResponse{
		Products: products,
		Total:    len(products),
	}
}
