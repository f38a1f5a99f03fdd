package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/orderhub/backend/internal/domain/catalog"
)

// ProductListFilter narrows the product listing.
type ProductListFilter struct {
	Category *string `form:"category"`
}

// ProductResponse is a product in API responses.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
}

func toProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		Description: p.Description,
	}
}

// ProductService implements the catalog read use cases.
type ProductService struct {
	products catalog.ProductRepository
	logger   *zap.Logger
}

func NewProductService(products catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

// ListProducts returns sellable products, optionally limited to a category.
func (s *ProductService) ListProducts(ctx context.Context, filter ProductListFilter) ([]ProductResponse, error) {
	domainFilter := catalog.ProductListFilter{}
	if filter.Category != nil && *filter.Category != "" {
		domainFilter.Category = filter.Category
	}

	products, err := s.products.FindAllInStock(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, toProductResponse(&products[i]))
	}
	return responses, nil
}

// GetProduct returns one product by id.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// ListCategories returns the distinct category names.
func (s *ProductService) ListCategories(ctx context.Context) ([]string, error) {
	return s.products.Categories(ctx)
}
