package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/orderhub/backend/internal/domain/shared"
)

// Product is a sellable catalog entry.
type Product struct {
	shared.BaseEntity
	Name        string          `gorm:"size:200;not null" json:"name"`
	Category    string          `gorm:"size:100;not null;index" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	ImageURL    string          `gorm:"size:500" json:"image_url"`
	Description string          `gorm:"size:1000" json:"description"`
}

func (Product) TableName() string { return "products" }

// InStock reports whether the product can currently be sold.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// ProductListFilter narrows product listings. A nil Category means all
// categories; only in-stock products are ever listed.
type ProductListFilter struct {
	Category *string
}

// ProductRepository is the persistence port for the catalog.
type ProductRepository interface {
	// FindAllInStock returns sellable products ordered by category, then name.
	FindAllInStock(ctx context.Context, filter ProductListFilter) ([]Product, error)
	FindByID(ctx context.Context, id int64) (*Product, error)
	// Categories returns the distinct category names in alphabetical order.
	Categories(ctx context.Context) ([]string, error)
}
