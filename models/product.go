package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. SKU is assigned on first insert when the
// client does not supply one (see GenerateSKU).
type Product struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	SKU           *string         `json:"sku" gorm:"size:50;uniqueIndex"`
	Name          string          `json:"name" gorm:"size:255;not null"`
	Description   *string         `json:"description" gorm:"type:text"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CategoryID    uint            `json:"-" gorm:"not null;index"`
	Category      Category        `json:"category" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	StockQuantity int             `json:"stock_quantity" gorm:"not null;default:0"`
	ImageURL      *string         `json:"image_url" gorm:"size:500"`
	CreatedDate   time.Time       `json:"created_date" gorm:"autoCreateTime"`
}

func (p *Product) TableName() string {
	return "products"
}

// GenerateSKU derives a SKU from the product name and its assigned id:
// a fixed prefix, the first three characters of the name upper-cased,
// and the record id. Callers must only invoke it once the id exists,
// so the id segment is never empty.
func GenerateSKU(name string, id uint) string {
	runes := []rune(strings.ToUpper(name))
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return fmt.Sprintf("SKU-%s-%d", string(runes), id)
}

// ProductFilters holds the predicates applied to a product listing.
// Nil / empty fields add no predicate; set fields are AND-combined.
type ProductFilters struct {
	MinPrice       *decimal.Decimal
	MaxPrice       *decimal.Decimal
	CategoryID     *uint
	StockAvailable *bool
	Search         string
}
