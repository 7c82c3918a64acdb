package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User - Staff or customer account
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string    `json:"-"`    // Never return this in JSON
	Role         string    `json:"role"` // 'user' or 'admin'
	CreatedAt    time.Time `json:"created_at"`
}

// MenuCategory - A standard menu grouping. Every flavor in the category
// sells at the category's single price; items carry no price of their own.
type MenuCategory struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"uniqueIndex;size:100" json:"category"`
	Price decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Items []MenuItem      `gorm:"foreignKey:CategoryID" json:"items"`
}

// MenuItem - One flavor inside a category
type MenuItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CategoryID  uint   `json:"-"`
	Name        string `gorm:"size:120" json:"name"`
	Description string `json:"description"`
}

// SpecialProduct - Products ordered through the special flow (cakes,
// brownies...). Priced by chosen size when Sizes is non-empty, otherwise
// by BasePrice. DescriptionRequired marks free-text products ("Diversos")
// that must be described by the customer.
type SpecialProduct struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	Name                string          `gorm:"uniqueIndex;size:100" json:"name"`
	BasePrice           decimal.Decimal `gorm:"type:decimal(10,2)" json:"basePrice"`
	Sizes               []SizeOption    `gorm:"foreignKey:ProductID" json:"sizes,omitempty"`
	DescriptionRequired bool            `json:"description_required"`
}

// SizeOption - One selectable size of a sized special product
type SizeOption struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ProductID uint            `json:"-"`
	Name      string          `gorm:"size:50" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
}

// Order - A submitted order. Immutable once created: total and unit
// prices are snapshots taken at submission time.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderNumber string          `gorm:"uniqueIndex;size:36" json:"order_number"`
	User        string          `gorm:"index;size:50" json:"user"`
	Lines       []OrderLine     `gorm:"foreignKey:OrderID" json:"orderDetails"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalPrice"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Detail kinds stored on an order line. Which one applies depends on the
// product ordered: cakes carry size/flavors, "Diversos" carries a free-text
// description, other specials may carry plain notes.
const (
	DetailNone        = ""
	DetailCake        = "cake"
	DetailDescription = "description"
	DetailNotes       = "notes"
)

// OrderLine - One priced entry within an order
type OrderLine struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `json:"-"`
	ItemName  string          `gorm:"size:120" json:"item"`
	Category  string          `gorm:"size:100" json:"category"`
	Quantity  int             `json:"qty"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"pricePerUnit"`
	LineTotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalPrice"`

	DetailKind  string `gorm:"size:16" json:"-"`
	Size        string `gorm:"size:50" json:"size,omitempty"`
	Flavor1     string `gorm:"size:120" json:"flavor1,omitempty"`
	Flavor2     string `gorm:"size:120" json:"flavor2,omitempty"`
	Topping     string `gorm:"size:120" json:"topping,omitempty"`
	Description string `json:"description,omitempty"`
	Notes       string `json:"additionalNotes,omitempty"`
}
