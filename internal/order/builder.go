package order

import (
	"fmt"
	"strings"

	"cremoso-backend/internal/catalog"
	"cremoso-backend/internal/models"

	"github.com/shopspring/decimal"
)

// SpecialOrderCategory is the fixed category label recorded on every
// special-product line, keeping them apart from the standard categories
// in history and aggregation.
const SpecialOrderCategory = "Pedido Especial"

// StandardSelection picks a flavor from a standard category. The unit
// price is always the category's price.
type StandardSelection struct {
	Category string
	Item     string
	Quantity int
}

// SpecialSelection picks a special product. Size is required for sized
// products and ignored for flat ones.
type SpecialSelection struct {
	Product  string
	Quantity int
	Size     string
	Details  Details
}

// BuildStandardLine prices a standard selection against the catalog.
// Pure: the catalog is only read, never retained or modified.
func BuildStandardLine(cat *catalog.Catalog, sel StandardSelection) (models.OrderLine, error) {
	if sel.Quantity < 1 {
		return models.OrderLine{}, fmt.Errorf("quantity %d: %w", sel.Quantity, ErrInvalidQuantity)
	}

	category := cat.FindCategory(sel.Category)
	if category == nil {
		return models.OrderLine{}, fmt.Errorf("category %q: %w", sel.Category, catalog.ErrCategoryNotFound)
	}

	found := false
	for _, item := range category.Items {
		if item.Name == sel.Item {
			found = true
			break
		}
	}
	if !found {
		return models.OrderLine{}, fmt.Errorf("%q in category %q: %w", sel.Item, sel.Category, catalog.ErrItemNotFound)
	}

	qty := decimal.NewFromInt(int64(sel.Quantity))
	return models.OrderLine{
		ItemName:  sel.Item,
		Category:  category.Name,
		Quantity:  sel.Quantity,
		UnitPrice: category.Price,
		LineTotal: category.Price.Mul(qty),
	}, nil
}

// BuildSpecialLine prices a special selection against the catalog and
// validates the detail payload the product class requires.
func BuildSpecialLine(cat *catalog.Catalog, sel SpecialSelection) (models.OrderLine, error) {
	if sel.Quantity < 1 {
		return models.OrderLine{}, fmt.Errorf("quantity %d: %w", sel.Quantity, ErrInvalidQuantity)
	}

	product := cat.FindSpecial(sel.Product)
	if product == nil {
		return models.OrderLine{}, fmt.Errorf("special product %q: %w", sel.Product, catalog.ErrItemNotFound)
	}

	var unitPrice decimal.Decimal
	details := sel.Details

	if len(product.Sizes) > 0 {
		// Sized product: the chosen size sets the unit price and a
		// first flavor must be given.
		size, ok := findSize(product.Sizes, sel.Size)
		if !ok {
			return models.OrderLine{}, fmt.Errorf("size %q of %q: %w", sel.Size, product.Name, ErrInvalidSize)
		}
		unitPrice = size.Price

		cake, ok := details.(CakeDetails)
		if !ok || strings.TrimSpace(cake.Flavor1) == "" {
			return models.OrderLine{}, fmt.Errorf("%q needs at least one flavor: %w", product.Name, ErrMissingDetail)
		}
		cake.Size = size.Name
		details = cake
	} else {
		unitPrice = product.BasePrice

		if product.DescriptionRequired {
			desc, ok := details.(DescriptionDetails)
			if !ok || strings.TrimSpace(desc.Description) == "" {
				return models.OrderLine{}, fmt.Errorf("%q needs a description: %w", product.Name, ErrMissingDetail)
			}
		}
	}

	qty := decimal.NewFromInt(int64(sel.Quantity))
	line := models.OrderLine{
		ItemName:  product.Name,
		Category:  SpecialOrderCategory,
		Quantity:  sel.Quantity,
		UnitPrice: unitPrice,
		LineTotal: unitPrice.Mul(qty),
	}
	applyDetails(&line, details)
	return line, nil
}

func findSize(sizes []models.SizeOption, name string) (models.SizeOption, bool) {
	for _, s := range sizes {
		if s.Name == name {
			return s, true
		}
	}
	return models.SizeOption{}, false
}
