package catalog

import (
	"fmt"

	"cremoso-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Catalog is an in-memory snapshot of the sellable menu: the standard
// categories (flat price per category) and the special products. Handlers
// load it from the store, apply operations, and persist the outcome;
// the snapshot itself never touches the database.
type Catalog struct {
	Categories []models.MenuCategory
	Specials   []models.SpecialProduct
}

// FindCategory returns the category with the given name, or nil.
// Name matching is case-sensitive throughout the catalog.
func (c *Catalog) FindCategory(name string) *models.MenuCategory {
	for i := range c.Categories {
		if c.Categories[i].Name == name {
			return &c.Categories[i]
		}
	}
	return nil
}

// FindSpecial returns the special product with the given name, or nil.
func (c *Catalog) FindSpecial(name string) *models.SpecialProduct {
	for i := range c.Specials {
		if c.Specials[i].Name == name {
			return &c.Specials[i]
		}
	}
	return nil
}

// AddItem appends a flavor to a category. If the category does not exist
// yet it is created, which requires a price; existing categories keep
// their price and the supplied one is ignored.
func (c *Catalog) AddItem(category, item, description string, price *decimal.Decimal) error {
	cat := c.FindCategory(category)
	if cat == nil {
		if price == nil {
			return fmt.Errorf("category %q: %w", category, ErrMissingPrice)
		}
		c.Categories = append(c.Categories, models.MenuCategory{
			Name:  category,
			Price: *price,
			Items: []models.MenuItem{{Name: item, Description: description}},
		})
		return nil
	}

	for _, existing := range cat.Items {
		if existing.Name == item {
			return fmt.Errorf("%q in category %q: %w", item, category, ErrDuplicateItem)
		}
	}

	cat.Items = append(cat.Items, models.MenuItem{CategoryID: cat.ID, Name: item, Description: description})
	return nil
}

// RemoveItem deletes a flavor from a category. The category stays in
// place even when its last item is removed.
func (c *Catalog) RemoveItem(category, item string) error {
	cat := c.FindCategory(category)
	if cat == nil {
		return fmt.Errorf("category %q: %w", category, ErrCategoryNotFound)
	}

	for i, existing := range cat.Items {
		if existing.Name == item {
			cat.Items = append(cat.Items[:i], cat.Items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%q in category %q: %w", item, category, ErrItemNotFound)
}

// AddSpecial registers a special product. Product names are unique.
func (c *Catalog) AddSpecial(product models.SpecialProduct) error {
	if c.FindSpecial(product.Name) != nil {
		return fmt.Errorf("%q: %w", product.Name, ErrDuplicateProduct)
	}
	c.Specials = append(c.Specials, product)
	return nil
}

// ListCategories returns a deep copy of the standard categories, so
// callers can hold on to the result without observing later mutations.
func (c *Catalog) ListCategories() []models.MenuCategory {
	out := make([]models.MenuCategory, len(c.Categories))
	for i, cat := range c.Categories {
		out[i] = cat
		out[i].Items = append([]models.MenuItem(nil), cat.Items...)
	}
	return out
}

// ListSpecials returns a deep copy of the special products.
func (c *Catalog) ListSpecials() []models.SpecialProduct {
	out := make([]models.SpecialProduct, len(c.Specials))
	for i, p := range c.Specials {
		out[i] = p
		out[i].Sizes = append([]models.SizeOption(nil), p.Sizes...)
	}
	return out
}
