package history

import (
	"strings"
	"time"

	"cremoso-backend/internal/models"
)

// AllCategories is the category filter value that matches every order.
// An empty category behaves the same way.
const AllCategories = "Todas"

// Criteria narrows an order history. Every field is optional and the
// present ones must all match (logical AND). Dates are compared at day
// granularity: Start counts from 00:00:00 of its day, End up to
// 23:59:59.999 of its day.
type Criteria struct {
	Start    *time.Time
	End      *time.Time
	Category string
	Flavor   string
}

// Filter returns the orders matching the criteria, preserving the
// relative order of the input. The input is only read; callers keep
// ownership of the slice and its orders.
func Filter(orders []models.Order, c Criteria) []models.Order {
	matched := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if matches(o, c) {
			matched = append(matched, o)
		}
	}
	return matched
}

func matches(o models.Order, c Criteria) bool {
	if c.Start != nil && o.CreatedAt.Before(startOfDay(*c.Start)) {
		return false
	}
	if c.End != nil && o.CreatedAt.After(endOfDay(*c.End)) {
		return false
	}
	if !matchesCategory(o, c.Category) {
		return false
	}
	return matchesFlavor(o, c.Flavor)
}

func matchesCategory(o models.Order, category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	for _, line := range o.Lines {
		if line.Category == category {
			return true
		}
	}
	return false
}

// matchesFlavor does a case-insensitive substring search over each
// line's item name and both cake flavor fields.
func matchesFlavor(o models.Order, flavor string) bool {
	needle := strings.ToLower(strings.TrimSpace(flavor))
	if needle == "" {
		return true
	}
	for _, line := range o.Lines {
		if strings.Contains(strings.ToLower(line.ItemName), needle) ||
			strings.Contains(strings.ToLower(line.Flavor1), needle) ||
			strings.Contains(strings.ToLower(line.Flavor2), needle) {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
