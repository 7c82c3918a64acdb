package history

import (
	"testing"
	"time"

	"cremoso-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local)
}

func testOrders() []models.Order {
	return []models.Order{
		{
			ID: 1, User: "maria", CreatedAt: at(2026, 3, 10, 9),
			TotalPrice: decimal.NewFromInt(36),
			Lines: []models.OrderLine{
				{ItemName: "Chocolate", Category: "Sorvete", Quantity: 3},
			},
		},
		{
			ID: 2, User: "joao", CreatedAt: at(2026, 3, 12, 18),
			TotalPrice: decimal.NewFromInt(30),
			Lines: []models.OrderLine{
				{ItemName: "Bolo", Category: "Pedido Especial", Quantity: 2, Flavor1: "Ninho", Flavor2: "Nutella"},
			},
		},
		{
			ID: 3, User: "maria", CreatedAt: at(2026, 4, 1, 12),
			TotalPrice: decimal.NewFromInt(10),
			Lines: []models.OrderLine{
				{ItemName: "Açaí", Category: "Sabores Especiais +", Quantity: 1},
			},
		},
	}
}

func ids(orders []models.Order) []uint {
	out := make([]uint, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func TestFilterNoCriteriaPassesEverything(t *testing.T) {
	orders := testOrders()
	got := Filter(orders, Criteria{})
	assert.Equal(t, []uint{1, 2, 3}, ids(got))
}

func TestFilterDateRangeIsInclusiveByDay(t *testing.T) {
	orders := testOrders()

	// Both ends land exactly on order days; the time of day must not matter
	start := at(2026, 3, 10, 23)
	end := at(2026, 3, 12, 0)
	got := Filter(orders, Criteria{Start: &start, End: &end})
	assert.Equal(t, []uint{1, 2}, ids(got))
}

func TestFilterDateRangeExcludes(t *testing.T) {
	orders := testOrders()

	start := at(2026, 3, 11, 0)
	end := at(2026, 3, 31, 0)
	got := Filter(orders, Criteria{Start: &start, End: &end})
	assert.Equal(t, []uint{2}, ids(got))
}

func TestFilterOpenEndedRange(t *testing.T) {
	orders := testOrders()

	start := at(2026, 3, 12, 0)
	got := Filter(orders, Criteria{Start: &start})
	assert.Equal(t, []uint{2, 3}, ids(got))

	end := at(2026, 3, 10, 0)
	got = Filter(orders, Criteria{End: &end})
	assert.Equal(t, []uint{1}, ids(got))
}

func TestFilterByCategory(t *testing.T) {
	orders := testOrders()

	got := Filter(orders, Criteria{Category: "Pedido Especial"})
	assert.Equal(t, []uint{2}, ids(got))

	// The sentinel and the empty string both mean "all categories"
	assert.Len(t, Filter(orders, Criteria{Category: AllCategories}), 3)
	assert.Len(t, Filter(orders, Criteria{Category: ""}), 3)

	// Category matching is exact
	assert.Empty(t, Filter(orders, Criteria{Category: "sorvete"}))
}

func TestFilterByFlavor(t *testing.T) {
	orders := testOrders()

	// Case-insensitive substring over item names...
	got := Filter(orders, Criteria{Flavor: "choco"})
	assert.Equal(t, []uint{1}, ids(got))

	// ...and over both cake flavor fields
	got = Filter(orders, Criteria{Flavor: "NUTELLA"})
	assert.Equal(t, []uint{2}, ids(got))

	got = Filter(orders, Criteria{Flavor: "ninho"})
	assert.Equal(t, []uint{2}, ids(got))

	// Blank matches everything
	assert.Len(t, Filter(orders, Criteria{Flavor: "   "}), 3)
}

// Combining criteria must behave like intersecting the one-criterion
// filters.
func TestFilterComposition(t *testing.T) {
	orders := testOrders()
	start := at(2026, 3, 1, 0)
	end := at(2026, 3, 31, 0)
	criteria := Criteria{Start: &start, End: &end, Category: "Pedido Especial", Flavor: "bolo"}

	combined := Filter(orders, criteria)

	byDate := Filter(orders, Criteria{Start: &start, End: &end})
	byCategory := Filter(orders, Criteria{Category: criteria.Category})
	byFlavor := Filter(orders, Criteria{Flavor: criteria.Flavor})

	expected := intersect(intersect(byDate, byCategory), byFlavor)
	assert.Equal(t, ids(expected), ids(combined))
	assert.Equal(t, []uint{2}, ids(combined))
}

func intersect(a, b []models.Order) []models.Order {
	in := make(map[uint]bool, len(b))
	for _, o := range b {
		in[o.ID] = true
	}
	var out []models.Order
	for _, o := range a {
		if in[o.ID] {
			out = append(out, o)
		}
	}
	return out
}

// Filtering an already-matching set again with the same criteria must
// return the identical set.
func TestFilterIsIdempotent(t *testing.T) {
	orders := testOrders()
	criteria := Criteria{Category: "Sorvete", Flavor: "choc"}

	once := Filter(orders, criteria)
	twice := Filter(once, criteria)
	require.Equal(t, once, twice)
}

func TestFilterPreservesInputOrder(t *testing.T) {
	orders := testOrders()
	// Reverse the input; the output must follow suit, no re-sort
	reversed := []models.Order{orders[2], orders[1], orders[0]}
	got := Filter(reversed, Criteria{})
	assert.Equal(t, []uint{3, 2, 1}, ids(got))
}

func TestFilterEmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, Criteria{Category: "Sorvete"}))
}
