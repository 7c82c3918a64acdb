package analytics

import (
	"sort"
	"time"

	"cremoso-backend/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultTopN is how many best sellers the dashboard view shows.
const DefaultTopN = 5

// DayRevenue is the summed order total for one calendar day.
type DayRevenue struct {
	Day   time.Time       `json:"-"`
	Label string          `json:"day"` // dd/mm/yyyy, for display
	Total decimal.Decimal `json:"total"`
}

// ItemSales is the summed quantity sold for one (item, category) pair.
type ItemSales struct {
	Item     string `json:"item"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// RevenueByDay groups the orders by the calendar day they were created
// (in each order's own location, no timezone normalization) and sums the
// order totals. The result is sorted chronologically by the actual day
// value, never by its formatted string.
func RevenueByDay(orders []models.Order) []DayRevenue {
	// Bucket by ISO day string so orders in the same day always land in
	// one bucket, but keep the real day value for sorting.
	buckets := make(map[string]*DayRevenue)
	for _, o := range orders {
		day := dayOf(o.CreatedAt)
		k := day.Format("2006-01-02")
		if _, ok := buckets[k]; !ok {
			buckets[k] = &DayRevenue{Day: day, Label: day.Format("02/01/2006")}
		}
		buckets[k].Total = buckets[k].Total.Add(o.TotalPrice)
	}

	out := make([]DayRevenue, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day.Before(out[j].Day)
	})
	return out
}

// TopItems ranks (item, category) pairs by total quantity sold across
// all lines of all orders and returns the first n. Ties keep the order
// in which the pair was first seen.
func TopItems(orders []models.Order, n int) []ItemSales {
	ranked := SalesSummary(orders)
	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// SalesSummary is the unbounded form of TopItems, used for the
// downloadable sales report: every (category, item) pair with its total
// quantity, sorted descending by quantity.
func SalesSummary(orders []models.Order) []ItemSales {
	type key struct{ item, category string }

	totals := make(map[key]int)
	var seen []key
	for _, o := range orders {
		for _, line := range o.Lines {
			k := key{line.ItemName, line.Category}
			if _, ok := totals[k]; !ok {
				seen = append(seen, k)
			}
			totals[k] += line.Quantity
		}
	}

	out := make([]ItemSales, 0, len(seen))
	for _, k := range seen {
		out = append(out, ItemSales{Item: k.item, Category: k.category, Quantity: totals[k]})
	}
	// Stable sort: equal quantities stay in first-encountered order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Quantity > out[j].Quantity
	})
	return out
}

// TotalRevenue sums the stored order totals.
func TotalRevenue(orders []models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalPrice)
	}
	return total
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
