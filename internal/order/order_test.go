package order

import (
	"testing"
	"time"

	"cremoso-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(total string) models.OrderLine {
	t := dec(total)
	return models.OrderLine{ItemName: "x", Quantity: 1, UnitPrice: t, LineTotal: t}
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 3, 5, 14, 30, 0, 0, time.Local)
	lines := []models.OrderLine{line("36.00"), line("14.50")}

	ord, err := New("maria", lines, now)
	require.NoError(t, err)

	assert.Equal(t, "maria", ord.User)
	assert.NotEmpty(t, ord.OrderNumber)
	assert.Equal(t, now, ord.CreatedAt)
	assert.True(t, ord.TotalPrice.Equal(dec("50.50")), "total %s", ord.TotalPrice)
	assert.Len(t, ord.Lines, 2)
}

func TestNewOrderEmptyLines(t *testing.T) {
	_, err := New("maria", nil, time.Now())
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestNewOrderBlankUser(t *testing.T) {
	_, err := New("  ", []models.OrderLine{line("5")}, time.Now())
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

// The grand total must not depend on the order the lines are summed in.
func TestTotalIsOrderIndependent(t *testing.T) {
	a := []models.OrderLine{line("0.10"), line("0.20"), line("99999.99")}
	b := []models.OrderLine{a[2], a[0], a[1]}

	oa, err := New("u", a, time.Now())
	require.NoError(t, err)
	ob, err := New("u", b, time.Now())
	require.NoError(t, err)

	assert.True(t, oa.TotalPrice.Equal(ob.TotalPrice))
	assert.True(t, oa.TotalPrice.Equal(dec("100000.29")))
}

func TestTotalEqualsSumOfLineTotals(t *testing.T) {
	lines := []models.OrderLine{line("1.11"), line("2.22"), line("3.33")}
	ord, err := New("u", lines, time.Now())
	require.NoError(t, err)

	sum := decimal.Zero
	for _, l := range ord.Lines {
		sum = sum.Add(l.LineTotal)
	}
	assert.True(t, ord.TotalPrice.Equal(sum))
}
