package order

import (
	"fmt"
	"strings"
	"time"

	"cremoso-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// New assembles the submitted lines into an order record. The grand
// total is the exact decimal sum of the line totals, computed here once;
// the order is never recomputed after it is stored. Persisting the
// returned record is the caller's job (one transaction, all lines or
// nothing).
func New(user string, lines []models.OrderLine, now time.Time) (models.Order, error) {
	if strings.TrimSpace(user) == "" {
		return models.Order{}, fmt.Errorf("blank user: %w", ErrEmptyOrder)
	}
	if len(lines) == 0 {
		return models.Order{}, fmt.Errorf("no lines: %w", ErrEmptyOrder)
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}

	return models.Order{
		OrderNumber: uuid.New().String(),
		User:        user,
		Lines:       lines,
		TotalPrice:  total,
		CreatedAt:   now,
	}, nil
}
