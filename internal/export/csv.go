// Package export renders order and sales data as CSV the way the shop's
// spreadsheets expect it: semicolon separator, UTF-8 BOM so Excel opens
// it correctly, and "R$" amounts with a comma decimal separator.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"cremoso-backend/internal/analytics"
	"cremoso-backend/internal/models"

	"github.com/shopspring/decimal"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Currency formats a decimal as Brazilian currency, e.g. "R$12,50".
func Currency(d decimal.Decimal) string {
	return "R$" + strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// Filename builds the download name used by the shop, e.g.
// "pedido_maria_05-03-2026.csv".
func Filename(prefix, user string, t time.Time) string {
	if user == "" {
		user = "usuario"
	}
	return fmt.Sprintf("%s_%s_%s.csv", prefix, user, t.Format("02-01-2006"))
}

// OrderCSV writes an order confirmation: one row per line with its
// details, a blank row, then the grand total.
func OrderCSV(w io.Writer, lines []models.OrderLine, total decimal.Decimal) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	header := []string{
		"Item", "Categoria", "Quantidade", "Preço Unitário", "Preço Total",
		"Tamanho", "Sabor 1", "Sabor 2", "Cobertura", "Descrição", "Notas Adicionais",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, line := range lines {
		row := []string{
			line.ItemName,
			line.Category,
			fmt.Sprintf("%d", line.Quantity),
			Currency(line.UnitPrice),
			Currency(line.LineTotal),
			line.Size,
			line.Flavor1,
			line.Flavor2,
			line.Topping,
			line.Description,
			line.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	if err := cw.Write(make([]string, len(header))); err != nil {
		return err
	}
	totalRow := make([]string, len(header))
	totalRow[0] = "Total"
	totalRow[4] = Currency(total)
	if err := cw.Write(totalRow); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

// SummaryCSV writes the sales summary report: total quantity sold per
// (category, item) pair.
func SummaryCSV(w io.Writer, rows []analytics.ItemSales) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write([]string{"Categoria", "Item", "Quantidade"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Category, r.Item, fmt.Sprintf("%d", r.Quantity)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
