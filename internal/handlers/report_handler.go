package handlers

import (
	"net/http"
	"time"

	"cremoso-backend/internal/analytics"
	"cremoso-backend/internal/database"
	"cremoso-backend/internal/export"
	"cremoso-backend/internal/history"
	"cremoso-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ReportData defines the shape of the analytics response
type ReportData struct {
	TotalRevenue decimal.Decimal        `json:"total_revenue"`
	TotalOrders  int                    `json:"total_orders"`
	RevenueByDay []analytics.DayRevenue `json:"revenue_by_day"`
	TopSelling   []analytics.ItemSales  `json:"top_selling"`
	RecentOrders []models.Order         `json:"recent_orders"`
}

// --- GET: /api/reports (admin) ---
// Accepts the same filters as the order history (startDate, endDate,
// category, flavor); the aggregates are computed over the filtered set.
func GetSalesReport(c *gin.Context) {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orders, err := database.OrdersForUser("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	orders = history.Filter(orders, criteria)

	data := ReportData{
		TotalRevenue: analytics.TotalRevenue(orders),
		TotalOrders:  len(orders),
		RevenueByDay: analytics.RevenueByDay(orders),
		TopSelling:   analytics.TopItems(orders, analytics.DefaultTopN),
	}

	// Orders arrive newest first from the store, so the head of the
	// filtered slice is the recent-transactions view.
	if len(orders) > 10 {
		data.RecentOrders = orders[:10]
	} else {
		data.RecentOrders = orders
	}

	c.JSON(http.StatusOK, data)
}

// --- GET: /api/reports/summary (admin) ---
// Streams the sales summary CSV: total quantity sold per
// (category, item) pair, best sellers first.
func GetSalesSummaryCSV(c *gin.Context) {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orders, err := database.OrdersForUser("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	orders = history.Filter(orders, criteria)

	filename := export.Filename("relatorio_vendas", c.GetString("username"), time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")

	if err := export.SummaryCSV(c.Writer, analytics.SalesSummary(orders)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV"})
	}
}
