package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"cremoso-backend/internal/catalog"
	"cremoso-backend/internal/database"
	"cremoso-backend/internal/export"
	"cremoso-backend/internal/history"
	"cremoso-backend/internal/models"
	"cremoso-backend/internal/order"

	"github.com/gin-gonic/gin"
)

// OrderLineRequest is one selected item. Standard lines name their
// category; special lines leave it blank (or send the special label) and
// may carry size/flavor/description fields. Prices are never taken from
// the client: every line is re-priced here against the current catalog.
type OrderLineRequest struct {
	Item        string `json:"item" binding:"required"`
	Category    string `json:"category"`
	Qty         int    `json:"qty"`
	Size        string `json:"size"`
	Flavor1     string `json:"flavor1"`
	Flavor2     string `json:"flavor2"`
	Topping     string `json:"topping"`
	Description string `json:"description"`
	Notes       string `json:"additionalNotes"`
}

type OrderRequest struct {
	Lines []OrderLineRequest `json:"orderDetails"`
}

// --- POST: Submit an order ---
func SubmitOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	username := c.GetString("username")

	cat, err := database.LoadCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog"})
		return
	}

	lines := make([]models.OrderLine, 0, len(req.Lines))
	for _, lr := range req.Lines {
		line, err := buildLine(cat, lr)
		if err != nil {
			c.JSON(lineErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		lines = append(lines, line)
	}

	ord, err := order.New(username, lines, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.SaveOrder(&ord); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order saved successfully!",
		"order":   ord,
	})
}

func buildLine(cat *catalog.Catalog, lr OrderLineRequest) (models.OrderLine, error) {
	if lr.Category != "" && lr.Category != order.SpecialOrderCategory {
		return order.BuildStandardLine(cat, order.StandardSelection{
			Category: lr.Category,
			Item:     lr.Item,
			Quantity: lr.Qty,
		})
	}

	var details order.Details
	switch {
	case lr.Size != "" || lr.Flavor1 != "":
		details = order.CakeDetails{
			Size:    lr.Size,
			Flavor1: lr.Flavor1,
			Flavor2: lr.Flavor2,
			Topping: lr.Topping,
			Notes:   lr.Notes,
		}
	case lr.Description != "":
		details = order.DescriptionDetails{Description: lr.Description}
	case lr.Notes != "":
		details = order.NoteDetails{Notes: lr.Notes}
	}

	return order.BuildSpecialLine(cat, order.SpecialSelection{
		Product:  lr.Item,
		Quantity: lr.Qty,
		Size:     lr.Size,
		Details:  details,
	})
}

func lineErrorStatus(err error) int {
	if errors.Is(err, catalog.ErrItemNotFound) || errors.Is(err, catalog.ErrCategoryNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// --- GET: Order history, filterable ---
// Regular users only see their own orders. Admins may pass ?username= to
// inspect another user, or leave it off for the whole shop. Optional
// filters: startDate / endDate (YYYY-MM-DD, inclusive whole days),
// category, flavor (case-insensitive substring).
func GetOrders(c *gin.Context) {
	username := c.Query("username")
	if c.GetString("role") != "admin" {
		username = c.GetString("username")
	}

	criteria, err := criteriaFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orders, err := database.OrdersForUser(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, history.Filter(orders, criteria))
}

func criteriaFromQuery(c *gin.Context) (history.Criteria, error) {
	criteria := history.Criteria{
		Category: c.Query("category"),
		Flavor:   c.Query("flavor"),
	}

	if s := c.Query("startDate"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return history.Criteria{}, errors.New("invalid startDate, expected YYYY-MM-DD")
		}
		criteria.Start = &t
	}
	if s := c.Query("endDate"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return history.Criteria{}, errors.New("invalid endDate, expected YYYY-MM-DD")
		}
		criteria.End = &t
	}
	return criteria, nil
}

// --- GET: Order confirmation CSV download ---
func DownloadOrderCSV(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	ord, err := database.OrderByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if c.GetString("role") != "admin" && ord.User != c.GetString("username") {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
		return
	}

	filename := export.Filename("pedido", ord.User, ord.CreatedAt)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")

	if err := export.OrderCSV(c.Writer, ord.Lines, ord.TotalPrice); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV"})
	}
}
