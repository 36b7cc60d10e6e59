// Package handlers exposes the store over HTTP with gin.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/judyrop/restaurant-pos/store"
)

// Handler carries the dependencies shared by every route.
type Handler struct {
	store   *store.Store
	log     *slog.Logger
	taxRate decimal.Decimal
}

func New(s *store.Store, log *slog.Logger, taxRate decimal.Decimal) *Handler {
	registerValidations()
	return &Handler{store: s, log: log, taxRate: taxRate}
}

// Register mounts every resource route on r.
func (h *Handler) Register(r gin.IRouter) {
	tables := r.Group("/tables")
	tables.GET("", h.listTables)
	tables.POST("", h.createTable)
	tables.POST("/reset", h.resetTables)
	tables.GET("/:id", idParam("id"), h.getTable)
	tables.PUT("/:id", idParam("id"), h.updateTable)
	tables.PATCH("/:id/status", idParam("id"), h.setTableStatus)
	tables.DELETE("/:id", idParam("id"), h.deleteTable)

	dishes := r.Group("/dishes")
	dishes.GET("", h.listDishes)
	dishes.POST("", h.createDish)
	dishes.GET("/:id", idParam("id"), h.getDish)
	dishes.PUT("/:id", idParam("id"), h.updateDish)
	dishes.PATCH("/:id/availability", idParam("id"), h.toggleDish)
	dishes.DELETE("/:id", idParam("id"), h.deleteDish)

	categories := r.Group("/categories")
	categories.GET("", h.listCategories)
	categories.POST("", h.createCategory)
	categories.GET("/:id", idParam("id"), h.getCategory)
	categories.PUT("/:id", idParam("id"), h.updateCategory)
	categories.DELETE("/:id", idParam("id"), h.deleteCategory)

	taxes := r.Group("/taxes")
	taxes.GET("", h.listTaxes)
	taxes.POST("", h.createTax)
	taxes.GET("/:id", idParam("id"), h.getTax)
	taxes.PUT("/:id", idParam("id"), h.updateTax)
	taxes.DELETE("/:id", idParam("id"), h.deleteTax)

	orders := r.Group("/orders")
	orders.GET("", h.listOrders)
	orders.POST("", h.createOrder)
	orders.GET("/table/:tableId", idParam("tableId"), h.listTableOrders)
	orders.GET("/:id", idParam("id"), h.getOrder)
	orders.GET("/:id/bill", idParam("id"), h.getBill)
	orders.PATCH("/:id/status", idParam("id"), h.updateOrderStatus)
	orders.DELETE("/:id", idParam("id"), h.deleteOrder)
}

// idParam parses the named path parameter as a positive integer and stores
// it under the same key for the handler to read with c.GetUint.
func idParam(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(name), 10, 32)
		if err != nil || id == 0 {
			respondError(c, http.StatusBadRequest, "Invalid "+name, err)
			return
		}
		c.Set(name, uint(id))
		c.Next()
	}
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
}
