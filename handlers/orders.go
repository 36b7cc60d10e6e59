package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/judyrop/restaurant-pos/middleware"
	"github.com/judyrop/restaurant-pos/models"
)

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.store.ListOrders(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to fetch orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) listTableOrders(c *gin.Context) {
	orders, err := h.store.ListOrdersByTable(c.Request.Context(), c.GetUint("tableId"))
	if err != nil {
		h.fail(c, "Failed to fetch orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.store.GetOrder(c.Request.Context(), c.GetUint("id"))
	if err != nil {
		h.fail(c, "Order not found", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// createOrder places an order for a table and marks it occupied. Every dish
// must exist. A total_amount that disagrees with the items is stored as sent
// and logged.
func (h *Handler) createOrder(c *gin.Context) {
	var input models.CreateOrderInput
	if !bind(c, &input) {
		return
	}
	if !input.TotalMatches() {
		h.log.Warn("order total differs from items",
			"table_id", input.TableID,
			"total_amount", *input.TotalAmount,
			"computed_total", input.Total().InexactFloat64(),
			"request_id", middleware.RequestID(c),
		)
	}
	order, err := h.store.CreateOrder(c.Request.Context(), input)
	if err != nil {
		h.fail(c, "Failed to create order", err)
		return
	}
	h.log.Info("order created",
		"order_id", order.ID,
		"table_id", order.TableID,
		"items", len(order.Items),
		"total_amount", order.TotalAmount,
		"request_id", middleware.RequestID(c),
	)
	c.JSON(http.StatusCreated, gin.H{
		"id":           order.ID,
		"message":      "Order created successfully",
		"total_amount": order.TotalAmount,
	})
}

func (h *Handler) updateOrderStatus(c *gin.Context) {
	var input models.OrderStatusInput
	if !bind(c, &input) {
		return
	}
	if err := h.store.UpdateOrderStatus(c.Request.Context(), c.GetUint("id"), input.Status); err != nil {
		h.fail(c, "Order not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}

func (h *Handler) deleteOrder(c *gin.Context) {
	if err := h.store.DeleteOrder(c.Request.Context(), c.GetUint("id")); err != nil {
		h.fail(c, "Order not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

func (h *Handler) getBill(c *gin.Context) {
	bill, err := h.store.GetBill(c.Request.Context(), c.GetUint("id"), h.taxRate)
	if err != nil {
		h.fail(c, "Order not found", err)
		return
	}
	c.JSON(http.StatusOK, bill)
}
