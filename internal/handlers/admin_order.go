package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lavapp/internal/models"
	"lavapp/internal/store"
)

// parseListParams reads limit/offset query parameters with sane bounds.
func parseListParams(c *gin.Context) (limit, offset int) {
	limit = 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}

// GetOrders lists orders newest-first, optionally filtered by customer.
func GetOrders(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if customerID := c.Query("customerId"); customerID != "" {
			orders = st.ListOrdersByCustomer(customerID)
		} else {
			orders = st.ListOrders()
		}

		limit, offset := parseListParams(c)
		total := len(orders)
		if offset > total {
			offset = total
		}
		end := offset + limit
		if end > total {
			end = total
		}

		c.JSON(http.StatusOK, gin.H{
			"orders": orders[offset:end],
			"total":  total,
		})
	}
}

// GetOrder fetches one order by id.
func GetOrder(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders/:id"

		order, ok := st.GetOrder(c.Param("id"))
		if !ok {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through its lifecycle. The store treats
// an unknown id as a no-op; the handler maps that to 404.
func UpdateOrderStatus(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/orders/:id/status"
		defer handlePanic(c, route)

		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		if !req.Status.Valid() {
			respondWithError(c, http.StatusBadRequest, route, "unknown status")
			return
		}

		updated := st.UpdateOrderStatus(c.Param("id"), req.Status)
		if updated == nil {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}

		log.Printf("[ORDER] [INFO] %s -> %s", updated.ID, updated.Status)
		c.JSON(http.StatusOK, updated)
	}
}
