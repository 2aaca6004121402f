package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lavapp/internal/store"
)

// GetCustomers lists everyone who ever ordered.
func GetCustomers(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.ListCustomers())
	}
}

// GetCustomer returns one customer and their order history.
func GetCustomer(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/customers/:id"

		customer, ok := st.GetCustomer(c.Param("id"))
		if !ok {
			respondWithError(c, http.StatusNotFound, route, "customer not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"customer": customer,
			"orders":   st.ListOrdersByCustomer(customer.ID),
		})
	}
}
