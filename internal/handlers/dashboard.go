package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"lavapp/internal/models"
	"lavapp/internal/store"
)

const recentOrderCount = 5

// GetDashboard aggregates the numbers the admin landing screen shows:
// total revenue, order counts and the most recent orders.
func GetDashboard(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := st.ListOrders()

		revenue := decimal.Zero
		pending := 0
		for _, o := range orders {
			revenue = revenue.Add(o.Total)
			if o.Status == models.StatusPendingCollection {
				pending++
			}
		}

		recent := orders
		if len(recent) > recentOrderCount {
			recent = recent[:recentOrderCount]
		}

		c.JSON(http.StatusOK, gin.H{
			"stats": gin.H{
				"totalRevenue":  revenue.StringFixed(2),
				"totalOrders":   len(orders),
				"pendingOrders": pending,
				"customers":     len(st.ListCustomers()),
			},
			"recentOrders": recent,
		})
	}
}
