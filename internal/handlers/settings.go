package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lavapp/internal/models"
	"lavapp/internal/store"
)

type settingsRequest struct {
	LaundryName string `json:"laundryName" binding:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}

// GetSettings returns the business profile.
func GetSettings(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.GetSettings())
	}
}

// UpdateSettings replaces the business profile.
func UpdateSettings(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/settings"
		defer handlePanic(c, route)

		var req settingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		updated := st.UpdateSettings(models.Settings{
			LaundryName: req.LaundryName,
			Address:     req.Address,
			Phone:       req.Phone,
			Email:       req.Email,
			OpeningTime: req.OpeningTime,
			ClosingTime: req.ClosingTime,
		})
		c.JSON(http.StatusOK, updated)
	}
}
