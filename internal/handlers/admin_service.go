package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"lavapp/internal/models"
	"lavapp/internal/store"
)

type serviceRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Price       decimal.Decimal        `json:"price" binding:"required"`
	Category    models.ServiceCategory `json:"category" binding:"required"`
	Channel     models.Channel         `json:"channel" binding:"required"`
}

func (r serviceRequest) validate() (models.Service, string) {
	if !r.Category.Valid() {
		return models.Service{}, "unknown category"
	}
	if !r.Channel.Valid() {
		return models.Service{}, "unknown channel"
	}
	if r.Price.IsNegative() {
		return models.Service{}, "price must not be negative"
	}
	return models.Service{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price.Round(2),
		Category:    r.Category,
		Channel:     r.Channel,
	}, ""
}

// GetServices lists the whole catalog for the admin screen.
func GetServices(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.ListServices())
	}
}

// CreateService adds a catalog entry.
func CreateService(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/services"
		defer handlePanic(c, route)

		var req serviceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		svc, problem := req.validate()
		if problem != "" {
			respondWithError(c, http.StatusBadRequest, route, problem)
			return
		}

		created := st.CreateService(svc)
		log.Println("[SERVICE] [INFO] created:", created.ID)
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateService replaces a catalog entry. Existing orders keep their item
// snapshots regardless.
func UpdateService(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/services/:id"
		defer handlePanic(c, route)

		var req serviceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		svc, problem := req.validate()
		if problem != "" {
			respondWithError(c, http.StatusBadRequest, route, problem)
			return
		}

		updated, err := st.UpdateService(c.Param("id"), svc)
		if err == store.ErrServiceNotFound {
			respondWithError(c, http.StatusNotFound, route, "service not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "could not update service")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteService removes a catalog entry.
func DeleteService(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/services/:id"

		if err := st.DeleteService(c.Param("id")); err != nil {
			respondWithError(c, http.StatusNotFound, route, "service not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
	}
}
