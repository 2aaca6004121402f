package handlers

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lavapp/internal/cart"
	"lavapp/internal/cep"
	"lavapp/internal/models"
	"lavapp/internal/portal"
	"lavapp/internal/store"
)

// Sessions keeps the live wizard sessions, one per customer browser tab.
type Sessions struct {
	mu sync.Mutex
	m  map[string]*portal.Session
}

func NewSessions() *Sessions {
	return &Sessions{m: map[string]*portal.Session{}}
}

func (s *Sessions) create() (string, *portal.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	session := portal.NewSession()
	s.m[id] = session
	return id, session
}

func (s *Sessions) get(id string) (*portal.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.m[id]
	return session, ok
}

func sessionFromPath(c *gin.Context, sessions *Sessions, route string) (*portal.Session, bool) {
	session, ok := sessions.get(c.Param("id"))
	if !ok {
		respondWithError(c, http.StatusNotFound, route, "session not found")
		return nil, false
	}
	return session, true
}

// CreatePortalSession starts a wizard.
func CreatePortalSession(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, session := sessions.create()
		c.JSON(http.StatusCreated, gin.H{"sessionId": id, "step": session.Step()})
	}
}

// GetPortalSession returns the full wizard state for rendering.
func GetPortalSession(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /portal/sessions/:id"
		session, ok := sessionFromPath(c, sessions, route)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, sessionState(session))
	}
}

func sessionState(session *portal.Session) gin.H {
	state := gin.H{
		"step":     session.Step(),
		"channel":  session.Channel(),
		"cart":     session.Cart(),
		"total":    session.Total(),
		"form":     session.Form(),
		"cepError": session.CEPError(),
	}
	if order, placed := session.Placed(); placed {
		state["placedOrder"] = order
	}
	return state
}

type selectChannelRequest struct {
	Channel models.Channel `json:"channel" binding:"required"`
	Confirm bool           `json:"confirm"`
}

// SelectChannel picks or switches the purchase mode. Switching away from a
// non-empty cart needs confirm=true; a declined switch changes nothing.
func SelectChannel(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /portal/sessions/:id/channel"
		defer handlePanic(c, route)

		session, ok := sessionFromPath(c, sessions, route)
		if !ok {
			return
		}

		var req selectChannelRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		var err error
		if session.Channel() == "" {
			err = session.SelectChannel(req.Channel)
		} else {
			err = session.SwitchChannel(req.Channel, req.Confirm)
		}
		if err == portal.ErrConfirmationRequired {
			c.JSON(http.StatusConflict, gin.H{
				"error":                "switching will clear the current order",
				"confirmationRequired": true,
			})
			return
		}
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		c.JSON(http.StatusOK, sessionState(session))
	}
}

// PortalServices lists the catalog entries for the session's channel.
func PortalServices(st *store.Store, sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /portal/sessions/:id/services"
		session, ok := sessionFromPath(c, sessions, route)
		if !ok {
			return
		}

		channel := session.Channel()
		if channel == "" {
			respondWithError(c, http.StatusBadRequest, route, "select a channel first")
			return
		}
		c.JSON(http.StatusOK, st.ListServicesByChannel(channel))
	}
}

type addItemRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

// lineKind derives the cart kind from the catalog category.
func lineKind(category models.ServiceCategory) cart.LineKind {
	switch category {
	case models.CategoryPlan:
		return cart.KindPlan
	case models.CategoryExtra:
		return cart.KindExtra
	default:
		return cart.KindService
	}
}

// AddCartItem snapshots a catalog entry into the cart.
func AddCartItem(st *store.Store, sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /portal/sessions/:id/items"
		defer handlePanic(c, route)

		session, ok := sessionFromPath(c, sessions, route)
		if !ok {
			return
		}

		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		svc, found := st.GetService(req.ServiceID)
		if !found {
			respondWithError(c, http.StatusNotFound, route, "service not found")
			return
		}
		if channel := session.Channel(); channel == "" || !svc.Channel.Matches(channel) {
			respondWithError(c, http.StatusBadRequest, route, "service not available on this channel")
			return
		}

		if err := session.AddItem(cart.Item{
			Kind:      lineKind(svc.Category),
			Name:      svc.Name,
			Price:     svc.Price,
			ServiceID: svc.ID,
		}); err != nil {
			respondWithError(c, http.StatusConflict, route, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": session.Cart(), "total": session.Total()})
	}
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateCartQuantity sets a line's quantity; zero or below removes it.
func UpdateCartQuantity(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /portal/sessions/:id/items/:name"
		defer handlePanic(c, route)

		session, ok := sessionFromPath(c, sessions, route)
		if !ok {
			return
		}

		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if err := session.UpdateQuantity(c.Param("name"), *req.Quantity); err != nil {
			respondWithError(c, http.StatusConflict, route, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": session.Cart(), "total": session.Total()})
	}
}

// RemoveCartItem drops a line.
func RemoveCartItem(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /portal/sessions/:id/items/:name"
		session, ok := sessionFromPath(c, sessions, route)
		if !ok {
			return
		}

		if err := session.RemoveLine(c.Param("name")); err != nil {
			respondWithError(c, http.StatusConflict, route, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": session.Cart(), "total": session.Total()})
	}
}

type goToStepRequest struct {
	Step int `json:"step" binding:"required"`
}

// GoToStep navigates the wizard; review/submit demand a non-empty cart.
func GoToStep(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /portal/sessions/:id/step"
		defer handlePanic(c, route)

		session, ok := sessionFromPath(c, sessions, route)
		if !ok {
			return
		}

		var req goToStepRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if err := session.GoToStep(req.Step); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"step": session.Step()})
	}
}

type setFieldRequest struct {
	Field portal.Field `json:"field" binding:"required"`
	Value string       `json:"value"`
}

// SetFormField records one answer. When the CEP just became complete, the
// directory lookup fires in the background and its result lands on the
// session; superseded lookups are discarded by sequence number.
func SetFormField(sessions *Sessions, lookup *cep.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /portal/sessions/:id/form"
		defer handlePanic(c, route)

		session, ok := sessionFromPath(c, sessions, route)
		if !ok {
			return
		}

		var req setFieldRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		lookupNeeded, err := session.SetField(req.Field, req.Value)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		if lookupNeeded {
			seq, digits := session.BeginLookup()
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				addr, lookupErr := lookup.Lookup(ctx, digits)
				if applied := session.ApplyLookup(seq, addr, lookupErr); applied && lookupErr != nil {
					log.Printf("[CEP] [WARN] lookup for %s failed: %v", digits, lookupErr)
				}
			}()
		}

		c.JSON(http.StatusOK, gin.H{
			"form":          session.Form(),
			"cepError":      session.CEPError(),
			"lookupPending": lookupNeeded,
		})
	}
}

// SubmitOrder validates and persists the order.
func SubmitOrder(st *store.Store, sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /portal/sessions/:id/submit"
		defer handlePanic(c, route)

		session, ok := sessionFromPath(c, sessions, route)
		if !ok {
			return
		}

		order, err := session.Submit(func(input store.OrderInput) (models.Order, error) {
			return st.CreateOrder(input), nil
		})
		if err != nil {
			status := http.StatusBadRequest
			if err == portal.ErrAlreadyPlaced {
				status = http.StatusConflict
			}
			respondWithError(c, status, route, err.Error())
			return
		}

		log.Println("[PORTAL] [INFO] order placed:", order.ID)
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

// ResetSession starts a new order: only here does the cart clear after a
// successful placement.
func ResetSession(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /portal/sessions/:id/reset"
		session, ok := sessionFromPath(c, sessions, route)
		if !ok {
			return
		}

		session.Reset()
		c.JSON(http.StatusOK, sessionState(session))
	}
}
