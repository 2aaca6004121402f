package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lavapp/internal/cep"
	"lavapp/internal/config"
	"lavapp/internal/handlers"
	"lavapp/internal/metrics"
	"lavapp/internal/middleware"
	"lavapp/internal/store"
)

func main() {
	config.Load()

	st := store.Seeded()
	sessions := handlers.NewSessions()
	lookup := cep.NewClient(config.AppEnv.CEPBaseURL)
	serverMetrics := metrics.New("api")

	log.Printf("[MAIN] [INFO] store seeded: %d orders", st.CountOrders())

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  config.AppEnv.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))
	r.Use(serverMetrics.Middleware())

	r.GET("/metrics", metrics.Handler())

	r.POST("/auth/signup", handlers.Signup(st, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))
	r.POST("/auth/login", handlers.Login(st, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))
	auth := middleware.Auth(config.AppEnv.JWTSecret, st)
	r.POST("/auth/logout", auth, handlers.Logout(st))
	r.GET("/auth/me", auth, handlers.Me(st))

	portal := r.Group("/portal")
	{
		portal.POST("/sessions", handlers.CreatePortalSession(sessions))
		portal.GET("/sessions/:id", handlers.GetPortalSession(sessions))
		portal.POST("/sessions/:id/channel", handlers.SelectChannel(sessions))
		portal.GET("/sessions/:id/services", handlers.PortalServices(st, sessions))
		portal.POST("/sessions/:id/items", handlers.AddCartItem(st, sessions))
		portal.PUT("/sessions/:id/items/:name", handlers.UpdateCartQuantity(sessions))
		portal.DELETE("/sessions/:id/items/:name", handlers.RemoveCartItem(sessions))
		portal.POST("/sessions/:id/step", handlers.GoToStep(sessions))
		portal.PATCH("/sessions/:id/form", handlers.SetFormField(sessions, lookup))
		portal.POST("/sessions/:id/submit", handlers.SubmitOrder(st, sessions))
		portal.POST("/sessions/:id/reset", handlers.ResetSession(sessions))
	}

	admin := r.Group("/admin/api")
	admin.Use(auth, middleware.AdminOnly())
	{
		admin.GET("/dashboard", handlers.GetDashboard(st))

		admin.GET("/orders", handlers.GetOrders(st))
		admin.GET("/orders/:id", handlers.GetOrder(st))
		admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus(st))

		admin.GET("/customers", handlers.GetCustomers(st))
		admin.GET("/customers/:id", handlers.GetCustomer(st))

		admin.GET("/services", handlers.GetServices(st))
		admin.POST("/services", handlers.CreateService(st))
		admin.PUT("/services/:id", handlers.UpdateService(st))
		admin.DELETE("/services/:id", handlers.DeleteService(st))

		admin.GET("/settings", handlers.GetSettings(st))
		admin.PUT("/settings", handlers.UpdateSettings(st))
	}

	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
