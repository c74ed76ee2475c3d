package routes

import (
	"net/http"
	"time"

	"github.com/adeeb-debug/baitussalambookingapp/handlers"
	"github.com/adeeb-debug/baitussalambookingapp/middleware"
	"github.com/adeeb-debug/baitussalambookingapp/services/user"
	"github.com/adeeb-debug/baitussalambookingapp/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the sign-in exchange endpoints.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/session", handlers.CreateSession)
		api.DELETE("/session", middleware.SessionAuthMiddleware(), handlers.DeleteSession)
	}
}

// RegisterBookingRoutes registers the requester-facing booking endpoints.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.SessionAuthMiddleware())
		api.GET("/options", handlers.GetBookingOptions)
		api.GET("/availability", handlers.GetAvailability)
		api.POST("", handlers.SubmitBooking)
		api.GET("/mine", handlers.GetMyBookings)
		api.DELETE("/group/:groupID", handlers.CancelBookingGroup)
	}
}

// RegisterAdminRoutes registers the approval-workflow endpoints.
func RegisterAdminRoutes(r *gin.Engine, users user.UserService) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.SessionAuthMiddleware())
		api.Use(middleware.AdminAuthMiddleware(users))
		api.GET("/bookings", handlers.GetAdminQueue)
		api.PATCH("/bookings/:id", handlers.DecideBooking)
		api.DELETE("/bookings/:id", handlers.DeleteBooking)
		api.PATCH("/groups/:groupID", handlers.DecideGroup)
		api.POST("/groups/:groupID/notify", handlers.NotifyGroup)
		api.GET("/users", handlers.ListUsers)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, users user.UserService) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r)
	RegisterBookingRoutes(r)
	RegisterAdminRoutes(r, users)
	RegisterHealthRoute(r)
}
