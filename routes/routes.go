package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	userRepo "prolink/database/repository/user"
	"prolink/handlers"
	"prolink/middleware"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Users    userRepo.UserRepository
	Auth     *handlers.AuthHandler
	Provider *handlers.ProviderHandler
	Booking  *handlers.BookingHandler
	Message  *handlers.MessagingHandler
	Tracking *handlers.TrackingHandler
	I18n     *handlers.TranslationHandler
}

// Register wires every endpoint onto the engine.
func Register(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm ProLink"})
	})

	api := r.Group("/api")

	users := api.Group("/users")
	{
		users.POST("/register", h.Auth.RegisterHandler)
		users.POST("/login", h.Auth.LoginHandler)
		users.GET("/id/:id", h.Auth.ResolveHandler)
	}

	// Translations are public; the rest acts on behalf of a resolved
	// identity.
	api.GET("/translations/:lang", h.I18n.GetTranslationsHandler)

	protected := api.Group("")
	protected.Use(middleware.JWTAuthUserMiddleware(h.Users))
	{
		protected.GET("/professionals", h.Provider.ListProfessionalsHandler)
		protected.GET("/professionals/:id", h.Provider.GetProfessionalHandler)

		protected.GET("/bookings", h.Booking.ListBookingsHandler)
		protected.GET("/bookings/:id", h.Booking.BookingDetailsHandler)

		protected.GET("/conversations", h.Message.ListConversationsHandler)
		protected.GET("/messages/:otherId", h.Message.ListMessagesHandler)
		protected.POST("/messages", h.Message.SendMessageHandler)

		protected.GET("/tracking/:professionalId", h.Tracking.StreamHandler)
	}
}
