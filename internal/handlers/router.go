package handlers

import (
	"net/http"
	"time"

	"book-commerce-platform/internal/middleware"
	"book-commerce-platform/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires up all routes and middleware.
func NewRouter(
	authService *services.AuthService,
	catalogService *services.CatalogService,
	checkoutService *services.CheckoutService,
	subscriptionService *services.SubscriptionService,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	authHandler := NewAuthHandler(authService)
	bookHandler := NewBookHandler(catalogService)
	checkoutHandler := NewCheckoutHandler(checkoutService)
	subscribeHandler := NewSubscribeHandler(subscriptionService)

	requireAuth := middleware.RequireAuth(authService)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Backend connected successfully"})
	})

	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.GET("/books", bookHandler.ListBooks)
	router.POST("/subscribe", subscribeHandler.Subscribe)

	router.POST("/add-book", requireAuth, bookHandler.AddBook)
	router.POST("/checkout", requireAuth, checkoutHandler.Checkout)
	router.GET("/orders", requireAuth, checkoutHandler.Orders)

	return router
}
