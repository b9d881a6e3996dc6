package httpserver

import (
	"context"
	"log"
	"time"

	"orderahead/internal/domain"
	cartsvc "orderahead/internal/service/cart"
	menuitemsvc "orderahead/internal/service/menuitem"
	restaurantsvc "orderahead/internal/service/restaurant"
	usersvc "orderahead/internal/service/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userService interface {
	Register(ctx context.Context, in usersvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
}

type restaurantService interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
	Create(ctx context.Context, in restaurantsvc.CreateInput) (*domain.Restaurant, error)
}

type menuItemService interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, in menuitemsvc.CreateInput) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, in menuitemsvc.UpdateInput) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

type cartService interface {
	Get(ctx context.Context, userID, cartID string) (*domain.Cart, error)
	CreateOrAdd(ctx context.Context, userID string, items []cartsvc.ItemInput) (*domain.Cart, error)
	SetQuantities(ctx context.Context, userID string, items []cartsvc.ItemInput) (*domain.Cart, error)
	Delete(ctx context.Context, userID string) error
}

// Deps bundles the services the router depends on.
type Deps struct {
	UserSvc       userService
	RestaurantSvc restaurantService
	MenuItemSvc   menuItemService
	CartSvc       cartService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestIDMiddleware(), gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	user := router.Group("/user")
	{
		user.POST("/register", registerHandler(deps.UserSvc))
		user.POST("/login", loginHandler(deps.UserSvc))
		user.GET("/me", authMiddleware(deps.UserSvc), meHandler())
	}

	restaurants := router.Group("/restaurants")
	{
		restaurants.GET("", listRestaurantsHandler(deps.RestaurantSvc))
		restaurants.GET("/:id", getRestaurantHandler(deps.RestaurantSvc))
		restaurants.POST("", authMiddleware(deps.UserSvc), createRestaurantHandler(deps.RestaurantSvc))
	}

	menuItems := router.Group("/menu-item")
	{
		menuItems.GET("", listMenuItemsHandler(deps.MenuItemSvc))
		menuItems.GET("/:id", getMenuItemHandler(deps.MenuItemSvc))
		menuItems.GET("/restaurant/:restaurantId", listMenuItemsByRestaurantHandler(deps.MenuItemSvc))

		authed := menuItems.Group("", authMiddleware(deps.UserSvc))
		authed.POST("", createMenuItemHandler(deps.MenuItemSvc))
		authed.PUT("/:id", updateMenuItemHandler(deps.MenuItemSvc))
		authed.DELETE("/:id", deleteMenuItemHandler(deps.MenuItemSvc))
	}

	carts := router.Group("/cart", authMiddleware(deps.UserSvc))
	{
		carts.GET("", getCartHandler(deps.CartSvc))
		carts.GET("/:id", getCartHandler(deps.CartSvc))
		carts.POST("", createOrAddCartHandler(deps.CartSvc))
		carts.PUT("", updateCartHandler(deps.CartSvc))
		carts.DELETE("", deleteCartHandler(deps.CartSvc))
	}

	return router, nil
}
