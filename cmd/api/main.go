package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"orderahead/internal/config"
	"orderahead/internal/db"
	"orderahead/internal/httpserver"
	cartrepo "orderahead/internal/repository/cart"
	menuitemrepo "orderahead/internal/repository/menuitem"
	restaurantrepo "orderahead/internal/repository/restaurant"
	userrepo "orderahead/internal/repository/user"
	cartsvc "orderahead/internal/service/cart"
	menuitemsvc "orderahead/internal/service/menuitem"
	restaurantsvc "orderahead/internal/service/restaurant"
	usersvc "orderahead/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	userRepo := userrepo.NewPostgres(dbpool, logger)
	userService := usersvc.New(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restaurantRepo := restaurantrepo.NewPostgres(dbpool)
	restaurantService := restaurantsvc.New(restaurantRepo)
	menuItemRepo := menuitemrepo.NewPostgres(dbpool, logger)
	menuItemService := menuitemsvc.New(menuItemRepo)
	cartRepo := cartrepo.NewPostgres(dbpool, logger)
	cartService := cartsvc.New(cartRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		UserSvc:       userService,
		RestaurantSvc: restaurantService,
		MenuItemSvc:   menuItemService,
		CartSvc:       cartService,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
