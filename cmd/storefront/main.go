package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/electricpro/storefront/internal/api/handlers"
	"github.com/electricpro/storefront/internal/api/middleware"
	"github.com/electricpro/storefront/internal/catalog"
	"github.com/electricpro/storefront/internal/config"
	"github.com/electricpro/storefront/internal/health"
	"github.com/electricpro/storefront/internal/metrics"
	"github.com/electricpro/storefront/internal/ratelimit"
	service "github.com/electricpro/storefront/internal/services"
	"github.com/electricpro/storefront/internal/store"
	sendgridClient "github.com/electricpro/storefront/pkg/sendgrid"
	"github.com/redis/go-redis/v9"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Redis setup, used only by the submission rate limiter
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Addr,
		Username: cfg.RedisConnect.Username,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()

	var limiter service.SubmissionLimiter
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		slog.Warn("⚠️ Redis unreachable, checkout rate limiting disabled", slog.String("error", err.Error()))
	} else {
		limiter = ratelimit.NewLimiter(redisClient, &cfg.RateConfig)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	// Order sink selection
	var sink service.OrderSink = service.LogSink{}
	if cfg.SendGrid.APIKey != "" {
		emailService := sendgridClient.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
		sink = service.NewNotificationService(emailService)
	} else {
		slog.Warn("⚠️ SendGrid not configured, orders are logged only")
	}

	// State stores feed the commerce gauges through their observers
	cartStore := store.NewCartStore()
	cartStore.Subscribe(metrics.ObserveCart)
	favoritesStore := store.NewFavoritesStore()
	favoritesStore.Subscribe(metrics.ObserveFavorites)

	productCatalog := catalog.New()

	cartService := service.NewCartService(cartStore)
	cartHandler := handlers.NewCartHandler(cartService)
	favoritesService := service.NewFavoritesService(favoritesStore)
	favoritesHandler := handlers.NewFavoritesHandler(favoritesService)
	checkoutService := service.NewCheckoutService(cartStore, limiter, sink)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	catalogHandler := handlers.NewCatalogHandler(productCatalog)

	healthHandler, err := health.NewHealthHandler(cfg, productCatalog)
	if err != nil {
		slog.Error("❌ Failed to create health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("stores initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("GET /api/v1/favorites", favoritesHandler.GetFavorites())
	routerMux.HandleFunc("POST /api/v1/favorites", favoritesHandler.AddFavorite())
	routerMux.HandleFunc("GET /api/v1/favorites/{id}", favoritesHandler.GetFavorite())
	routerMux.HandleFunc("DELETE /api/v1/favorites/{id}", favoritesHandler.RemoveFavorite())
	routerMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.SubmitOrder())
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/categories", catalogHandler.ListCategories())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}
}
