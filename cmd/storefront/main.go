package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maryanafarm/storefront/internal/api/handlers"
	"github.com/maryanafarm/storefront/internal/api/middleware"
	"github.com/maryanafarm/storefront/internal/config"
	"github.com/maryanafarm/storefront/internal/health"
	"github.com/maryanafarm/storefront/internal/metrics"
	repository "github.com/maryanafarm/storefront/internal/repositories"
	service "github.com/maryanafarm/storefront/internal/services"
	"github.com/maryanafarm/storefront/pkg/sendgrid"
	"github.com/redis/go-redis/v9"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Catalog setup: static in-memory read model, embedded seed unless overridden
	var productRepo repository.ProductRepository

	var err error

	if cfg.Catalog.SeedPath != "" {
		productRepo, err = repository.NewMemoryProductRepoFromFile(cfg.Catalog.SeedPath)
	} else {
		productRepo, err = repository.NewMemoryProductRepo()
	}

	if err != nil {
		slog.Error("❌ Error loading the product catalog", "error", err.Error())
		os.Exit(1)
	}

	// Cart store setup
	var cartStore repository.CartStore

	switch cfg.CartStore.Backend {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisConnect.Addr,
			Username: cfg.RedisConnect.Username,
			Password: cfg.RedisConnect.Password,
			DB:       cfg.RedisConnect.DB,
		})

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Error("❌ Error accessing the redis instance", "error", err.Error())
			os.Exit(1)
		}

		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
			}
		}()

		cartStore = repository.NewRedisCartStore(redisClient, cfg.CartStore.TTL)
	case "file":
		cartStore, err = repository.NewFileCartStore(cfg.CartStore.Dir)
		if err != nil {
			slog.Error("❌ Error preparing the cart store directory", "error", err.Error())
			os.Exit(1)
		}
	default:
		slog.Error("❌ Unknown cart store backend", slog.String("backend", cfg.CartStore.Backend))
		os.Exit(1)
	}

	mailer := sendgrid.NewMailer(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName, cfg.SendGrid.OrderEmail)
	catalogService := service.NewCatalogService(productRepo)
	announcer := service.NewLogAnnouncer()
	orderService := service.NewOrderService(mailer)
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartStore, catalogService, announcer, orderService)

	healthHandler, err := health.NewHealthHandler(cfg, catalogService)
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storefront initialized", slog.String("env", cfg.Env), slog.String("cart_store", cfg.CartStore.Backend))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/featured", productHandler.ListFeatured())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items/{id}", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("GET /api/v1/cart/summary", cartHandler.GetSummary())
	routerMux.HandleFunc("POST /api/v1/cart/checkout", cartHandler.Checkout())
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
