package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cordilleraweaves/marketplace-api/internal/api/handlers"
	"github.com/cordilleraweaves/marketplace-api/internal/api/middleware"
	"github.com/cordilleraweaves/marketplace-api/internal/cache"
	"github.com/cordilleraweaves/marketplace-api/internal/config"
	"github.com/cordilleraweaves/marketplace-api/internal/health"
	"github.com/cordilleraweaves/marketplace-api/internal/metrics"
	repository "github.com/cordilleraweaves/marketplace-api/internal/repositories"
	service "github.com/cordilleraweaves/marketplace-api/internal/services"
	"github.com/cordilleraweaves/marketplace-api/pkg/sendGrid"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	jwtKey := []byte(cfg.Security.JWTKey)
	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg)
	storeCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	sendGridClient := sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	notificationService := service.NewNotificationService(repos.Notification, sendGridClient)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	userService := service.NewUserService(repos.User, rateLimiter, jwtKey, cfg.Security.TokenTTL)
	userHandler := handlers.NewUserHandler(userService)
	productService := service.NewProductService(repos.Product, storeCache, &cfg.Cache)
	productHandler := handlers.NewProductHandler(productService)
	cartService := service.NewCartService(repos.Cart, repos.Product, &cfg.Shipping)
	cartHandler := handlers.NewCartHandler(cartService)
	campaignService := service.NewCampaignService(repos.Campaign, storeCache, &cfg.Cache)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	donationService := service.NewDonationService(repos.Donation, repos.Campaign, storeCache, notificationService)
	donationHandler := handlers.NewDonationHandler(donationService)
	orderService := service.NewOrderService(repos.Order, repos.Cart, repos.Product, repos.User, &cfg.Shipping, notificationService)
	orderHandler := handlers.NewOrderHandler(orderService)
	mediaService := service.NewMediaService(repos.Media)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	adminHandler := handlers.NewAdminHandler()
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	// Public storefront
	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/fundraising", campaignHandler.ListCampaigns())
	routerMux.HandleFunc("GET /api/v1/fundraising/{id}", campaignHandler.GetCampaign())
	routerMux.HandleFunc("GET /api/v1/videos", mediaHandler.ListVideos())
	routerMux.HandleFunc("GET /api/v1/infographics", mediaHandler.ListInfographics())

	// Authenticated customer routes
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))
	routerMux.HandleFunc("GET /api/v1/carts", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/carts/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/carts/items", authMiddleware.Authenticate(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/carts/items/{productId}", authMiddleware.Authenticate(cartHandler.RemoveItem()))
	routerMux.HandleFunc("DELETE /api/v1/carts", authMiddleware.Authenticate(cartHandler.ClearCart()))
	routerMux.HandleFunc("POST /api/v1/donations", authMiddleware.Authenticate(donationHandler.CreateDonation()))
	routerMux.HandleFunc("GET /api/v1/donations/me", authMiddleware.Authenticate(donationHandler.ListMyDonations()))
	routerMux.HandleFunc("POST /api/v1/orders", authMiddleware.Authenticate(orderHandler.Checkout()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))

	// Admin dashboard
	routerMux.HandleFunc("GET /api/v1/admin/dashboard", authMiddleware.RequireAdmin(adminHandler.Dashboard()))
	routerMux.HandleFunc("GET /api/v1/products/all", authMiddleware.RequireAdmin(productHandler.ListAllProducts()))
	routerMux.HandleFunc("POST /api/v1/products", authMiddleware.RequireAdmin(productHandler.CreateProduct()))
	routerMux.HandleFunc("PUT /api/v1/products/{id}", authMiddleware.RequireAdmin(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", authMiddleware.RequireAdmin(productHandler.ArchiveProduct()))
	routerMux.HandleFunc("POST /api/v1/fundraising", authMiddleware.RequireAdmin(campaignHandler.CreateCampaign()))
	routerMux.HandleFunc("PUT /api/v1/fundraising/{id}", authMiddleware.RequireAdmin(campaignHandler.UpdateCampaign()))
	routerMux.HandleFunc("DELETE /api/v1/fundraising/{id}", authMiddleware.RequireAdmin(campaignHandler.DeleteCampaign()))
	routerMux.HandleFunc("GET /api/v1/donations", authMiddleware.RequireAdmin(donationHandler.ListDonations()))
	routerMux.HandleFunc("DELETE /api/v1/donations/{id}", authMiddleware.RequireAdmin(donationHandler.DeleteDonation()))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.RequireAdmin(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}/details", authMiddleware.RequireAdmin(orderHandler.OrderDetails()))
	routerMux.HandleFunc("PUT /api/v1/orders/{id}", authMiddleware.RequireAdmin(orderHandler.UpdateOrderStatus()))
	routerMux.HandleFunc("DELETE /api/v1/orders/{id}", authMiddleware.RequireAdmin(orderHandler.DeleteOrder()))
	routerMux.HandleFunc("POST /api/v1/videos", authMiddleware.RequireAdmin(mediaHandler.CreateVideo()))
	routerMux.HandleFunc("DELETE /api/v1/videos/{id}", authMiddleware.RequireAdmin(mediaHandler.DeleteVideo()))
	routerMux.HandleFunc("POST /api/v1/infographics", authMiddleware.RequireAdmin(mediaHandler.CreateInfographic()))
	routerMux.HandleFunc("DELETE /api/v1/infographics/{id}", authMiddleware.RequireAdmin(mediaHandler.DeleteInfographic()))
	routerMux.HandleFunc("GET /api/v1/users", authMiddleware.RequireAdmin(userHandler.ListUsers()))
	routerMux.HandleFunc("POST /api/v1/users", authMiddleware.RequireAdmin(userHandler.CreateUser()))
	routerMux.HandleFunc("PUT /api/v1/users/{id}", authMiddleware.RequireAdmin(userHandler.UpdateUser()))
	routerMux.HandleFunc("DELETE /api/v1/users/{id}", authMiddleware.RequireAdmin(userHandler.DeleteUser()))
	routerMux.HandleFunc("POST /api/v1/notifications/email", authMiddleware.RequireAdmin(notificationHandler.SendEmail()))
	routerMux.HandleFunc("GET /api/v1/notifications", authMiddleware.RequireAdmin(notificationHandler.ListNotifications()))

	// Operational endpoints
	routerMux.Handle("GET /api/v1/health", healthHandler.Handler())
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

	go func() { // Starts the HTTP server in a new goroutine so it doesn't block the main thread.

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done // blocking, until no signal is added to "done" channel, after the some signal is received the code after this point would be executed

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
