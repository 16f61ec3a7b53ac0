package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rkhatri/vastra-backend/api/routes"
	"github.com/rkhatri/vastra-backend/internal/auth"
	"github.com/rkhatri/vastra-backend/internal/cart"
	category "github.com/rkhatri/vastra-backend/internal/categories"
	"github.com/rkhatri/vastra-backend/internal/content"
	coupon "github.com/rkhatri/vastra-backend/internal/coupons"
	invoice "github.com/rkhatri/vastra-backend/internal/invoices"
	payment "github.com/rkhatri/vastra-backend/internal/payments"
	product "github.com/rkhatri/vastra-backend/internal/products"
	user "github.com/rkhatri/vastra-backend/internal/users"
	variant "github.com/rkhatri/vastra-backend/internal/variants"
	wholesaler "github.com/rkhatri/vastra-backend/internal/wholesalers"
	"github.com/rkhatri/vastra-backend/internal/wishlist"
	"github.com/rkhatri/vastra-backend/pkg/auth/session"
	"github.com/rkhatri/vastra-backend/pkg/config"
	"github.com/rkhatri/vastra-backend/pkg/db"
	"github.com/rkhatri/vastra-backend/pkg/logger"
	"github.com/rkhatri/vastra-backend/pkg/mailer"
	"github.com/rkhatri/vastra-backend/pkg/metrics"
	"github.com/rkhatri/vastra-backend/pkg/migrate"
	"github.com/rkhatri/vastra-backend/pkg/razorpay"
	"github.com/rkhatri/vastra-backend/pkg/redis"
	"github.com/rkhatri/vastra-backend/pkg/storage/local"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	imageStore, err := local.NewStore(cfg.Uploads)
	if err != nil {
		logg.Error(context.Background(), "failed to prepare upload storage", err)
		os.Exit(1)
	}

	gatewayClient, err := razorpay.NewClient(cfg.Gateway)
	if err != nil {
		logg.Error(context.Background(), "failed to create payment gateway client", err)
		os.Exit(1)
	}

	gormDB := dbClient.DB()

	productRepo := product.NewRepository(gormDB)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       user.NewRepository(gormDB),
		SessionManager: sessionManager,
		Mailer:         mailer.NewLogMailer(cfg.Mail, logg),
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	productService, err := product.NewService(productRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	variantService, err := variant.NewService(variant.NewRepository(gormDB), productRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create variant service", err)
		os.Exit(1)
	}

	wholesalerService, err := wholesaler.NewService(wholesaler.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create wholesaler service", err)
		os.Exit(1)
	}

	invoiceService, err := invoice.NewService(invoice.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create invoice service", err)
		os.Exit(1)
	}

	categoryService, err := category.NewService(category.NewRepository(gormDB), productRepo, imageStore)
	if err != nil {
		logg.Error(context.Background(), "failed to create category service", err)
		os.Exit(1)
	}

	contentService, err := content.NewService(content.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create content service", err)
		os.Exit(1)
	}

	couponService, err := coupon.NewService(coupon.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create coupon service", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cart.NewRepository(gormDB), productRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlist.NewService(wishlist.NewRepository(gormDB), productRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist service", err)
		os.Exit(1)
	}

	paymentService, err := payment.NewService(payment.NewRepository(gormDB), gatewayClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create payment service", err)
		os.Exit(1)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(promRegistry)

	handler := routes.NewRouter(
		cfg,
		logg,
		dbClient,
		redisClient,
		sessionManager,
		httpMetrics,
		promRegistry,
		routes.Services{
			Auth:        authService,
			Products:    productService,
			Variants:    variantService,
			Wholesalers: wholesalerService,
			Invoices:    invoiceService,
			Categories:  categoryService,
			Content:     contentService,
			Coupons:     couponService,
			Cart:        cartService,
			Wishlist:    wishlistService,
			Payments:    paymentService,
		},
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		drainCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(drainCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
