package main

import (
	"context"
	"log"

	"maison-storefront/internal/audit"
	"maison-storefront/internal/auth"
	"maison-storefront/internal/config"
	"maison-storefront/internal/httpx"
	"maison-storefront/internal/logger"
	"maison-storefront/internal/order"
	"maison-storefront/internal/product"
	"maison-storefront/internal/storage"
	"maison-storefront/internal/store"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	state, err := storage.New(cfg.StateDir)
	if err != nil {
		logger.L().Fatal("Failed to open state dir", zap.Error(err))
	}

	var opts []httpx.Option
	if cfg.APIRateLimit > 0 {
		opts = append(opts, httpx.WithRateLimit(rate.Limit(cfg.APIRateLimit), cfg.APIRateBurst))
	}
	api := httpx.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, opts...)

	productSvc := product.NewService(api)
	orderSvc := order.NewService(api)
	auditSvc := audit.NewService(api)
	authSvc := auth.NewService(api)

	domain := store.New(productSvc, orderSvc, auditSvc, state)
	session := auth.NewStore(authSvc, state)

	if user := session.CurrentUser(); user != nil {
		logger.L().Info("Restored admin session", zap.String("email", user.Email))
	}

	ctx := context.Background()
	if err := domain.Bootstrap(ctx, false); err != nil {
		logger.L().Error("Bootstrap failed",
			zap.String("error", domain.BootstrapError()),
		)
		return
	}

	logger.L().Info("Storefront ready",
		zap.String("api", cfg.APIBaseURL),
		zap.Int("products", len(domain.Products())),
		zap.Int("orders", len(domain.Orders())),
		zap.Int("audit_logs", len(domain.AuditLogs())),
		zap.Int("cart_items", len(domain.Cart())),
	)
}
