package dependency

import (
	"context"
	"log/slog"

	"github.com/fortune-auction/gateway/internal/backend"
	"github.com/fortune-auction/gateway/internal/cache"
	"github.com/fortune-auction/gateway/internal/handlers"
	"github.com/fortune-auction/gateway/internal/service"
	"github.com/fortune-auction/gateway/pkg/logger"
)

// Dependencies holds all the intialized instances required by the gateway.
type Dependencies struct {
	Services       *service.Services
	Backend        backend.Gateway
	Cache          cache.Cacher
	AuthHandler    *handlers.AuthHandler
	CatalogHandler *handlers.CatalogHandler
	AuctionHandler *handlers.AuctionHandler
	BillingHandler *handlers.BillingHandler
}

// NewDependencies connects to redis and the marketplace backend, and wires up
// all services and handlers.
func NewDependencies(ctx context.Context, log *logger.Logger) (*Dependencies, error) {

	api := backend.NewFromEnv()

	redisCache, err := cache.NewRedisClient(ctx)
	if err != nil {
		slog.Error("[Cache] failed to initialized ->", "error", err.Error())
		return nil, err
	}

	if err := redisCache.Ping(ctx); err != nil {
		slog.Error("[Cache] Unable to ping ->", "error", err.Error())
	} else {
		slog.Info("[Cache] connected")
	}

	services, err := service.NewServices(api, redisCache, log)
	if err != nil {
		slog.Error("[Service] failed to initialized -> ", "error", err.Error())
		return nil, err
	}

	return &Dependencies{
		Services:       services,
		Backend:        api,
		Cache:          redisCache,
		AuthHandler:    handlers.NewAuthHandler(services.Auth, log),
		CatalogHandler: handlers.NewCatalogHandler(services.Catalog, log),
		AuctionHandler: handlers.NewAuctionHandler(services.Auction, log),
		BillingHandler: handlers.NewBillingHandler(services.Billing, log),
	}, nil

}
