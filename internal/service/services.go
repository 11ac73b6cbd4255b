package service

import (
	"github.com/fortune-auction/gateway/internal/backend"
	"github.com/fortune-auction/gateway/internal/cache"
	"github.com/fortune-auction/gateway/pkg/logger"
)

// Services bundles every service the handlers depend on.
type Services struct {
	Auth    AuthServicer
	Catalog CatalogServicer
	Auction AuctionServicer
	Billing BillingServicer
}

func NewServices(api backend.Gateway, c cache.Cacher, log *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(api, c, log)
	if err != nil {
		return nil, err
	}
	return &Services{
		Auth:    authService,
		Catalog: NewCatalogService(api, c, log),
		Auction: NewAuctionService(api, log),
		Billing: NewBillingService(api, log),
	}, nil
}
