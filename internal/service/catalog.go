package service

import (
	"context"
	"encoding/json"

	"github.com/fortune-auction/gateway/internal/backend"
	"github.com/fortune-auction/gateway/internal/cache"
	"github.com/fortune-auction/gateway/internal/catalog"
	"github.com/fortune-auction/gateway/internal/model"
	"github.com/fortune-auction/gateway/pkg/config"
	"github.com/fortune-auction/gateway/pkg/logger"
	"golang.org/x/sync/errgroup"
)

type CatalogServicer interface {
	VerifiedListings(ctx context.Context, f catalog.Filter, page, perPage int) (catalog.Page[model.JewelryItem], error)
	ModerationListings(ctx context.Context, f catalog.Filter) ([]model.JewelryItem, error)
	JewelryByID(ctx context.Context, subtype model.Subtype, id int) (model.JewelryItem, error)
}

// CatalogService shapes the raw jewelry collections into what the listing
// pages display: aggregated across subtypes, filtered, paginated.
type CatalogService struct {
	api   backend.Gateway
	cache cache.Cacher
	log   *logger.Logger
}

func NewCatalogService(api backend.Gateway, c cache.Cacher, log *logger.Logger) *CatalogService {
	return &CatalogService{
		api:   api,
		cache: c,
		log:   log,
	}
}

// VerifiedListings serves the member jewelry page: the verified catalog,
// aggregated silver->gold->gold-diamond, filtered, sliced into pages of three.
// The aggregated catalog is cached briefly; cache trouble is logged and
// bypassed, never surfaced.
func (cs *CatalogService) VerifiedListings(ctx context.Context, f catalog.Filter, page, perPage int) (catalog.Page[model.JewelryItem], error) {
	items, ok := cs.cachedCatalog(ctx)
	if !ok {
		silver, gold, goldDia, err := cs.api.VerifiedJewelry(ctx)
		if err != nil {
			return catalog.Page[model.JewelryItem]{}, err
		}
		items = catalog.Aggregate(silver, gold, goldDia)
		cs.storeCatalog(ctx, items)
	}

	filtered := f.Apply(items)
	return catalog.Paginate(filtered, page, perPage), nil
}

// ModerationListings serves the staff view: all three subtype collections
// fetched concurrently, verified or not. A failed source contributes an empty
// sequence instead of aborting the whole page.
func (cs *CatalogService) ModerationListings(ctx context.Context, f catalog.Filter) ([]model.JewelryItem, error) {
	var silver, gold, goldDia []model.JewelryItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := cs.api.SilverJewelry(gctx)
		if err != nil {
			cs.log.Warnw("[CATALOG] silver fetch failed", "error", err)
			return nil
		}
		silver = items
		return nil
	})
	g.Go(func() error {
		items, err := cs.api.GoldJewelry(gctx)
		if err != nil {
			cs.log.Warnw("[CATALOG] gold fetch failed", "error", err)
			return nil
		}
		gold = items
		return nil
	})
	g.Go(func() error {
		items, err := cs.api.GoldDiamondJewelry(gctx)
		if err != nil {
			cs.log.Warnw("[CATALOG] gold-diamond fetch failed", "error", err)
			return nil
		}
		goldDia = items
		return nil
	})
	// workers swallow their own errors, Wait only joins
	_ = g.Wait()

	return f.Apply(catalog.Aggregate(silver, gold, goldDia)), nil
}

func (cs *CatalogService) JewelryByID(ctx context.Context, subtype model.Subtype, id int) (model.JewelryItem, error) {
	return cs.api.JewelryByID(ctx, subtype, id)
}

func (cs *CatalogService) cachedCatalog(ctx context.Context) ([]model.JewelryItem, bool) {
	raw, found, err := cs.cache.Get(ctx, config.VerifiedCatalogKey)
	if err != nil {
		cs.log.Warnw("[CACHE] catalog read failed", "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	var items []model.JewelryItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		cs.log.Warnw("[CACHE] catalog entry corrupt, refetching", "error", err)
		return nil, false
	}
	return items, true
}

func (cs *CatalogService) storeCatalog(ctx context.Context, items []model.JewelryItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := cs.cache.Set(ctx, config.VerifiedCatalogKey, string(raw), config.VerifiedCatalogTTL); err != nil {
		cs.log.Warnw("[CACHE] catalog write failed", "error", err)
	}
}
