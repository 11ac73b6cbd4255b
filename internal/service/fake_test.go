package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fortune-auction/gateway/internal/backend"
	"github.com/fortune-auction/gateway/internal/model"
	"github.com/fortune-auction/gateway/pkg/config"
)

var errFakeNotWired = errors.New("fake gateway call not wired")

// fakeGateway implements backend.Gateway with per-method hooks; unwired
// methods fail loudly.
type fakeGateway struct {
	verifiedFn      func(ctx context.Context) ([]model.JewelryItem, []model.JewelryItem, []model.JewelryItem, error)
	silverFn        func(ctx context.Context) ([]model.JewelryItem, error)
	goldFn          func(ctx context.Context) ([]model.JewelryItem, error)
	goldDiamondFn   func(ctx context.Context) ([]model.JewelryItem, error)
	jewelryByIDFn   func(ctx context.Context, subtype model.Subtype, id int) (model.JewelryItem, error)
	createGoldFn    func(ctx context.Context, req backend.CreateAuctionRequest) (model.Auction, error)
	createSilverFn  func(ctx context.Context, req backend.CreateAuctionRequest) (model.Auction, error)
	auctionByIDFn   func(ctx context.Context, id int) (model.Auction, error)
	joinAuctionsFn  func(ctx context.Context, accountID int) ([]model.JoinAuction, error)
	resultsFn       func(ctx context.Context, accountID int) ([]model.AuctionResult, error)
	bidRecordsFn    func(ctx context.Context, accountID, bidID int) ([]model.BidRecord, error)
	paymentsFn      func(ctx context.Context) ([]model.Payment, error)
	createPaymentFn func(ctx context.Context, accountID, auctionResultID int) error
	loginFn         func(ctx context.Context, email, password string) (model.UserSession, error)
}

func (f *fakeGateway) VerifiedJewelry(ctx context.Context) ([]model.JewelryItem, []model.JewelryItem, []model.JewelryItem, error) {
	if f.verifiedFn == nil {
		return nil, nil, nil, errFakeNotWired
	}
	return f.verifiedFn(ctx)
}

func (f *fakeGateway) SilverJewelry(ctx context.Context) ([]model.JewelryItem, error) {
	if f.silverFn == nil {
		return nil, errFakeNotWired
	}
	return f.silverFn(ctx)
}

func (f *fakeGateway) GoldJewelry(ctx context.Context) ([]model.JewelryItem, error) {
	if f.goldFn == nil {
		return nil, errFakeNotWired
	}
	return f.goldFn(ctx)
}

func (f *fakeGateway) GoldDiamondJewelry(ctx context.Context) ([]model.JewelryItem, error) {
	if f.goldDiamondFn == nil {
		return nil, errFakeNotWired
	}
	return f.goldDiamondFn(ctx)
}

func (f *fakeGateway) JewelryByID(ctx context.Context, subtype model.Subtype, id int) (model.JewelryItem, error) {
	if f.jewelryByIDFn == nil {
		return model.JewelryItem{}, errFakeNotWired
	}
	return f.jewelryByIDFn(ctx, subtype, id)
}

func (f *fakeGateway) CreateGoldAuction(ctx context.Context, req backend.CreateAuctionRequest) (model.Auction, error) {
	if f.createGoldFn == nil {
		return model.Auction{}, errFakeNotWired
	}
	return f.createGoldFn(ctx, req)
}

func (f *fakeGateway) CreateSilverAuction(ctx context.Context, req backend.CreateAuctionRequest) (model.Auction, error) {
	if f.createSilverFn == nil {
		return model.Auction{}, errFakeNotWired
	}
	return f.createSilverFn(ctx, req)
}

func (f *fakeGateway) AuctionByID(ctx context.Context, id int) (model.Auction, error) {
	if f.auctionByIDFn == nil {
		return model.Auction{}, errFakeNotWired
	}
	return f.auctionByIDFn(ctx, id)
}

func (f *fakeGateway) JoinAuctionsByAccount(ctx context.Context, accountID int) ([]model.JoinAuction, error) {
	if f.joinAuctionsFn == nil {
		return nil, errFakeNotWired
	}
	return f.joinAuctionsFn(ctx, accountID)
}

func (f *fakeGateway) AuctionResultsByAccount(ctx context.Context, accountID int) ([]model.AuctionResult, error) {
	if f.resultsFn == nil {
		return nil, errFakeNotWired
	}
	return f.resultsFn(ctx, accountID)
}

func (f *fakeGateway) BidRecords(ctx context.Context, accountID, bidID int) ([]model.BidRecord, error) {
	if f.bidRecordsFn == nil {
		return nil, errFakeNotWired
	}
	return f.bidRecordsFn(ctx, accountID, bidID)
}

func (f *fakeGateway) Payments(ctx context.Context) ([]model.Payment, error) {
	if f.paymentsFn == nil {
		return nil, errFakeNotWired
	}
	return f.paymentsFn(ctx)
}

func (f *fakeGateway) CreatePayment(ctx context.Context, accountID, auctionResultID int) error {
	if f.createPaymentFn == nil {
		return errFakeNotWired
	}
	return f.createPaymentFn(ctx, accountID, auctionResultID)
}

func (f *fakeGateway) Login(ctx context.Context, email, password string) (model.UserSession, error) {
	if f.loginFn == nil {
		return model.UserSession{}, errFakeNotWired
	}
	return f.loginFn(ctx, email, password)
}

// fakeCache is an in-memory Cacher without expiry.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, found := f.entries[key]
	return val, found, nil
}

func (f *fakeCache) Set(_ context.Context, key, val string, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = val
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) Ping(_ context.Context) error { return nil }
func (f *fakeCache) Close() error                 { return nil }

// fakeSessionManager issues predictable tokens.
type fakeSessionManager struct {
	sessions map[string]string // token -> token id
}

func newFakeSessionManager() *fakeSessionManager {
	return &fakeSessionManager{sessions: map[string]string{}}
}

func (f *fakeSessionManager) GenerateSessionToken(accountID int, role int) (string, string, error) {
	tokenID := "jti-" + string(rune('a'+len(f.sessions)))
	token := "token-" + tokenID
	f.sessions[token] = tokenID
	return token, tokenID, nil
}

func (f *fakeSessionManager) ValidateSessionToken(tokenString string) (*config.SessionClaims, error) {
	tokenID, ok := f.sessions[tokenString]
	if !ok {
		return nil, errors.New("unknown token")
	}
	claims := &config.SessionClaims{}
	claims.ID = tokenID
	return claims, nil
}
