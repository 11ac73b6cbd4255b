package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fortune-auction/gateway/internal/catalog"
	"github.com/fortune-auction/gateway/internal/model"
	"github.com/fortune-auction/gateway/pkg/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// addSessionToContext injects a resolved member session, the way the session
// middleware would.
func addSessionToContext(req *http.Request, sess *model.UserSession) *http.Request {
	ctx := context.WithValue(req.Context(), config.SessionKey, sess)
	return req.WithContext(ctx)
}

// addURLParam adds a chi URL param to the request context.
func addURLParam(req *http.Request, key, value string) *http.Request {
	rctx, ok := req.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

func memberSession() *model.UserSession {
	return &model.UserSession{AccountID: 7, Name: "Ann", Email: "a@b.c", Role: model.RoleMember}
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

// fakeAuthService implements service.AuthServicer.
type fakeAuthService struct {
	loginFn   func(ctx context.Context, email, password string) (string, model.UserSession, error)
	logoutFn  func(ctx context.Context, token string) error
	resolveFn func(ctx context.Context, token string) (model.UserSession, error)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, model.UserSession, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	return f.logoutFn(ctx, token)
}

func (f *fakeAuthService) Resolve(ctx context.Context, token string) (model.UserSession, error) {
	return f.resolveFn(ctx, token)
}

// fakeCatalogService implements service.CatalogServicer.
type fakeCatalogService struct {
	verifiedFn   func(ctx context.Context, f catalog.Filter, page, perPage int) (catalog.Page[model.JewelryItem], error)
	moderationFn func(ctx context.Context, f catalog.Filter) ([]model.JewelryItem, error)
	byIDFn       func(ctx context.Context, subtype model.Subtype, id int) (model.JewelryItem, error)
}

func (f *fakeCatalogService) VerifiedListings(ctx context.Context, filter catalog.Filter, page, perPage int) (catalog.Page[model.JewelryItem], error) {
	return f.verifiedFn(ctx, filter, page, perPage)
}

func (f *fakeCatalogService) ModerationListings(ctx context.Context, filter catalog.Filter) ([]model.JewelryItem, error) {
	return f.moderationFn(ctx, filter)
}

func (f *fakeCatalogService) JewelryByID(ctx context.Context, subtype model.Subtype, id int) (model.JewelryItem, error) {
	return f.byIDFn(ctx, subtype, id)
}

// fakeAuctionService implements service.AuctionServicer.
type fakeAuctionService struct {
	registerFn func(ctx context.Context, accountID int, req model.RegisterAuctionRequest) (model.Auction, error)
}

func (f *fakeAuctionService) Register(ctx context.Context, accountID int, req model.RegisterAuctionRequest) (model.Auction, error) {
	return f.registerFn(ctx, accountID, req)
}

// fakeBillingService implements service.BillingServicer.
type fakeBillingService struct {
	myBidsFn    func(ctx context.Context, accountID int) ([]model.BidSummary, error)
	statementFn func(ctx context.Context, accountID, joinID, bidID int) (model.BidStatement, error)
	payFn       func(ctx context.Context, accountID, auctionResultID int) error
}

func (f *fakeBillingService) MyBids(ctx context.Context, accountID int) ([]model.BidSummary, error) {
	return f.myBidsFn(ctx, accountID)
}

func (f *fakeBillingService) BidStatement(ctx context.Context, accountID, joinID, bidID int) (model.BidStatement, error) {
	return f.statementFn(ctx, accountID, joinID, bidID)
}

func (f *fakeBillingService) Pay(ctx context.Context, accountID, auctionResultID int) error {
	return f.payFn(ctx, accountID, auctionResultID)
}
