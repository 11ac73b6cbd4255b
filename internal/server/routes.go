package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fortune-auction/gateway/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func (s *Server) CommonRoutes(mux *chi.Mux) {
	mux.HandleFunc("GET /api/v1/health", healthCheck)
}

func (s *Server) AuthRoutes(mux *chi.Mux) {
	mux.HandleFunc("POST /api/v1/auth/login", s.Deps.AuthHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/logout", s.Deps.AuthHandler.Logout)
}

// MemberRoutes are every page an authenticated account can reach: listings,
// auction registration, my-bids, bid records, payment.
func (s *Server) MemberRoutes(mux *chi.Mux) {
	mux.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(s.Deps.Services.Auth))
		r.HandleFunc("GET /api/v1/jewelry", s.Deps.CatalogHandler.Listings)
		r.HandleFunc("GET /api/v1/jewelry/{subtype}/{jewelryId}", s.Deps.CatalogHandler.JewelryByID)
		r.HandleFunc("POST /api/v1/auctions", s.Deps.AuctionHandler.Register)
		r.HandleFunc("GET /api/v1/bids", s.Deps.BillingHandler.MyBids)
		r.HandleFunc("GET /api/v1/bids/{bidId}/records", s.Deps.BillingHandler.BidStatement)
		r.HandleFunc("POST /api/v1/payments", s.Deps.BillingHandler.Pay)
	})
}

// StaffRoutes are the moderation views, gated to Staff and Manager roles.
func (s *Server) StaffRoutes(mux *chi.Mux) {
	mux.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(s.Deps.Services.Auth))
		r.Use(middleware.RequireModerator)
		r.HandleFunc("GET /api/v1/staff/jewelry", s.Deps.CatalogHandler.ModerationListings)
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"message": "ok",
		"time":    time.Now().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	json.NewEncoder(w).Encode(resp)

}
