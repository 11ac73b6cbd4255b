package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fortune-auction/gateway/internal/model"
	"github.com/fortune-auction/gateway/internal/service"
	"github.com/fortune-auction/gateway/pkg/logger"
	"github.com/go-chi/chi/v5"
)

const bidParamKey = "bidId"

type BillingHandler struct {
	svc service.BillingServicer
	log *logger.Logger
}

func NewBillingHandler(svc service.BillingServicer, log *logger.Logger) *BillingHandler {
	return &BillingHandler{
		svc: svc,
		log: log,
	}
}

// MyBids lists the caller's joined auctions, one row per auction, most recent
// join only.
func (h *BillingHandler) MyBids(w http.ResponseWriter, r *http.Request) {
	sess := GetSession(r.Context())
	if sess == nil {
		RespondErrorJSON(w, r, http.StatusUnauthorized, ErrAuthFailed.Error(), "user session not found in context", nil)
		return
	}

	bids, err := h.svc.MyBids(r.Context(), sess.AccountID)
	if err != nil {
		h.log.Errorw("[BILLING] my-bids failed", "account_id", sess.AccountID, "error", err)
		bids = []model.BidSummary{}
	}
	if bids == nil {
		bids = []model.BidSummary{}
	}

	resp := map[string]any{
		"bids": bids,
	}
	RespondSuccessJSON(w, r, http.StatusOK, "Bids fetched successfully", resp)
}

// BidStatement serves the bid-record page for one join: the bid log, the
// reconciled result and whether payment may still be offered.
func (h *BillingHandler) BidStatement(w http.ResponseWriter, r *http.Request) {
	sess := GetSession(r.Context())
	if sess == nil {
		RespondErrorJSON(w, r, http.StatusUnauthorized, ErrAuthFailed.Error(), "user session not found in context", nil)
		return
	}

	bidID, err := strconv.Atoi(chi.URLParam(r, bidParamKey))
	if err != nil || bidID <= 0 {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingParam.Error(), "Bid ID is required", nil)
		return
	}
	joinID, err := strconv.Atoi(r.URL.Query().Get("joinId"))
	if err != nil || joinID <= 0 {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingParam.Error(), "joinId query param is required", nil)
		return
	}

	statement, err := h.svc.BidStatement(r.Context(), sess.AccountID, joinID, bidID)
	if err != nil {
		h.log.Errorw("[BILLING] bid statement failed",
			"account_id", sess.AccountID, "join_id", joinID, "bid_id", bidID, "error", err)
		RespondErrorJSON(w, r, http.StatusBadGateway, ErrBackend.Error(), "Failed to retrieve bid records", nil)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Bid records fetched successfully", statement)
}

// Pay settles the fee for a winning auction result. A repeat payment attempt
// is a conflict, not a crash.
func (h *BillingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sess := GetSession(r.Context())
	if sess == nil {
		RespondErrorJSON(w, r, http.StatusUnauthorized, ErrAuthFailed.Error(), "user session not found in context", nil)
		return
	}

	if err := h.svc.Pay(r.Context(), sess.AccountID, req.AuctionResultID); err != nil {
		if errors.Is(err, service.ErrPaymentExists) {
			RespondErrorJSON(w, r, http.StatusConflict, ErrPaymentExists.Error(), "This payment has been paid", nil)
			return
		}
		h.log.Errorw("[BILLING] payment failed",
			"account_id", sess.AccountID, "auction_result_id", req.AuctionResultID, "error", err)
		RespondErrorJSON(w, r, http.StatusBadGateway, ErrPaymentFailed.Error(), "Failed to process payment", nil)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Payment successful", "")
}
