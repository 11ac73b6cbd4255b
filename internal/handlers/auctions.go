package handlers

import (
	"errors"
	"net/http"

	"github.com/fortune-auction/gateway/internal/model"
	"github.com/fortune-auction/gateway/internal/service"
	"github.com/fortune-auction/gateway/pkg/logger"
)

type AuctionHandler struct {
	svc service.AuctionServicer
	log *logger.Logger
}

func NewAuctionHandler(svc service.AuctionServicer, log *logger.Logger) *AuctionHandler {
	return &AuctionHandler{
		svc: svc,
		log: log,
	}
}

// Register validates and submits an auction registration for one of the
// caller's jewelry items. Schedule violations come back as 400s without ever
// touching the backend; upstream conflicts come back as 409 so the form can
// be corrected and resubmitted.
func (h *AuctionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterAuctionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sess := GetSession(r.Context())
	if sess == nil {
		RespondErrorJSON(w, r, http.StatusUnauthorized, ErrAuthFailed.Error(), "user session not found in context", nil)
		return
	}

	auction, err := h.svc.Register(r.Context(), sess.AccountID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLeadTimeTooShort),
			errors.Is(err, service.ErrDurationTooShort),
			errors.Is(err, service.ErrUnsupportedSubtype):
			RespondErrorJSON(w, r, http.StatusBadRequest, ErrAuctionSchedule.Error(), err.Error(), nil)
			return
		case errors.Is(err, service.ErrScheduleRejected):
			RespondErrorJSON(w, r, http.StatusConflict, ErrAuctionRejected.Error(), "The marketplace rejected this schedule. Please pick another slot.", nil)
			return
		}
		h.log.Errorw("[AUCTION] registration failed", "account_id", sess.AccountID, "error", err)
		RespondErrorJSON(w, r, http.StatusBadGateway, ErrBackend.Error(), "Failed to register auction", nil)
		return
	}

	resp := map[string]any{
		"auction": auction,
	}
	RespondSuccessJSON(w, r, http.StatusCreated, "Auction registered successfully", resp)
}
