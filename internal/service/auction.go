package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fortune-auction/gateway/internal/backend"
	"github.com/fortune-auction/gateway/internal/model"
	"github.com/fortune-auction/gateway/pkg/config"
	"github.com/fortune-auction/gateway/pkg/logger"
)

const (
	dateLayout     = "2006-01-02"
	clockLayout    = "15:04"
	isoLocalLayout = "2006-01-02T15:04:05"
)

type AuctionServicer interface {
	Register(ctx context.Context, accountID int, req model.RegisterAuctionRequest) (model.Auction, error)
}

// AuctionService owns auction registration: it validates the schedule before
// anything touches the network and forwards accepted registrations to the
// subtype-specific marketplace endpoint.
type AuctionService struct {
	api backend.Gateway
	log *logger.Logger
	now func() time.Time
}

func NewAuctionService(api backend.Gateway, log *logger.Logger) *AuctionService {
	return &AuctionService{
		api: api,
		log: log,
		now: time.Now,
	}
}

// ValidateSchedule checks the two temporal constraints of a registration and
// returns the resolved start and end datetimes. The lead-time check compares
// midnights so today+3 is accepted exactly on the boundary; the duration
// check rejects anything under 30 minutes, which covers end-before-start as a
// negative difference.
func ValidateSchedule(now time.Time, date, startTime, endTime string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid auction date: %w", err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	minDate := today.AddDate(0, 0, config.MinAuctionLeadDays)
	if day.Before(minDate) {
		return time.Time{}, time.Time{}, ErrLeadTimeTooShort
	}

	start, err := time.ParseInLocation(clockLayout, startTime, now.Location())
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start time: %w", err)
	}
	end, err := time.ParseInLocation(clockLayout, endTime, now.Location())
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end time: %w", err)
	}

	startAt := time.Date(day.Year(), day.Month(), day.Day(), start.Hour(), start.Minute(), 0, 0, now.Location())
	endAt := time.Date(day.Year(), day.Month(), day.Day(), end.Hour(), end.Minute(), 0, 0, now.Location())

	if endAt.Sub(startAt) < config.MinAuctionDuration {
		return time.Time{}, time.Time{}, ErrDurationTooShort
	}
	return startAt, endAt, nil
}

// Register validates and submits one auction registration. Validation
// failures never reach the backend; backend rejections surface as
// ErrScheduleRejected so the form can stay intact for a retry.
func (as *AuctionService) Register(ctx context.Context, accountID int, req model.RegisterAuctionRequest) (model.Auction, error) {
	startAt, endAt, err := ValidateSchedule(as.now(), req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return model.Auction{}, err
	}

	createReq := backend.CreateAuctionRequest{
		AccountID: accountID,
		StartTime: startAt.Format(isoLocalLayout),
		EndTime:   endAt.Format(isoLocalLayout),
	}

	var auction model.Auction
	switch req.Material {
	case model.SubtypeGold:
		createReq.GoldID = &req.JewelryID
		auction, err = as.api.CreateGoldAuction(ctx, createReq)
	case model.SubtypeSilver:
		createReq.SilverID = &req.JewelryID
		auction, err = as.api.CreateSilverAuction(ctx, createReq)
	default:
		return model.Auction{}, ErrUnsupportedSubtype
	}

	if err != nil {
		var statusErr *backend.StatusError
		if errors.As(err, &statusErr) && statusErr.IsClientError() {
			as.log.Infow("[AUCTION] registration rejected upstream",
				"account_id", accountID, "status", statusErr.Code, "body", statusErr.Body)
			return model.Auction{}, ErrScheduleRejected
		}
		return model.Auction{}, err
	}
	return auction, nil
}
