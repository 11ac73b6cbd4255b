package service

import (
	"context"
	"errors"
	"math"

	"github.com/fortune-auction/gateway/internal/backend"
	"github.com/fortune-auction/gateway/internal/model"
	"github.com/fortune-auction/gateway/pkg/config"
	"github.com/fortune-auction/gateway/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// detailLookupLimit bounds the parallel auction/jewelry lookups of the
// my-bids view.
const detailLookupLimit = 8

type BillingServicer interface {
	MyBids(ctx context.Context, accountID int) ([]model.BidSummary, error)
	BidStatement(ctx context.Context, accountID, joinID, bidID int) (model.BidStatement, error)
	Pay(ctx context.Context, accountID, auctionResultID int) error
}

// BillingService reconciles an account's joins with auction results and
// existing payments, and settles winning fees.
type BillingService struct {
	api backend.Gateway
	log *logger.Logger
}

func NewBillingService(api backend.Gateway, log *logger.Logger) *BillingService {
	return &BillingService{
		api: api,
		log: log,
	}
}

// LatestJoins collapses the join log to the most recent join per auction,
// by join timestamp. First-seen auction order is preserved.
func LatestJoins(joins []model.JoinAuction) []model.JoinAuction {
	latest := make([]model.JoinAuction, 0, len(joins))
	index := make(map[int]int, len(joins))
	for _, join := range joins {
		at, seen := index[join.AuctionID]
		if !seen {
			index[join.AuctionID] = len(latest)
			latest = append(latest, join)
			continue
		}
		if join.JoinDate.After(latest[at].JoinDate.Time) {
			latest[at] = join
		}
	}
	return latest
}

// MatchResult finds the auction result belonging to a join. Should the
// backend ever hand out several results for one join, the one with the
// highest result id wins the tie.
func MatchResult(results []model.AuctionResult, joinID int) (model.AuctionResult, bool) {
	var best model.AuctionResult
	found := false
	for _, result := range results {
		if result.JoinAuctionID != joinID {
			continue
		}
		if !found || result.ID > best.ID {
			best = result
			found = true
		}
	}
	return best, found
}

// Quote computes the fee breakdown for a winning price: a 30% surcharge,
// rounded to cents, on top of the price itself.
func Quote(price float64) model.PaymentQuote {
	fee := math.Round(price*config.FeeRate*100) / 100
	return model.PaymentQuote{
		Price: price,
		Fee:   fee,
		Total: price + fee,
	}
}

// Payable reports whether a pay action may be offered: only a Win that no
// existing payment already settles.
func Payable(result model.AuctionResult, payments []model.Payment) bool {
	if result.Status != model.ResultWin {
		return false
	}
	for _, payment := range payments {
		if payment.AuctionResultID == result.ID {
			return false
		}
	}
	return true
}

// MyBids builds the my-bids rows: the latest join per auction, decorated with
// the auction's jewelry name and image and the result status. Detail lookups
// run in parallel; a failed lookup degrades its own row to name/image-less
// rather than failing the whole view.
func (bs *BillingService) MyBids(ctx context.Context, accountID int) ([]model.BidSummary, error) {
	joins, err := bs.api.JoinAuctionsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	results, err := bs.api.AuctionResultsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	latest := LatestJoins(joins)
	summaries := make([]model.BidSummary, len(latest))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailLookupLimit)
	for i, join := range latest {
		i, join := i, join
		summaries[i] = model.BidSummary{
			JoinID:    join.ID,
			AuctionID: join.AuctionID,
			JoinDate:  join.JoinDate,
			Status:    model.ResultUnknown,
		}
		if result, ok := MatchResult(results, join.ID); ok {
			summaries[i].Status = result.Status
		}

		g.Go(func() error {
			name, image, err := bs.auctionJewelry(gctx, join.AuctionID)
			if err != nil {
				bs.log.Warnw("[BILLING] jewelry lookup failed",
					"auction_id", join.AuctionID, "error", err)
				return nil
			}
			summaries[i].JewelryName = name
			summaries[i].ImageURL = image
			return nil
		})
	}
	_ = g.Wait()

	return summaries, nil
}

// auctionJewelry resolves the jewelry name and image of an auction via its
// subtype-specific detail endpoint.
func (bs *BillingService) auctionJewelry(ctx context.Context, auctionID int) (name, image string, err error) {
	auction, err := bs.api.AuctionByID(ctx, auctionID)
	if err != nil {
		return "", "", err
	}

	var subtype model.Subtype
	var jewelryID int
	switch {
	case auction.GoldID != nil:
		subtype, jewelryID = model.SubtypeGold, *auction.GoldID
	case auction.SilverID != nil:
		subtype, jewelryID = model.SubtypeSilver, *auction.SilverID
	case auction.GoldDiamondID != nil:
		subtype, jewelryID = model.SubtypeGoldDiamond, *auction.GoldDiamondID
	default:
		return "", "", nil
	}

	item, err := bs.api.JewelryByID(ctx, subtype, jewelryID)
	if err != nil {
		return "", "", err
	}
	return item.Name, item.ImageURL, nil
}

// BidStatement assembles the bid-record page: the bid log plus the reconciled
// result, the fee quote and the payable gate. A join without a result is not
// an error, the page just renders without the payment block.
func (bs *BillingService) BidStatement(ctx context.Context, accountID, joinID, bidID int) (model.BidStatement, error) {
	records, err := bs.api.BidRecords(ctx, accountID, bidID)
	if err != nil {
		return model.BidStatement{}, err
	}
	statement := model.BidStatement{Records: records}

	results, err := bs.api.AuctionResultsByAccount(ctx, accountID)
	if err != nil {
		bs.log.Warnw("[BILLING] results fetch failed", "account_id", accountID, "error", err)
		return statement, nil
	}
	result, ok := MatchResult(results, joinID)
	if !ok {
		return statement, nil
	}

	quote := Quote(result.Price)
	statement.Result = &result
	statement.Quote = &quote

	payments, err := bs.api.Payments(ctx)
	if err != nil {
		// can't prove the result unpaid, so withhold the pay action
		bs.log.Warnw("[BILLING] payments fetch failed", "error", err)
		return statement, nil
	}
	statement.Payable = Payable(result, payments)

	return statement, nil
}

// Pay posts the payment for an auction result. A backend rejection is the
// duplicate-payment case and maps to ErrPaymentExists; the caller's state is
// left for the user to retry.
func (bs *BillingService) Pay(ctx context.Context, accountID, auctionResultID int) error {
	err := bs.api.CreatePayment(ctx, accountID, auctionResultID)
	if err == nil {
		return nil
	}
	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) && statusErr.IsClientError() {
		return ErrPaymentExists
	}
	return err
}
