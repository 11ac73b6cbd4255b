package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fortune-auction/gateway/internal/model"
	"github.com/fortune-auction/gateway/pkg/utils"
)

// Gateway is the surface of the marketplace backend the rest of the gateway
// consumes. *Client is the only production implementation; tests substitute
// fakes.
type Gateway interface {
	VerifiedJewelry(ctx context.Context) (silver, gold, goldDiamond []model.JewelryItem, err error)
	SilverJewelry(ctx context.Context) ([]model.JewelryItem, error)
	GoldJewelry(ctx context.Context) ([]model.JewelryItem, error)
	GoldDiamondJewelry(ctx context.Context) ([]model.JewelryItem, error)
	JewelryByID(ctx context.Context, subtype model.Subtype, id int) (model.JewelryItem, error)
	CreateGoldAuction(ctx context.Context, req CreateAuctionRequest) (model.Auction, error)
	CreateSilverAuction(ctx context.Context, req CreateAuctionRequest) (model.Auction, error)
	AuctionByID(ctx context.Context, id int) (model.Auction, error)
	JoinAuctionsByAccount(ctx context.Context, accountID int) ([]model.JoinAuction, error)
	AuctionResultsByAccount(ctx context.Context, accountID int) ([]model.AuctionResult, error)
	BidRecords(ctx context.Context, accountID, bidID int) ([]model.BidRecord, error)
	Payments(ctx context.Context) ([]model.Payment, error)
	CreatePayment(ctx context.Context, accountID, auctionResultID int) error
	Login(ctx context.Context, email, password string) (model.UserSession, error)
}

// CreateAuctionRequest is the upstream auction registration payload. The
// timestamps are ISO-local without a timezone suffix, exactly one jewelry id
// is set.
type CreateAuctionRequest struct {
	AccountID int    `json:"accountId"`
	StartTime string `json:"starttime"`
	EndTime   string `json:"endtime"`
	GoldID    *int   `json:"jewelryGoldId,omitempty"`
	SilverID  *int   `json:"jewelrySilverId,omitempty"`
}

// StatusError carries a non-2xx upstream response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.Code, e.Body)
}

// IsClientError reports whether the backend rejected the request itself, as
// opposed to failing internally. Business-rule rejections (duplicate payment,
// schedule conflict) land here.
func (e *StatusError) IsClientError() bool {
	return e.Code >= 400 && e.Code < 500
}

type Client struct {
	base string
	http *http.Client
}

// New builds a client against the fixed backend origin.
func New(origin string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(origin, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// NewFromEnv reads BACKEND_ORIGIN and BACKEND_TIMEOUT.
func NewFromEnv() *Client {
	origin := utils.GetEnv("BACKEND_ORIGIN", "https://localhost:44361")
	timeout := utils.GetDurationEnv("BACKEND_TIMEOUT", 15*time.Second)
	return New(origin, timeout)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, in, out)
}

// list fetches a `$values`-wrapped (or bare) array payload.
func list[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var payload valueList[T]
	if err := c.get(ctx, path, query, &payload); err != nil {
		return nil, err
	}
	return payload.Values, nil
}

func tagAll(items []model.JewelryItem) []model.JewelryItem {
	for i := range items {
		items[i].TagSubtype()
	}
	return items
}

// VerifiedJewelry fetches the composite verified-listings endpoint, one list
// per subtype.
func (c *Client) VerifiedJewelry(ctx context.Context) (silver, gold, goldDiamond []model.JewelryItem, err error) {
	var payload struct {
		Silver      valueList[model.JewelryItem] `json:"jewelrySilver"`
		Gold        valueList[model.JewelryItem] `json:"jewelryGold"`
		GoldDiamond valueList[model.JewelryItem] `json:"jewelryGoldDiamond"`
	}
	if err := c.get(ctx, "/api/Jewelries/GetVerified", nil, &payload); err != nil {
		return nil, nil, nil, err
	}
	return tagAll(payload.Silver.Values), tagAll(payload.Gold.Values), tagAll(payload.GoldDiamond.Values), nil
}

func (c *Client) SilverJewelry(ctx context.Context) ([]model.JewelryItem, error) {
	items, err := list[model.JewelryItem](ctx, c, "/api/JewelrySilver", nil)
	return tagAll(items), err
}

func (c *Client) GoldJewelry(ctx context.Context) ([]model.JewelryItem, error) {
	items, err := list[model.JewelryItem](ctx, c, "/api/JewelryGold", nil)
	return tagAll(items), err
}

func (c *Client) GoldDiamondJewelry(ctx context.Context) ([]model.JewelryItem, error) {
	items, err := list[model.JewelryItem](ctx, c, "/api/JewelryGoldDia", nil)
	return tagAll(items), err
}

func subtypePath(subtype model.Subtype) (string, error) {
	switch subtype {
	case model.SubtypeSilver:
		return "/api/JewelrySilver", nil
	case model.SubtypeGold:
		return "/api/JewelryGold", nil
	case model.SubtypeGoldDiamond:
		return "/api/JewelryGoldDia", nil
	}
	return "", fmt.Errorf("unknown jewelry subtype %q", subtype)
}

func (c *Client) JewelryByID(ctx context.Context, subtype model.Subtype, id int) (model.JewelryItem, error) {
	base, err := subtypePath(subtype)
	if err != nil {
		return model.JewelryItem{}, err
	}
	var item model.JewelryItem
	if err := c.get(ctx, fmt.Sprintf("%s/GetById/%d", base, id), nil, &item); err != nil {
		return model.JewelryItem{}, err
	}
	item.TagSubtype()
	if item.Subtype == "" {
		// detail payloads omit the id they were fetched by
		item.Subtype = subtype
	}
	return item, nil
}

func (c *Client) CreateGoldAuction(ctx context.Context, req CreateAuctionRequest) (model.Auction, error) {
	var auction model.Auction
	err := c.post(ctx, "/api/Auctions/CreateGoldJewelryAuction", req, &auction)
	return auction, err
}

func (c *Client) CreateSilverAuction(ctx context.Context, req CreateAuctionRequest) (model.Auction, error) {
	var auction model.Auction
	err := c.post(ctx, "/api/Auctions/CreateSilverJewelryAuction", req, &auction)
	return auction, err
}

func (c *Client) AuctionByID(ctx context.Context, id int) (model.Auction, error) {
	var auction model.Auction
	err := c.get(ctx, "/api/Auctions/GetById/"+strconv.Itoa(id), nil, &auction)
	return auction, err
}

func (c *Client) JoinAuctionsByAccount(ctx context.Context, accountID int) ([]model.JoinAuction, error) {
	return list[model.JoinAuction](ctx, c, "/api/JoinAuction/GetByAccountId/"+strconv.Itoa(accountID), nil)
}

func (c *Client) AuctionResultsByAccount(ctx context.Context, accountID int) ([]model.AuctionResult, error) {
	return list[model.AuctionResult](ctx, c, "/api/AuctionResults/GetByAccountId/"+strconv.Itoa(accountID), nil)
}

func (c *Client) BidRecords(ctx context.Context, accountID, bidID int) ([]model.BidRecord, error) {
	query := url.Values{}
	query.Set("accountId", strconv.Itoa(accountID))
	query.Set("bidId", strconv.Itoa(bidID))
	return list[model.BidRecord](ctx, c, "/api/BidRecord/GetBidRecordByAccountIdAndBidId", query)
}

func (c *Client) Payments(ctx context.Context) ([]model.Payment, error) {
	return list[model.Payment](ctx, c, "/api/Payment/GetAllPayments", nil)
}

func (c *Client) CreatePayment(ctx context.Context, accountID, auctionResultID int) error {
	payload := map[string]int{
		"accountId":       accountID,
		"auctionResultId": auctionResultID,
	}
	return c.post(ctx, "/api/Payment/CreatePayment", payload, nil)
}

func (c *Client) Login(ctx context.Context, email, password string) (model.UserSession, error) {
	payload := map[string]string{
		"accountEmail":    email,
		"accountPassword": password,
	}
	var user model.UserSession
	err := c.post(ctx, "/api/Login/login", payload, &user)
	return user, err
}
