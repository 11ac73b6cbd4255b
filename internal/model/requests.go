package model

// LoginRequest carries the credentials the gateway forwards upstream.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterAuctionRequest is the auction registration form as submitted by the
// browser: a calendar date plus two clock times on that date.
type RegisterAuctionRequest struct {
	JewelryID int     `json:"jewelryId" validate:"required,gt=0"`
	Material  Subtype `json:"material" validate:"required,oneof=Gold Silver GoldDiamond"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string  `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string  `json:"endTime" validate:"required,datetime=15:04"`
}

// CreatePaymentRequest settles the fee for a winning auction result.
type CreatePaymentRequest struct {
	AuctionResultID int `json:"auctionResultId" validate:"required,gt=0"`
}

// BidSummary is one row of the my-bids view: the latest join per auction
// decorated with the jewelry's name, image and the result status.
type BidSummary struct {
	JoinID      int          `json:"joinId"`
	AuctionID   int          `json:"auctionId"`
	JoinDate    LocalTime    `json:"joindate"`
	JewelryName string       `json:"jewelryName"`
	ImageURL    string       `json:"imageUrl"`
	Status      ResultStatus `json:"status"`
}

// PaymentQuote is the fee breakdown shown before confirming a payment.
type PaymentQuote struct {
	Price float64 `json:"price"`
	Fee   float64 `json:"fee"`
	Total float64 `json:"total"`
}

// BidStatement is the bid-record page: the bid log for one join plus the
// reconciled result and whether a payment can still be offered.
type BidStatement struct {
	Records []BidRecord    `json:"records"`
	Result  *AuctionResult `json:"result,omitempty"`
	Quote   *PaymentQuote  `json:"quote,omitempty"`
	Payable bool           `json:"payable"`
}
