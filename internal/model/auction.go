package model

// ResultStatus is the outcome of a joined auction as reported by the backend.
type ResultStatus string

const (
	ResultWin     ResultStatus = "Win"
	ResultLose    ResultStatus = "Lose"
	ResultUnknown ResultStatus = "Unknown"
)

// Auction is a time-boxed bidding event for exactly one jewelry item,
// immutable once registered.
type Auction struct {
	ID            int       `json:"auctionId"`
	AccountID     int       `json:"accountId"`
	GoldID        *int      `json:"jewelryGoldId,omitempty"`
	SilverID      *int      `json:"jewelrySilverId,omitempty"`
	GoldDiamondID *int      `json:"jewelryGolddiaId,omitempty"`
	StartTime     LocalTime `json:"starttime"`
	EndTime       LocalTime `json:"endtime"`
	Status        string    `json:"status,omitempty"`
}

// JoinAuction records that an account joined an auction. Several joins may
// exist per (account, auction) pair; only the most recent one is current.
type JoinAuction struct {
	ID        int       `json:"id"`
	AccountID int       `json:"accountId"`
	AuctionID int       `json:"auctionId"`
	JoinDate  LocalTime `json:"joindate"`
}

// AuctionResult is the outcome of one join, linked back by JoinAuctionID.
type AuctionResult struct {
	ID            int          `json:"auctionresultId"`
	JoinAuctionID int          `json:"joinauctionId"`
	Status        ResultStatus `json:"status"`
	Price         float64      `json:"price"`
}

// Payment marks an auction result as settled. Its mere presence for a result
// id disables repeat payment.
type Payment struct {
	ID              int       `json:"paymentId"`
	AccountID       int       `json:"accountId"`
	AuctionResultID int       `json:"auctionResultId"`
	PaymentDate     LocalTime `json:"paymentDate"`
}

// BidRecord is one append-only entry of the bid log, display order preserved.
type BidRecord struct {
	ID        int     `json:"id"`
	BidStep   float64 `json:"bidStep"`
	BidAmount float64 `json:"bidAmount"`
}
