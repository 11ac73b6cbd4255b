package config

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Auction scheduling rules enforced before anything reaches the marketplace
	MinAuctionLeadDays = 3
	MinAuctionDuration = 30 * time.Minute

	// Fee rate applied on a winning price to compute the payable total
	FeeRate = 0.30

	// Session token lifetime, also the redis TTL of the session entry
	SessionDuration = 12 * time.Hour

	// Context Keys
	SessionKey = "user_session"

	// Redis key layout
	SessionKeyPrefix   = "session:"
	VerifiedCatalogKey = "catalog:verified"
	VerifiedCatalogTTL = 30 * time.Second
)

// SessionClaims is the payload of the session token handed to the browser.
// The authoritative session record lives in redis under the token ID, so
// deleting that entry revokes the token regardless of its expiry.
type SessionClaims struct {
	AccountID int `json:"account_id"`
	Role      int `json:"role"`
	jwt.RegisteredClaims
}
