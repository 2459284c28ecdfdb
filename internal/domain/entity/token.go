package entity

import "time"

// BlacklistedToken represents a permanently revoked JWT. Only the SHA-256 hex
// hash of the raw token is stored; once a hash is present the token is rejected
// for authentication and refresh forever. There is no un-blacklisting.
type BlacklistedToken struct {
	ID        int64
	TokenHash string
	CreatedAt time.Time
}
