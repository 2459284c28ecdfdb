package repository

import "context"

// TokenBlacklistRepository stores revoked token hashes. Entries are never
// removed; a hash present in the table means the token is dead.
type TokenBlacklistRepository interface {
	// Blacklist records a token hash. Recording a hash that is already
	// present returns errors.ErrTokenRevoked.
	Blacklist(ctx context.Context, tokenHash string) error
	// IsBlacklisted reports whether a token hash has been recorded.
	IsBlacklisted(ctx context.Context, tokenHash string) (bool, error)
}
