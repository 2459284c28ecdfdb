package repository

import "context"

// TransactionManager runs a function inside a database transaction. The
// repositories handed to the function are bound to that transaction.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

// Repositories bundles the transaction-scoped repository set.
type Repositories interface {
	UserRepo() UserRepository
	CollectionRepo() CollectionRepository
	TokenBlacklistRepo() TokenBlacklistRepository
	PujoRepo() PujoRepository
	LogRepo() LogRepository
}
