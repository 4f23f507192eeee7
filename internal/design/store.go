package design

import "context"

// Store is the document store behind the designs surface. Create returns the
// store-assigned identifier. List filters by exact user id when userID is
// non-empty. There is no update or delete; the surface is create/list only.
type Store interface {
	Create(ctx context.Context, d Design) (string, error)
	List(ctx context.Context, userID string) ([]Design, error)
	Ping(ctx context.Context) error
}
