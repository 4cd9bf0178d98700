package loginrecords

import "context"

type Repository interface {
	Create(ctx context.Context, accountID string, ipAddress string) error
}
