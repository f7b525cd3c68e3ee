package dashboard

import (
	"context"
	"time"
)

type Repository interface {
	Stats(ctx context.Context, now time.Time) (*Stats, error)
	RecentFindings(ctx context.Context, limit int) ([]*RecentFinding, error)
}
