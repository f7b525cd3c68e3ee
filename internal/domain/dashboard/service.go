package dashboard

import (
	"context"
	"time"
)

// recentLimit matches the length of the recent-activity list on the
// landing page.
const recentLimit = 5

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx, s.now())
}

func (s *Service) RecentFindings(ctx context.Context) ([]*RecentFinding, error) {
	return s.repo.RecentFindings(ctx, recentLimit)
}
