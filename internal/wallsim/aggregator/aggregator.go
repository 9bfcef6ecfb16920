// Package aggregator computes per-profile cost summaries over historical
// progress data, fanning the independent per-profile queries out across a
// bounded worker pool.
package aggregator

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vladislavdonchev/wall-construction-demo/internal/common/wallerrors"
	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/model"
	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/repository"
)

const dateFormat = "2006-01-02"

type Service struct {
	repo     repository.Repository
	poolSize int
}

// New returns an aggregation service running at most poolSize concurrent
// per-profile queries. poolSize 1 is a legitimate fully serial configuration.
func New(repo repository.Repository, poolSize int) *Service {
	if poolSize < 1 {
		poolSize = 1
	}
	return &Service{repo: repo, poolSize: poolSize}
}

// CalculateMultiProfileCosts returns one ProfileCost per requested profile,
// covering [startDate, endDate] (inclusive, YYYY-MM-DD). Results arrive in
// completion order; callers needing stable order must re-sort by profile id.
// If any profile's aggregation fails, the whole call fails with every
// individual failure named; no partial results are returned.
func (s *Service) CalculateMultiProfileCosts(ctx context.Context, profileIDs []int64, startDate string, endDate string) ([]*model.ProfileCost, error) {
	start, err := parseDate("startDate", startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("endDate", endDate)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	results := make([]*model.ProfileCost, 0, len(profileIDs))
	var failures *multierror.Error

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.poolSize)
	for _, profileID := range profileIDs {
		profileID := profileID
		g.Go(func() error {
			cost, err := s.repo.AggregatesForProfile(ctx, profileID, start, end)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				err = errors.Wrapf(err, "failed to calculate costs for profile %d", profileID)
				failures = multierror.Append(failures, err)
				return err
			}
			results = append(results, cost)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, failures.ErrorOrNil()
	}
	return results, nil
}

func parseDate(name string, value string) (time.Time, error) {
	date, err := time.Parse(dateFormat, value)
	if err != nil {
		return time.Time{}, &wallerrors.ErrInvalidArgument{
			Name:    name,
			Value:   value,
			Message: "dates must be formatted YYYY-MM-DD",
		}
	}
	return date, nil
}
