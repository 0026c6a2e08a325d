package usecase

import (
	"context"
	"log"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/job"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"
)

type MarketTrends struct {
	TrendingJobs   []job.Posting
	SalaryInsights []repository.SalaryInsight
}

type TrendsUsecase interface {
	GetMarketTrends(ctx context.Context, category string) (MarketTrends, error)
}

type Trends struct {
	jobs  repository.JobRepository
	cache SearchCache
	log   *log.Logger
}

func NewTrendsUsecase(jobs repository.JobRepository, cache SearchCache, logger *log.Logger) *Trends {
	if logger == nil {
		logger = log.Default()
	}
	return &Trends{jobs: jobs, cache: cache, log: logger}
}

// GetMarketTrends returns postings with positive demand growth plus salary
// aggregates per category. Responses are cached briefly; the snapshot is
// only refreshed periodically anyway.
func (u *Trends) GetMarketTrends(ctx context.Context, category string) (MarketTrends, error) {
	key := cacheKeyTrends + category
	if u.cache != nil {
		var cached MarketTrends
		if found, err := u.cache.GetJSON(ctx, key, &cached); err == nil && found {
			return cached, nil
		}
	}

	trending, err := u.jobs.ListTrending(ctx, category, 10)
	if err != nil {
		return MarketTrends{}, ErrInternal
	}
	salaries, err := u.jobs.SalaryInsights(ctx)
	if err != nil {
		return MarketTrends{}, ErrInternal
	}

	out := MarketTrends{TrendingJobs: trending, SalaryInsights: salaries}
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, 5*time.Minute); err != nil {
			u.log.Printf("trends step=cache status=error err=%v", err)
		}
	}
	return out, nil
}
