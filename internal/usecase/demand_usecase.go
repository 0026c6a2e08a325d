package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/demand"
	"github.com/Harshverma1208/skill-companion-project/internal/pkg/workerpool"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"
	"github.com/Harshverma1208/skill-companion-project/internal/ws"
)

var (
	ErrInternal           = errors.New("internal error")
	ErrAggregationRunning = errors.New("aggregation pass already running")
)

type SkillDemand struct {
	Score     float64
	UpdatedAt time.Time
}

// DemandReport is the outcome of one aggregation pass. FailedSkills lists
// records skipped after a write failure; their siblings still committed.
type DemandReport struct {
	Scores       map[string]SkillDemand
	PostingCount int
	UpdatedCount int
	FailedSkills []string
	Duration     time.Duration
}

type DemandUsecase interface {
	ComputeSkillDemand(ctx context.Context) (DemandReport, error)
	LatestSnapshot(ctx context.Context) (map[string]SkillDemand, bool, error)
}

type DemandParams struct {
	Workers       int
	SnapshotLimit int
	LockTTL       time.Duration
}

type Demand struct {
	jobs   repository.JobRepository
	skills repository.SkillRepository
	cache  SearchCache
	params DemandParams
	log    *log.Logger
	now    func() time.Time
}

func NewDemandUsecase(jobs repository.JobRepository, skills repository.SkillRepository, cache SearchCache, params DemandParams, logger *log.Logger) *Demand {
	if logger == nil {
		logger = log.Default()
	}
	if params.Workers <= 0 {
		params.Workers = 8
	}
	if params.LockTTL <= 0 {
		params.LockTTL = 2 * time.Minute
	}
	return &Demand{
		jobs:   jobs,
		skills: skills,
		cache:  cache,
		params: params,
		log:    logger,
		now:    time.Now,
	}
}

// ComputeSkillDemand runs one aggregation pass over the corpus snapshot.
// Every skill is written independently: a failing record is logged, reported
// and skipped while the rest of the batch continues. The pass is idempotent
// and safe to interrupt between per-skill writes; committed scores stay.
func (u *Demand) ComputeSkillDemand(ctx context.Context) (DemandReport, error) {
	start := u.now()

	if u.cache != nil {
		acquired, err := u.cache.SetIfNotExists(ctx, cacheKeyDemandLock, start.UTC().Format(time.RFC3339), u.params.LockTTL)
		if err == nil && !acquired {
			return DemandReport{}, ErrAggregationRunning
		}
		defer func() { _ = u.cache.Delete(context.Background(), cacheKeyDemandLock) }()
	}

	corpus, err := u.jobs.Snapshot(ctx, u.params.SnapshotLimit)
	if err != nil {
		u.log.Printf("aggregator=demand step=snapshot status=error err=%v", err)
		return DemandReport{}, ErrInternal
	}

	scores := demand.Compute(corpus, start)
	u.log.Printf("aggregator=demand step=compute postings=%d skills=%d", len(corpus), len(scores))

	pool := workerpool.New(u.params.Workers, u.params.Workers*2)
	results := pool.Run(ctx)

	go func() {
		for _, s := range scores {
			s := s
			pool.Submit(ctx, workerpool.Task{
				Key: s.Name,
				Run: func(ctx context.Context) error {
					return u.skills.ApplyDemandUpdate(ctx, repository.DemandUpdate{
						Name:      s.Name,
						Score:     s.Score,
						UpdatedAt: s.UpdatedAt,
					})
				},
			})
		}
		pool.Close()
	}()

	report := DemandReport{
		Scores:       make(map[string]SkillDemand, len(scores)),
		PostingCount: len(corpus),
	}
	for res := range results {
		if res.Err != nil {
			u.log.Printf("aggregator=demand step=upsert status=error skill=%q err=%v", res.Key, res.Err)
			report.FailedSkills = append(report.FailedSkills, res.Key)
			continue
		}
		report.UpdatedCount++
	}
	sort.Strings(report.FailedSkills)

	for name, s := range scores {
		report.Scores[name] = SkillDemand{Score: s.Score, UpdatedAt: s.UpdatedAt}
	}
	report.Duration = u.now().Sub(start)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKeyDemandLatest, report.Scores, 0); err != nil {
			u.log.Printf("aggregator=demand step=cache status=error err=%v", err)
		}
	}

	ws.NotifyDemandUpdated(report.UpdatedCount, len(report.FailedSkills))
	u.log.Printf("aggregator=demand status=finished updated=%d failed=%d duration=%s",
		report.UpdatedCount, len(report.FailedSkills), report.Duration)

	return report, nil
}

// LatestSnapshot serves the most recent cached score map, if any.
func (u *Demand) LatestSnapshot(ctx context.Context) (map[string]SkillDemand, bool, error) {
	if u.cache == nil {
		return nil, false, nil
	}
	out := make(map[string]SkillDemand)
	found, err := u.cache.GetJSON(ctx, cacheKeyDemandLatest, &out)
	if err != nil {
		return nil, false, ErrInternal
	}
	return out, found, nil
}
