package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/course"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/job"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/profile"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/ranking"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"

	"github.com/google/uuid"
)

var ErrUnauthorized = errors.New("unauthorized")

type RecommendationUsecase interface {
	RecommendCourses(ctx context.Context, userID uuid.UUID, limit int) ([]course.Course, error)
	RecommendJobs(ctx context.Context, userID uuid.UUID, limit int) ([]job.Posting, error)
	SearchCourses(ctx context.Context, filter repository.CourseFilter) ([]course.Course, error)
}

type Recommendation struct {
	courses  repository.CourseRepository
	jobs     repository.JobRepository
	profiles repository.ProfileRepository
	log      *log.Logger
}

func NewRecommendationUsecase(
	courses repository.CourseRepository,
	jobs repository.JobRepository,
	profiles repository.ProfileRepository,
	logger *log.Logger,
) *Recommendation {
	if logger == nil {
		logger = log.Default()
	}
	return &Recommendation{courses: courses, jobs: jobs, profiles: profiles, log: logger}
}

// RecommendCourses ranks the course pool for the user: completed courses are
// excluded, only courses teaching a missing or beginner-level skill qualify,
// ordered rating desc then enrollment desc with stable ties. An empty pool
// is an empty result, not an error.
func (u *Recommendation) RecommendCourses(ctx context.Context, userID uuid.UUID, limit int) ([]course.Course, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	p, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}

	pool, err := u.courses.ListCandidates(ctx, 0)
	if err != nil {
		return nil, ErrInternal
	}

	byRef := make(map[string]course.Course, len(pool))
	candidates := make([]ranking.Candidate, 0, len(pool))
	for _, c := range pool {
		if c.ExternalID == "" {
			continue
		}
		byRef[c.ExternalID] = c
		candidates = append(candidates, ranking.Candidate{
			ID:         c.ExternalID,
			Skills:     c.Skills,
			Quality:    c.Rating.Score,
			Popularity: c.EnrollmentCount,
		})
	}

	ranked := ranking.RankIDs(userView(p.SkillSet(), p.CompletedCourses), candidates, limit)

	out := make([]course.Course, 0, len(ranked))
	for _, ref := range ranked {
		out = append(out, byRef[ref])
	}
	return out, nil
}

// RecommendJobs ranks job postings by demand growth rate, then open
// positions. A posting qualifies through the same relevant-skill rule as
// courses, over its required skill names.
func (u *Recommendation) RecommendJobs(ctx context.Context, userID uuid.UUID, limit int) ([]job.Posting, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	p, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}

	pool, err := u.jobs.Snapshot(ctx, 0)
	if err != nil {
		return nil, ErrInternal
	}

	byID := make(map[string]job.Posting, len(pool))
	candidates := make([]ranking.Candidate, 0, len(pool))
	for _, posting := range pool {
		if posting.ID == uuid.Nil {
			continue
		}
		id := posting.ID.String()
		byID[id] = posting
		names := make([]string, 0, len(posting.RequiredSkills))
		for _, rs := range posting.RequiredSkills {
			names = append(names, rs.Name)
		}
		candidates = append(candidates, ranking.Candidate{
			ID:         id,
			Skills:     names,
			Quality:    posting.Metrics.GrowthRate,
			Popularity: posting.Metrics.OpenPositions,
		})
	}

	ranked := ranking.RankIDs(userView(p.SkillSet(), nil), candidates, limit)

	out := make([]job.Posting, 0, len(ranked))
	for _, id := range ranked {
		out = append(out, byID[id])
	}
	return out, nil
}

func (u *Recommendation) SearchCourses(ctx context.Context, filter repository.CourseFilter) ([]course.Course, error) {
	items, err := u.courses.Search(ctx, filter)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func userView(skills map[string]profile.Proficiency, completed []string) ranking.UserView {
	done := make(map[string]struct{}, len(completed))
	for _, id := range completed {
		if id == "" {
			continue
		}
		done[id] = struct{}{}
	}
	return ranking.UserView{Skills: skills, Completed: done}
}
