package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/gap"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/profile"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrRoleNotFound = errors.New("target role not found")
	ErrUserNotFound = errors.New("user not found")
)

type GapUsecase interface {
	AnalyzeGapForUser(ctx context.Context, userID uuid.UUID, targetRole string) (gap.Report, error)
	AnalyzeGap(ctx context.Context, skills []profile.UserSkill, targetRole string) (gap.Report, error)
}

type Gap struct {
	skills   repository.SkillRepository
	profiles repository.ProfileRepository
	log      *log.Logger
}

func NewGapUsecase(skills repository.SkillRepository, profiles repository.ProfileRepository, logger *log.Logger) *Gap {
	if logger == nil {
		logger = log.Default()
	}
	return &Gap{skills: skills, profiles: profiles, log: logger}
}

// AnalyzeGapForUser resolves the user's snapshot, runs the analysis and
// appends a skill-gap entry to the history log. The append is best-effort:
// a history failure is logged, never surfaced as an analysis failure.
func (u *Gap) AnalyzeGapForUser(ctx context.Context, userID uuid.UUID, targetRole string) (gap.Report, error) {
	if userID == uuid.Nil {
		return gap.Report{}, ErrInvalidInput
	}

	p, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return gap.Report{}, ErrUserNotFound
		}
		return gap.Report{}, ErrInternal
	}

	rep, err := u.AnalyzeGap(ctx, p.Skills, targetRole)
	if err != nil {
		return gap.Report{}, err
	}

	if err := u.profiles.AppendAnalysis(ctx, userID, profile.AnalysisSkillGap, rep); err != nil {
		u.log.Printf("analyzer=gap step=history status=error user=%s err=%v", userID, err)
	}
	return rep, nil
}

// AnalyzeGap is the stateless variant over an explicit skill list. An
// unknown role (no configured requirements at all) fails fast rather than
// returning a degraded report.
func (u *Gap) AnalyzeGap(ctx context.Context, skills []profile.UserSkill, targetRole string) (gap.Report, error) {
	targetRole = strings.TrimSpace(targetRole)
	if targetRole == "" {
		return gap.Report{}, ErrInvalidInput
	}

	required, recommended, err := u.skills.RoleRequirements(ctx, targetRole)
	if err != nil {
		return gap.Report{}, ErrInternal
	}
	if len(required) == 0 && len(recommended) == 0 {
		return gap.Report{}, ErrRoleNotFound
	}

	skillSet := make(map[string]profile.Proficiency, len(skills))
	for _, s := range skills {
		if s.Name == "" {
			continue
		}
		skillSet[s.Name] = s.Proficiency
	}

	return gap.Analyze(skillSet, gap.RoleRequirements{
		Role:        targetRole,
		Required:    required,
		Recommended: recommended,
	}), nil
}
