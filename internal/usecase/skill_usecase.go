package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/skill"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrSkillNotFound   = errors.New("skill not found")
	ErrInvalidCategory = errors.New("invalid skill category")
)

// Only skills at demand >= 7 qualify as suggestions.
const recommendedDemandFloor = 7.0

type SkillUsecase interface {
	GetSkill(ctx context.Context, name string) (skill.Skill, error)
	ListSkills(ctx context.Context, category string, minDemand float64) ([]skill.Skill, error)
	RecommendSkills(ctx context.Context, userID uuid.UUID, category string) ([]skill.Skill, error)
}

type SkillCatalog struct {
	skills   repository.SkillRepository
	profiles repository.ProfileRepository
}

func NewSkillUsecase(skills repository.SkillRepository, profiles repository.ProfileRepository) *SkillCatalog {
	return &SkillCatalog{skills: skills, profiles: profiles}
}

// GetSkill is an exact, case-sensitive point lookup.
func (u *SkillCatalog) GetSkill(ctx context.Context, name string) (skill.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return skill.Skill{}, ErrInvalidInput
	}
	s, err := u.skills.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, ErrInternal
	}
	return s, nil
}

func (u *SkillCatalog) ListSkills(ctx context.Context, category string, minDemand float64) ([]skill.Skill, error) {
	filter := repository.SkillFilter{MinDemandScore: minDemand}
	if category != "" {
		cat, ok := skill.ParseCategory(category)
		if !ok {
			return nil, ErrInvalidCategory
		}
		filter.Category = cat
	}
	items, err := u.skills.List(ctx, filter)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// RecommendSkills suggests high-demand catalog skills the user does not
// already have, ordered by demand score.
func (u *SkillCatalog) RecommendSkills(ctx context.Context, userID uuid.UUID, category string) ([]skill.Skill, error) {
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

	filter := repository.SkillFilter{MinDemandScore: recommendedDemandFloor}
	if category != "" {
		cat, ok := skill.ParseCategory(category)
		if !ok {
			return nil, ErrInvalidCategory
		}
		filter.Category = cat
	}
	for _, s := range p.Skills {
		filter.ExcludeNames = append(filter.ExcludeNames, s.Name)
	}

	items, err := u.skills.List(ctx, filter)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
