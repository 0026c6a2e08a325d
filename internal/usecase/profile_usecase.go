package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/profile"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"

	"github.com/google/uuid"
)

var ErrInvalidProficiency = errors.New("invalid proficiency level")

type AddUserSkillInput struct {
	Name        string
	Proficiency string
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	AddSkill(ctx context.Context, userID uuid.UUID, in AddUserSkillInput) (profile.UserSkill, error)
	RemoveSkill(ctx context.Context, userID uuid.UUID, name string) error
	SetTargetRole(ctx context.Context, userID uuid.UUID, role string) error
	CompleteCourse(ctx context.Context, userID uuid.UUID, courseRef string) error
	SaveCourse(ctx context.Context, userID uuid.UUID, courseRef string) error
	UnsaveCourse(ctx context.Context, userID uuid.UUID, courseRef string) error
	AnalysisHistory(ctx context.Context, userID uuid.UUID, limit int) ([]profile.AnalysisEntry, error)
}

type Profile struct {
	profiles repository.ProfileRepository
}

func NewProfileUsecase(profiles repository.ProfileRepository) *Profile {
	return &Profile{profiles: profiles}
}

func (u *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}
	p, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return profile.Profile{}, ErrUserNotFound
		}
		return profile.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profile) AddSkill(ctx context.Context, userID uuid.UUID, in AddUserSkillInput) (profile.UserSkill, error) {
	if userID == uuid.Nil {
		return profile.UserSkill{}, ErrUnauthorized
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return profile.UserSkill{}, ErrInvalidInput
	}
	prof, ok := profile.ParseProficiency(in.Proficiency)
	if !ok {
		return profile.UserSkill{}, ErrInvalidProficiency
	}

	s := profile.UserSkill{Name: name, Proficiency: prof}
	if err := u.profiles.UpsertSkill(ctx, userID, s); err != nil {
		return profile.UserSkill{}, ErrInternal
	}
	return s, nil
}

func (u *Profile) RemoveSkill(ctx context.Context, userID uuid.UUID, name string) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidInput
	}
	if err := u.profiles.RemoveSkill(ctx, userID, name); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Profile) SetTargetRole(ctx context.Context, userID uuid.UUID, role string) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	role = strings.TrimSpace(role)
	if role == "" {
		return ErrInvalidInput
	}
	if err := u.profiles.SetTargetRole(ctx, userID, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Profile) CompleteCourse(ctx context.Context, userID uuid.UUID, courseRef string) error {
	return u.courseMutation(ctx, userID, courseRef, u.profiles.MarkCourseCompleted)
}

func (u *Profile) SaveCourse(ctx context.Context, userID uuid.UUID, courseRef string) error {
	return u.courseMutation(ctx, userID, courseRef, u.profiles.SaveCourse)
}

func (u *Profile) UnsaveCourse(ctx context.Context, userID uuid.UUID, courseRef string) error {
	return u.courseMutation(ctx, userID, courseRef, u.profiles.UnsaveCourse)
}

func (u *Profile) courseMutation(ctx context.Context, userID uuid.UUID, courseRef string, fn func(context.Context, uuid.UUID, string) error) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	courseRef = strings.TrimSpace(courseRef)
	if courseRef == "" {
		return ErrInvalidInput
	}
	if err := fn(ctx, userID, courseRef); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Profile) AnalysisHistory(ctx context.Context, userID uuid.UUID, limit int) ([]profile.AnalysisEntry, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.profiles.ListAnalysis(ctx, userID, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
