package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/profile"

	"github.com/google/uuid"
)

func TestProfileUsecase_AddSkill(t *testing.T) {
	userID := uuid.New()
	repo := &mockProfileRepo{profiles: map[uuid.UUID]profile.Profile{userID: {UserID: userID}}}
	uc := NewProfileUsecase(repo)

	added, err := uc.AddSkill(context.Background(), userID, AddUserSkillInput{Name: " Go ", Proficiency: "Advanced"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if added.Name != "Go" || added.Proficiency != profile.ProficiencyAdvanced {
		t.Fatalf("unexpected skill: %+v", added)
	}
	if len(repo.upserted) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(repo.upserted))
	}
}

func TestProfileUsecase_AddSkillInvalidProficiency(t *testing.T) {
	uc := NewProfileUsecase(&mockProfileRepo{})
	_, err := uc.AddSkill(context.Background(), uuid.New(), AddUserSkillInput{Name: "Go", Proficiency: "grandmaster"})
	if !errors.Is(err, ErrInvalidProficiency) {
		t.Fatalf("expected ErrInvalidProficiency, got %v", err)
	}
}

func TestProfileUsecase_AddSkillEmptyName(t *testing.T) {
	uc := NewProfileUsecase(&mockProfileRepo{})
	_, err := uc.AddSkill(context.Background(), uuid.New(), AddUserSkillInput{Name: "  ", Proficiency: "beginner"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProfileUsecase_NilUserIsUnauthorized(t *testing.T) {
	uc := NewProfileUsecase(&mockProfileRepo{})

	if _, err := uc.GetProfile(context.Background(), uuid.Nil); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := uc.SetTargetRole(context.Background(), uuid.Nil, "backend-developer"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := uc.SaveCourse(context.Background(), uuid.Nil, "go-basics"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestProfileUsecase_SetTargetRoleUnknownUser(t *testing.T) {
	uc := NewProfileUsecase(&mockProfileRepo{})
	if err := uc.SetTargetRole(context.Background(), uuid.New(), "backend-developer"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProfileUsecase_CourseMutationEmptyRef(t *testing.T) {
	userID := uuid.New()
	uc := NewProfileUsecase(&mockProfileRepo{profiles: map[uuid.UUID]profile.Profile{userID: {UserID: userID}}})
	if err := uc.CompleteCourse(context.Background(), userID, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
