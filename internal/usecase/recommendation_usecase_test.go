package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/course"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/job"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/profile"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"

	"github.com/google/uuid"
)

func coursePool() []course.Course {
	return []course.Course{
		{ExternalID: "go-basics", Title: "Go Basics", Skills: []string{"Go"}, Rating: course.Rating{Score: 4.2}, EnrollmentCount: 1000},
		{ExternalID: "go-advanced", Title: "Advanced Go", Skills: []string{"Go"}, Rating: course.Rating{Score: 4.8}, EnrollmentCount: 500},
		{ExternalID: "react-intro", Title: "React Intro", Skills: []string{"React"}, Rating: course.Rating{Score: 4.8}, EnrollmentCount: 2000},
		{ExternalID: "leadership", Title: "Leading Teams", Skills: []string{"Leadership"}, Rating: course.Rating{Score: 4.9}, EnrollmentCount: 9000},
	}
}

func recommendationProfiles(userID uuid.UUID, p profile.Profile) *mockProfileRepo {
	p.UserID = userID
	return &mockProfileRepo{profiles: map[uuid.UUID]profile.Profile{userID: p}}
}

func TestRecommendCourses_RanksByRatingThenEnrollment(t *testing.T) {
	userID := uuid.New()
	profiles := recommendationProfiles(userID, profile.Profile{
		Skills: []profile.UserSkill{
			{Name: "Go", Proficiency: profile.ProficiencyBeginner},
			{Name: "Leadership", Proficiency: profile.ProficiencyExpert},
		},
	})
	uc := NewRecommendationUsecase(&mockCourseRepo{pool: coursePool()}, &mockJobRepo{}, profiles, nil)

	items, err := uc.RecommendCourses(context.Background(), userID, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// React is missing, Go is held at beginner; Leadership is expert level
	// so its course is not relevant.
	if len(items) != 3 {
		t.Fatalf("expected 3 courses, got %d", len(items))
	}
	if items[0].ExternalID != "react-intro" {
		t.Fatalf("expected react-intro first (4.8 rating, more enrollments), got %s", items[0].ExternalID)
	}
	if items[1].ExternalID != "go-advanced" {
		t.Fatalf("expected go-advanced second, got %s", items[1].ExternalID)
	}
	if items[2].ExternalID != "go-basics" {
		t.Fatalf("expected go-basics third, got %s", items[2].ExternalID)
	}
}

func TestRecommendCourses_ExcludesCompleted(t *testing.T) {
	userID := uuid.New()
	profiles := recommendationProfiles(userID, profile.Profile{
		Skills:           []profile.UserSkill{{Name: "Go", Proficiency: profile.ProficiencyBeginner}},
		CompletedCourses: []string{"go-basics"},
	})
	uc := NewRecommendationUsecase(&mockCourseRepo{pool: coursePool()}, &mockJobRepo{}, profiles, nil)

	items, err := uc.RecommendCourses(context.Background(), userID, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, c := range items {
		if c.ExternalID == "go-basics" {
			t.Fatalf("completed course leaked into recommendations")
		}
	}
}

func TestRecommendCourses_EmptyPool(t *testing.T) {
	userID := uuid.New()
	uc := NewRecommendationUsecase(&mockCourseRepo{}, &mockJobRepo{}, recommendationProfiles(userID, profile.Profile{}), nil)

	items, err := uc.RecommendCourses(context.Background(), userID, 0)
	if err != nil {
		t.Fatalf("empty pool must not error, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty result, got %d", len(items))
	}
}

func TestRecommendCourses_UnknownUser(t *testing.T) {
	uc := NewRecommendationUsecase(&mockCourseRepo{}, &mockJobRepo{}, &mockProfileRepo{}, nil)
	if _, err := uc.RecommendCourses(context.Background(), uuid.New(), 0); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRecommendCourses_NilUser(t *testing.T) {
	uc := NewRecommendationUsecase(&mockCourseRepo{}, &mockJobRepo{}, &mockProfileRepo{}, nil)
	if _, err := uc.RecommendCourses(context.Background(), uuid.Nil, 0); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRecommendJobs_RanksByGrowthThenPositions(t *testing.T) {
	userID := uuid.New()
	profiles := recommendationProfiles(userID, profile.Profile{})

	jobs := &mockJobRepo{snapshot: []job.Posting{
		{
			ID:             uuid.New(),
			Title:          "Steady Role",
			RequiredSkills: []job.RequiredSkill{{Name: "Go", Importance: job.ImportanceMustHave}},
			Metrics:        job.DemandMetrics{GrowthRate: 5.0, OpenPositions: 100},
		},
		{
			ID:             uuid.New(),
			Title:          "Hot Role",
			RequiredSkills: []job.RequiredSkill{{Name: "React", Importance: job.ImportanceMustHave}},
			Metrics:        job.DemandMetrics{GrowthRate: 15.0, OpenPositions: 10},
		},
	}}
	uc := NewRecommendationUsecase(&mockCourseRepo{}, jobs, profiles, nil)

	items, err := uc.RecommendJobs(context.Background(), userID, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(items))
	}
	if items[0].Title != "Hot Role" {
		t.Fatalf("expected highest growth first, got %s", items[0].Title)
	}
}

func TestSearchCourses_PassThrough(t *testing.T) {
	hit := []course.Course{{ExternalID: "go-basics", Title: "Go Basics"}}
	uc := NewRecommendationUsecase(&mockCourseRepo{searchHit: hit}, &mockJobRepo{}, &mockProfileRepo{}, nil)

	items, err := uc.SearchCourses(context.Background(), repository.CourseFilter{Skill: "Go"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 || items[0].ExternalID != "go-basics" {
		t.Fatalf("unexpected search result: %v", items)
	}
}
