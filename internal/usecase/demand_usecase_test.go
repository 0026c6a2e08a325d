package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/job"
)

func demandCorpus() []job.Posting {
	postings := make([]job.Posting, 0, 10)
	for i := 0; i < 6; i++ {
		postings = append(postings, job.Posting{
			Title: "Cloud Engineer",
			RequiredSkills: []job.RequiredSkill{
				{Name: "AWS", Importance: job.ImportanceMustHave},
			},
		})
	}
	for i := 0; i < 4; i++ {
		postings = append(postings, job.Posting{
			Title: "Platform Engineer",
			RequiredSkills: []job.RequiredSkill{
				{Name: "AWS", Importance: job.ImportancePreferred},
				{Name: "Go", Importance: job.ImportanceMustHave},
			},
		})
	}
	return postings
}

func TestDemandUsecase_ComputeSkillDemand(t *testing.T) {
	skills := &mockSkillRepo{}
	uc := NewDemandUsecase(&mockJobRepo{snapshot: demandCorpus()}, skills, nil, DemandParams{Workers: 4}, nil)

	rep, err := uc.ComputeSkillDemand(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rep.PostingCount != 10 {
		t.Fatalf("expected 10 postings, got %d", rep.PostingCount)
	}
	if rep.UpdatedCount != 2 {
		t.Fatalf("expected 2 updated skills, got %d", rep.UpdatedCount)
	}
	if len(rep.FailedSkills) != 0 {
		t.Fatalf("expected no failures, got %v", rep.FailedSkills)
	}

	aws, ok := rep.Scores["AWS"]
	if !ok {
		t.Fatalf("missing AWS score")
	}
	if math.Abs(aws.Score-0.84) > 1e-9 {
		t.Fatalf("expected AWS score 0.84, got %v", aws.Score)
	}
	if len(skills.appliedUpdates()) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(skills.appliedUpdates()))
	}
}

func TestDemandUsecase_PartialWriteFailure(t *testing.T) {
	skills := &mockSkillRepo{applyErrFor: map[string]error{"AWS": errors.New("write failed")}}
	uc := NewDemandUsecase(&mockJobRepo{snapshot: demandCorpus()}, skills, nil, DemandParams{Workers: 2}, nil)

	rep, err := uc.ComputeSkillDemand(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rep.FailedSkills) != 1 || rep.FailedSkills[0] != "AWS" {
		t.Fatalf("expected AWS to fail, got %v", rep.FailedSkills)
	}
	if rep.UpdatedCount != 1 {
		t.Fatalf("expected the sibling write to commit, got %d", rep.UpdatedCount)
	}
	applied := skills.appliedUpdates()
	if len(applied) != 1 || applied[0].Name != "Go" {
		t.Fatalf("expected only Go committed, got %v", applied)
	}
}

func TestDemandUsecase_ConcurrentRunRejected(t *testing.T) {
	cache := newMockCache()
	cache.locked = true

	uc := NewDemandUsecase(&mockJobRepo{snapshot: demandCorpus()}, &mockSkillRepo{}, cache, DemandParams{Workers: 2}, nil)
	if _, err := uc.ComputeSkillDemand(context.Background()); !errors.Is(err, ErrAggregationRunning) {
		t.Fatalf("expected ErrAggregationRunning, got %v", err)
	}
}

func TestDemandUsecase_LockReleasedAfterRun(t *testing.T) {
	cache := newMockCache()
	uc := NewDemandUsecase(&mockJobRepo{snapshot: demandCorpus()}, &mockSkillRepo{}, cache, DemandParams{Workers: 2}, nil)

	if _, err := uc.ComputeSkillDemand(context.Background()); err != nil {
		t.Fatalf("first run err: %v", err)
	}
	if _, err := uc.ComputeSkillDemand(context.Background()); err != nil {
		t.Fatalf("second run should acquire the released lock, got %v", err)
	}
}

func TestDemandUsecase_SnapshotErrorIsInternal(t *testing.T) {
	uc := NewDemandUsecase(&mockJobRepo{snapshotErr: errors.New("db down")}, &mockSkillRepo{}, nil, DemandParams{Workers: 2}, nil)
	if _, err := uc.ComputeSkillDemand(context.Background()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestDemandUsecase_LatestSnapshot(t *testing.T) {
	cache := newMockCache()
	uc := NewDemandUsecase(&mockJobRepo{snapshot: demandCorpus()}, &mockSkillRepo{}, cache, DemandParams{Workers: 2}, nil)

	if _, found, err := uc.LatestSnapshot(context.Background()); err != nil || found {
		t.Fatalf("expected empty cache, found=%v err=%v", found, err)
	}

	if _, err := uc.ComputeSkillDemand(context.Background()); err != nil {
		t.Fatalf("run err: %v", err)
	}
	if _, found, err := uc.LatestSnapshot(context.Background()); err != nil || !found {
		t.Fatalf("expected cached snapshot, found=%v err=%v", found, err)
	}
}

func TestDemandUsecase_ReportDuration(t *testing.T) {
	uc := NewDemandUsecase(&mockJobRepo{snapshot: demandCorpus()}, &mockSkillRepo{}, nil, DemandParams{Workers: 2}, nil)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	uc.now = func() time.Time {
		calls++
		if calls == 1 {
			return base
		}
		return base.Add(3 * time.Second)
	}

	rep, err := uc.ComputeSkillDemand(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rep.Duration != 3*time.Second {
		t.Fatalf("expected 3s duration, got %s", rep.Duration)
	}
	for _, s := range rep.Scores {
		if !s.UpdatedAt.Equal(base) {
			t.Fatalf("expected UpdatedAt %s, got %s", base, s.UpdatedAt)
		}
	}
}
