package demand

import (
	"math"
	"testing"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/job"
)

func posting(skills ...job.RequiredSkill) job.Posting {
	return job.Posting{Title: "Backend Engineer", Category: "engineering", RequiredSkills: skills}
}

func TestCompute_ImportanceWeighting(t *testing.T) {
	corpus := make([]job.Posting, 0, 10)
	for i := 0; i < 6; i++ {
		corpus = append(corpus, posting(job.RequiredSkill{Name: "AWS", Importance: job.ImportanceMustHave}))
	}
	for i := 0; i < 4; i++ {
		corpus = append(corpus, posting(job.RequiredSkill{Name: "AWS", Importance: job.ImportancePreferred}))
	}

	scores := Compute(corpus, time.Now())
	got, ok := scores["AWS"]
	if !ok {
		t.Fatalf("expected AWS to be scored")
	}
	if got.Count != 10 {
		t.Fatalf("expected count=10, got %d", got.Count)
	}
	if math.Abs(got.ImportanceScore-0.84) > 1e-9 {
		t.Fatalf("expected importanceScore=0.84, got %v", got.ImportanceScore)
	}
	if math.Abs(got.Score-0.84) > 1e-9 {
		t.Fatalf("expected score=0.84, got %v", got.Score)
	}
}

func TestCompute_UnknownImportanceFallback(t *testing.T) {
	scores := Compute([]job.Posting{
		posting(job.RequiredSkill{Name: "Go", Importance: "mandatory-ish"}),
		posting(job.RequiredSkill{Name: "Go", Importance: job.ImportanceMustHave}),
	}, time.Now())

	got := scores["Go"]
	if math.Abs(got.ImportanceScore-0.75) > 1e-9 {
		t.Fatalf("expected mean weight 0.75 with 0.5 fallback, got %v", got.ImportanceScore)
	}
}

func TestCompute_ScoreCeiling(t *testing.T) {
	corpus := make([]job.Posting, 0, 500)
	for i := 0; i < 500; i++ {
		corpus = append(corpus, posting(job.RequiredSkill{Name: "SQL", Importance: job.ImportanceMustHave}))
	}
	got := Compute(corpus, time.Now())["SQL"]
	if got.Score != 10 {
		t.Fatalf("expected score capped at 10, got %v", got.Score)
	}
}

func TestCompute_BoundsForAllReferencedSkills(t *testing.T) {
	corpus := []job.Posting{
		posting(
			job.RequiredSkill{Name: "Go", Importance: job.ImportanceMustHave},
			job.RequiredSkill{Name: "Docker", Importance: job.ImportanceNiceToHave},
		),
		posting(job.RequiredSkill{Name: "Kubernetes", Importance: job.ImportancePreferred}),
		posting(),
	}
	scores := Compute(corpus, time.Now())
	if len(scores) != 3 {
		t.Fatalf("expected 3 scored skills, got %d", len(scores))
	}
	for name, s := range scores {
		if s.Score < 0 || s.Score > 10 {
			t.Fatalf("skill %q score out of [0,10]: %v", name, s.Score)
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	corpus := []job.Posting{
		posting(
			job.RequiredSkill{Name: "React", Importance: job.ImportanceMustHave},
			job.RequiredSkill{Name: "TypeScript", Importance: job.ImportancePreferred},
		),
		posting(job.RequiredSkill{Name: "React", Importance: job.ImportanceNiceToHave}),
	}
	now := time.Now()
	first := Compute(corpus, now)
	second := Compute(corpus, now)
	if len(first) != len(second) {
		t.Fatalf("expected identical result sets")
	}
	for name, a := range first {
		b, ok := second[name]
		if !ok {
			t.Fatalf("skill %q missing on second pass", name)
		}
		if a.Score != b.Score || a.Count != b.Count || a.ImportanceScore != b.ImportanceScore {
			t.Fatalf("skill %q differs across passes: %+v vs %+v", name, a, b)
		}
	}
}

func TestCompute_EmptyCorpus(t *testing.T) {
	scores := Compute(nil, time.Now())
	if len(scores) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(scores))
	}
}

func TestCompute_SkillNamesCaseSensitive(t *testing.T) {
	scores := Compute([]job.Posting{
		posting(job.RequiredSkill{Name: "go", Importance: job.ImportanceMustHave}),
		posting(job.RequiredSkill{Name: "Go", Importance: job.ImportanceMustHave}),
	}, time.Now())
	if len(scores) != 2 {
		t.Fatalf("expected exact-name grouping to keep 2 entries, got %d", len(scores))
	}
}
