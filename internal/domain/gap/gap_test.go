package gap

import (
	"testing"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/profile"
)

func TestAnalyze_PartialMatch(t *testing.T) {
	rep := Analyze(
		map[string]profile.Proficiency{"React": profile.ProficiencyBeginner},
		RoleRequirements{
			Role:     "Frontend Developer",
			Required: []string{"React", "Node.js"},
		},
	)

	if len(rep.CriticalGaps) != 1 {
		t.Fatalf("expected 1 critical gap, got %d", len(rep.CriticalGaps))
	}
	if rep.CriticalGaps[0].Skill != "Node.js" || rep.CriticalGaps[0].Severity != SeverityCritical {
		t.Fatalf("unexpected critical gap: %+v", rep.CriticalGaps[0])
	}
	if len(rep.RecommendedGaps) != 0 {
		t.Fatalf("expected no recommended gaps, got %d", len(rep.RecommendedGaps))
	}
	if rep.MatchScore != 50 {
		t.Fatalf("expected matchScore=50, got %d", rep.MatchScore)
	}
}

func TestAnalyze_RecommendedSeverity(t *testing.T) {
	rep := Analyze(
		map[string]profile.Proficiency{},
		RoleRequirements{
			Role:        "Backend Developer",
			Required:    []string{"Go"},
			Recommended: []string{"Docker", "Kubernetes"},
		},
	)

	if len(rep.RecommendedGaps) != 2 {
		t.Fatalf("expected 2 recommended gaps, got %d", len(rep.RecommendedGaps))
	}
	for _, it := range rep.RecommendedGaps {
		if it.Severity != SeverityRecommended {
			t.Fatalf("expected severity %d, got %d for %q", SeverityRecommended, it.Severity, it.Skill)
		}
	}
}

func TestAnalyze_AllMissing(t *testing.T) {
	rep := Analyze(nil, RoleRequirements{Required: []string{"Go", "SQL", "Docker"}})
	if rep.MatchScore != 0 {
		t.Fatalf("expected matchScore=0, got %d", rep.MatchScore)
	}
	if len(rep.CriticalGaps) != 3 {
		t.Fatalf("expected 3 critical gaps, got %d", len(rep.CriticalGaps))
	}
}

func TestAnalyze_AllPresent(t *testing.T) {
	skills := map[string]profile.Proficiency{
		"Go":  profile.ProficiencyAdvanced,
		"SQL": profile.ProficiencyBeginner,
	}
	rep := Analyze(skills, RoleRequirements{Required: []string{"Go", "SQL"}})
	if rep.MatchScore != 100 {
		t.Fatalf("expected matchScore=100, got %d", rep.MatchScore)
	}
	if len(rep.CriticalGaps) != 0 {
		t.Fatalf("expected no critical gaps, got %d", len(rep.CriticalGaps))
	}
}

func TestAnalyze_ZeroRequiredSkills(t *testing.T) {
	rep := Analyze(map[string]profile.Proficiency{"Go": profile.ProficiencyExpert}, RoleRequirements{Role: "Generalist"})
	if rep.MatchScore != 100 {
		t.Fatalf("expected matchScore=100 for empty requirements, got %d", rep.MatchScore)
	}
	if len(rep.CriticalGaps) != 0 {
		t.Fatalf("expected empty criticalGaps, got %d", len(rep.CriticalGaps))
	}
}

func TestAnalyze_GapCountInvariant(t *testing.T) {
	required := []string{"Go", "SQL", "Docker", "Kubernetes", "AWS"}
	skills := map[string]profile.Proficiency{
		"Go":     profile.ProficiencyIntermediate,
		"Docker": profile.ProficiencyBeginner,
	}
	rep := Analyze(skills, RoleRequirements{Required: required})

	matched := 0
	for _, name := range required {
		if _, ok := skills[name]; ok {
			matched++
		}
	}
	if len(rep.CriticalGaps)+matched != len(required) {
		t.Fatalf("invariant violated: %d gaps + %d matched != %d required", len(rep.CriticalGaps), matched, len(required))
	}
}

func TestAnalyze_CaseSensitiveMatch(t *testing.T) {
	rep := Analyze(
		map[string]profile.Proficiency{"react": profile.ProficiencyAdvanced},
		RoleRequirements{Required: []string{"React"}},
	)
	if len(rep.CriticalGaps) != 1 {
		t.Fatalf("expected case-sensitive lookup to miss, got %d gaps", len(rep.CriticalGaps))
	}
}
