package gap

import (
	"math"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/profile"
)

// Fixed severities: a required skill that is absent is always 100, a
// recommended one always 70. Neither is derived from proficiency distance.
const (
	SeverityCritical    = 100
	SeverityRecommended = 70
)

type Item struct {
	Skill    string
	Severity int
}

// Report is ephemeral: recomputed per request, owned by the caller.
type Report struct {
	CriticalGaps    []Item
	RecommendedGaps []Item
	MatchScore      int
}

// RoleRequirements is the resolved profile of a target role, segmented into
// the skills it requires and the ones it merely recommends.
type RoleRequirements struct {
	Role        string
	Required    []string
	Recommended []string
}

// Analyze compares the user's skill set against a role's requirements.
// A skill counts as present on exact, case-sensitive name match regardless
// of proficiency. A role with zero required skills yields MatchScore 100 and
// no critical gaps.
func Analyze(skills map[string]profile.Proficiency, role RoleRequirements) Report {
	rep := Report{
		CriticalGaps:    make([]Item, 0),
		RecommendedGaps: make([]Item, 0),
	}

	for _, name := range role.Required {
		if name == "" {
			continue
		}
		if _, ok := skills[name]; !ok {
			rep.CriticalGaps = append(rep.CriticalGaps, Item{Skill: name, Severity: SeverityCritical})
		}
	}
	for _, name := range role.Recommended {
		if name == "" {
			continue
		}
		if _, ok := skills[name]; !ok {
			rep.RecommendedGaps = append(rep.RecommendedGaps, Item{Skill: name, Severity: SeverityRecommended})
		}
	}

	required := countNonEmpty(role.Required)
	if required == 0 {
		rep.MatchScore = 100
		return rep
	}

	matched := required - len(rep.CriticalGaps)
	rep.MatchScore = int(math.Round(100 * float64(matched) / float64(required)))
	return rep
}

func countNonEmpty(names []string) int {
	n := 0
	for _, name := range names {
		if name != "" {
			n++
		}
	}
	return n
}
