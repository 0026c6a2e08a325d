package profile

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Proficiency is an ordinal: beginner < intermediate < advanced < expert.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

func ParseProficiency(raw string) (Proficiency, bool) {
	switch Proficiency(strings.ToLower(strings.TrimSpace(raw))) {
	case ProficiencyBeginner:
		return ProficiencyBeginner, true
	case ProficiencyIntermediate:
		return ProficiencyIntermediate, true
	case ProficiencyAdvanced:
		return ProficiencyAdvanced, true
	case ProficiencyExpert:
		return ProficiencyExpert, true
	}
	return "", false
}

// Rank returns the ordinal position, 0 for an unknown value.
func (p Proficiency) Rank() int {
	switch p {
	case ProficiencyBeginner:
		return 1
	case ProficiencyIntermediate:
		return 2
	case ProficiencyAdvanced:
		return 3
	case ProficiencyExpert:
		return 4
	}
	return 0
}

type UserSkill struct {
	Name        string
	Proficiency Proficiency
}

type AnalysisType string

const (
	AnalysisSkillGap AnalysisType = "skill-gap"
	AnalysisResume   AnalysisType = "resume"
	AnalysisJobTrend AnalysisType = "job-trend"
)

// AnalysisEntry is one record of the append-only history log. Result holds
// the analysis output snapshot as it was at the time of the run.
type AnalysisEntry struct {
	ID        uuid.UUID
	Type      AnalysisType
	CreatedAt time.Time
	Result    json.RawMessage
}

// Profile is the authoritative per-user snapshot consumed by the gap
// analyzer and the ranker.
type Profile struct {
	UserID           uuid.UUID
	CurrentRole      string
	TargetRole       string
	Skills           []UserSkill
	CompletedCourses []string
	SavedCourses     []string
}

// SkillSet indexes skills by exact name for membership checks.
func (p Profile) SkillSet() map[string]Proficiency {
	out := make(map[string]Proficiency, len(p.Skills))
	for _, s := range p.Skills {
		if s.Name == "" {
			continue
		}
		out[s.Name] = s.Proficiency
	}
	return out
}
