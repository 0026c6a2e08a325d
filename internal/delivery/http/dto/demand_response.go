package dto

import (
	"sort"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/usecase"
)

type SkillDemandResponse struct {
	Skill     string    `json:"skill"`
	Score     float64   `json:"score"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DemandReportResponse struct {
	PostingCount int                   `json:"posting_count"`
	UpdatedCount int                   `json:"updated_count"`
	FailedSkills []string              `json:"failed_skills"`
	DurationMS   int64                 `json:"duration_ms"`
	Scores       []SkillDemandResponse `json:"scores"`
}

func NewDemandReportResponse(rep usecase.DemandReport) DemandReportResponse {
	out := DemandReportResponse{
		PostingCount: rep.PostingCount,
		UpdatedCount: rep.UpdatedCount,
		FailedSkills: rep.FailedSkills,
		DurationMS:   rep.Duration.Milliseconds(),
		Scores:       NewSkillDemandList(rep.Scores),
	}
	if out.FailedSkills == nil {
		out.FailedSkills = []string{}
	}
	return out
}

// NewSkillDemandList flattens the score map into a name-sorted list so the
// payload is deterministic.
func NewSkillDemandList(scores map[string]usecase.SkillDemand) []SkillDemandResponse {
	out := make([]SkillDemandResponse, 0, len(scores))
	for name, s := range scores {
		out = append(out, SkillDemandResponse{Skill: name, Score: s.Score, UpdatedAt: s.UpdatedAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Skill < out[j].Skill })
	return out
}
