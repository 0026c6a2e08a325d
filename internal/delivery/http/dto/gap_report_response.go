package dto

import "github.com/Harshverma1208/skill-companion-project/internal/domain/gap"

type GapItemResponse struct {
	Skill    string `json:"skill"`
	Severity int    `json:"gap"`
}

type GapReportResponse struct {
	MatchScore      int               `json:"match_score"`
	CriticalGaps    []GapItemResponse `json:"critical_gaps"`
	RecommendedGaps []GapItemResponse `json:"recommended_gaps"`
}

func NewGapReportResponse(rep gap.Report) GapReportResponse {
	out := GapReportResponse{
		MatchScore:      rep.MatchScore,
		CriticalGaps:    make([]GapItemResponse, 0, len(rep.CriticalGaps)),
		RecommendedGaps: make([]GapItemResponse, 0, len(rep.RecommendedGaps)),
	}
	for _, it := range rep.CriticalGaps {
		out.CriticalGaps = append(out.CriticalGaps, GapItemResponse{Skill: it.Skill, Severity: it.Severity})
	}
	for _, it := range rep.RecommendedGaps {
		out.RecommendedGaps = append(out.RecommendedGaps, GapItemResponse{Skill: it.Skill, Severity: it.Severity})
	}
	return out
}
