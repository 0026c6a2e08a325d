package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/profile"
)

type UserSkillResponse struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type ProfileResponse struct {
	UserID           uuid.UUID           `json:"user_id"`
	CurrentRole      string              `json:"current_role"`
	TargetRole       string              `json:"target_role"`
	Skills           []UserSkillResponse `json:"skills"`
	CompletedCourses []string            `json:"completed_courses"`
	SavedCourses     []string            `json:"saved_courses"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	out := ProfileResponse{
		UserID:           p.UserID,
		CurrentRole:      p.CurrentRole,
		TargetRole:       p.TargetRole,
		Skills:           make([]UserSkillResponse, 0, len(p.Skills)),
		CompletedCourses: p.CompletedCourses,
		SavedCourses:     p.SavedCourses,
	}
	for _, s := range p.Skills {
		out.Skills = append(out.Skills, NewUserSkillResponse(s))
	}
	if out.CompletedCourses == nil {
		out.CompletedCourses = []string{}
	}
	if out.SavedCourses == nil {
		out.SavedCourses = []string{}
	}
	return out
}

func NewUserSkillResponse(s profile.UserSkill) UserSkillResponse {
	return UserSkillResponse{Name: s.Name, Proficiency: string(s.Proficiency)}
}

type AnalysisEntryResponse struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
	Result    json.RawMessage `json:"result"`
}

func NewAnalysisHistoryResponse(items []profile.AnalysisEntry) []AnalysisEntryResponse {
	out := make([]AnalysisEntryResponse, 0, len(items))
	for _, e := range items {
		out = append(out, AnalysisEntryResponse{
			ID:        e.ID,
			Type:      string(e.Type),
			CreatedAt: e.CreatedAt,
			Result:    e.Result,
		})
	}
	return out
}
