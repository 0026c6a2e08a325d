package dto

import (
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/skill"
)

type RoleTagResponse struct {
	Role       string `json:"role"`
	Importance string `json:"importance"`
}

type SkillResponse struct {
	Name              string            `json:"name"`
	Category          string            `json:"category"`
	RelatedSkills     []string          `json:"related_skills"`
	Roles             []RoleTagResponse `json:"roles,omitempty"`
	DemandScore       float64           `json:"demand_score"`
	DemandLastUpdated time.Time         `json:"demand_last_updated"`
}

func NewSkillResponse(s skill.Skill) SkillResponse {
	out := SkillResponse{
		Name:              s.Name,
		Category:          string(s.Category),
		RelatedSkills:     s.RelatedSkills,
		DemandScore:       s.DemandScore,
		DemandLastUpdated: s.DemandLastUpdated,
	}
	if out.RelatedSkills == nil {
		out.RelatedSkills = []string{}
	}
	for _, r := range s.Roles {
		out.Roles = append(out.Roles, RoleTagResponse{Role: r.Role, Importance: string(r.Importance)})
	}
	return out
}

func NewSkillListResponse(items []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, s := range items {
		out = append(out, NewSkillResponse(s))
	}
	return out
}
