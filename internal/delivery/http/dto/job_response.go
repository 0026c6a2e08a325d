package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/job"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"
)

type RequiredSkillResponse struct {
	Name       string `json:"name"`
	Importance string `json:"importance"`
}

type JobPostingResponse struct {
	ID             uuid.UUID               `json:"id"`
	Title          string                  `json:"title"`
	Category       string                  `json:"category"`
	Description    string                  `json:"description,omitempty"`
	RequiredSkills []RequiredSkillResponse `json:"required_skills"`
	SalaryMin      float64                 `json:"salary_min"`
	SalaryMax      float64                 `json:"salary_max"`
	SalaryCurrency string                  `json:"salary_currency"`
	OpenPositions  int                     `json:"open_positions"`
	GrowthRate     float64                 `json:"growth_rate"`
	Competition    float64                 `json:"competition_score"`
	LastUpdated    time.Time               `json:"last_updated"`
}

func NewJobPostingResponse(p job.Posting) JobPostingResponse {
	out := JobPostingResponse{
		ID:             p.ID,
		Title:          p.Title,
		Category:       p.Category,
		Description:    p.Description,
		RequiredSkills: make([]RequiredSkillResponse, 0, len(p.RequiredSkills)),
		SalaryMin:      p.Salary.Min,
		SalaryMax:      p.Salary.Max,
		SalaryCurrency: p.Salary.Currency,
		OpenPositions:  p.Metrics.OpenPositions,
		GrowthRate:     p.Metrics.GrowthRate,
		Competition:    p.Metrics.CompetitionScore,
		LastUpdated:    p.Metrics.LastUpdated,
	}
	for _, rs := range p.RequiredSkills {
		out.RequiredSkills = append(out.RequiredSkills, RequiredSkillResponse{
			Name:       rs.Name,
			Importance: string(rs.Importance),
		})
	}
	return out
}

func NewJobPostingListResponse(items []job.Posting) []JobPostingResponse {
	out := make([]JobPostingResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewJobPostingResponse(p))
	}
	return out
}

type SalaryInsightResponse struct {
	Category string  `json:"category"`
	AvgMin   float64 `json:"avg_min"`
	AvgMax   float64 `json:"avg_max"`
	JobCount int     `json:"job_count"`
}

type MarketTrendsResponse struct {
	TrendingJobs   []JobPostingResponse    `json:"trending_jobs"`
	SalaryInsights []SalaryInsightResponse `json:"salary_insights"`
}

func NewMarketTrendsResponse(trending []job.Posting, salaries []repository.SalaryInsight) MarketTrendsResponse {
	out := MarketTrendsResponse{
		TrendingJobs:   NewJobPostingListResponse(trending),
		SalaryInsights: make([]SalaryInsightResponse, 0, len(salaries)),
	}
	for _, s := range salaries {
		out.SalaryInsights = append(out.SalaryInsights, SalaryInsightResponse{
			Category: s.Category,
			AvgMin:   s.AvgMin,
			AvgMax:   s.AvgMax,
			JobCount: s.JobCount,
		})
	}
	return out
}
