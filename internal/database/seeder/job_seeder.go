package seeder

import (
	"context"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/database"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/job"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"
)

// JobSeeder loads a small posting corpus so the demand aggregator and the
// trend queries have data before the first feed sync.
type JobSeeder struct{}

func (JobSeeder) Name() string { return "jobs" }

func (JobSeeder) Run(ctx context.Context, db database.DB) error {
	now := time.Now().UTC()
	repo := repository.NewPostgresJobRepository(db)

	postings := []job.Posting{
		{
			Title:       "Backend Engineer (Go)",
			Category:    "engineering",
			Description: "Build Go services backed by PostgreSQL and Redis.",
			RequiredSkills: []job.RequiredSkill{
				{Name: "Go", Importance: job.ImportanceMustHave},
				{Name: "SQL", Importance: job.ImportanceMustHave},
				{Name: "PostgreSQL", Importance: job.ImportancePreferred},
				{Name: "Docker", Importance: job.ImportanceNiceToHave},
			},
			Salary:  job.SalaryRange{Min: 95000, Max: 140000, Currency: "USD"},
			Metrics: job.DemandMetrics{OpenPositions: 42, GrowthRate: 12.5, CompetitionScore: 6.1, LastUpdated: now},
		},
		{
			Title:       "Frontend Engineer",
			Category:    "engineering",
			Description: "Ship React features with TypeScript.",
			RequiredSkills: []job.RequiredSkill{
				{Name: "JavaScript", Importance: job.ImportanceMustHave},
				{Name: "React", Importance: job.ImportanceMustHave},
				{Name: "TypeScript", Importance: job.ImportancePreferred},
			},
			Salary:  job.SalaryRange{Min: 85000, Max: 125000, Currency: "USD"},
			Metrics: job.DemandMetrics{OpenPositions: 58, GrowthRate: 9.3, CompetitionScore: 7.4, LastUpdated: now},
		},
		{
			Title:       "Data Scientist",
			Category:    "data",
			Description: "Model customer behaviour with Python and SQL.",
			RequiredSkills: []job.RequiredSkill{
				{Name: "Python", Importance: job.ImportanceMustHave},
				{Name: "Machine Learning", Importance: job.ImportanceMustHave},
				{Name: "SQL", Importance: job.ImportancePreferred},
				{Name: "Data Analysis", Importance: job.ImportancePreferred},
			},
			Salary:  job.SalaryRange{Min: 110000, Max: 160000, Currency: "USD"},
			Metrics: job.DemandMetrics{OpenPositions: 31, GrowthRate: 15.8, CompetitionScore: 8.2, LastUpdated: now},
		},
		{
			Title:       "DevOps Engineer",
			Category:    "infrastructure",
			Description: "Run AWS workloads on Kubernetes with Terraform.",
			RequiredSkills: []job.RequiredSkill{
				{Name: "AWS", Importance: job.ImportanceMustHave},
				{Name: "Kubernetes", Importance: job.ImportanceMustHave},
				{Name: "Docker", Importance: job.ImportanceMustHave},
				{Name: "Terraform", Importance: job.ImportancePreferred},
				{Name: "Go", Importance: job.ImportanceNiceToHave},
			},
			Salary:  job.SalaryRange{Min: 105000, Max: 155000, Currency: "USD"},
			Metrics: job.DemandMetrics{OpenPositions: 27, GrowthRate: 11.1, CompetitionScore: 5.9, LastUpdated: now},
		},
		{
			Title:       "Fullstack Developer",
			Category:    "engineering",
			Description: "Own features end to end across React and Node.js.",
			RequiredSkills: []job.RequiredSkill{
				{Name: "JavaScript", Importance: job.ImportanceMustHave},
				{Name: "React", Importance: job.ImportanceMustHave},
				{Name: "Node.js", Importance: job.ImportanceMustHave},
				{Name: "SQL", Importance: job.ImportanceNiceToHave},
			},
			Salary:  job.SalaryRange{Min: 90000, Max: 135000, Currency: "USD"},
			Metrics: job.DemandMetrics{OpenPositions: 49, GrowthRate: 8.7, CompetitionScore: 7.9, LastUpdated: now},
		},
	}

	for _, p := range postings {
		if err := repo.UpsertPosting(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
