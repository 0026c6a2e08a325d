package seeder

import (
	"context"

	"github.com/Harshverma1208/skill-companion-project/internal/database"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/skill"
)

// SkillSeeder loads the baseline catalog plus the role requirement profiles
// the gap analyzer resolves against.
type SkillSeeder struct{}

func (SkillSeeder) Name() string { return "skills" }

func (SkillSeeder) Run(ctx context.Context, db database.DB) error {
	items := []struct {
		Name     string
		Category skill.Category
		Related  []string
	}{
		{"JavaScript", skill.CategoryTechnical, []string{"TypeScript", "React", "Node.js"}},
		{"TypeScript", skill.CategoryTechnical, []string{"JavaScript", "React"}},
		{"React", skill.CategoryTechnical, []string{"JavaScript", "Redux", "Next.js"}},
		{"Node.js", skill.CategoryTechnical, []string{"JavaScript", "Express"}},
		{"Express", skill.CategoryTechnical, []string{"Node.js"}},
		{"Python", skill.CategoryTechnical, []string{"Django", "Pandas"}},
		{"Go", skill.CategoryTechnical, []string{"PostgreSQL", "Docker"}},
		{"SQL", skill.CategoryTechnical, []string{"PostgreSQL", "MongoDB"}},
		{"PostgreSQL", skill.CategoryTechnical, []string{"SQL"}},
		{"MongoDB", skill.CategoryTechnical, []string{"SQL"}},
		{"AWS", skill.CategoryTool, []string{"Docker", "Kubernetes", "Terraform"}},
		{"Docker", skill.CategoryTool, []string{"Kubernetes", "AWS"}},
		{"Kubernetes", skill.CategoryTool, []string{"Docker", "AWS"}},
		{"Terraform", skill.CategoryTool, []string{"AWS"}},
		{"Git", skill.CategoryTool, nil},
		{"Machine Learning", skill.CategoryDomain, []string{"Python", "Deep Learning"}},
		{"Deep Learning", skill.CategoryDomain, []string{"Machine Learning"}},
		{"Data Analysis", skill.CategoryDomain, []string{"SQL", "Python"}},
		{"System Design", skill.CategoryDomain, nil},
		{"Communication", skill.CategorySoft, nil},
		{"Leadership", skill.CategorySoft, []string{"Communication"}},
		{"Problem Solving", skill.CategorySoft, nil},
	}

	for _, it := range items {
		related := it.Related
		if related == nil {
			related = []string{}
		}
		_, err := db.Exec(ctx, `
			INSERT INTO skills (name, category, related_skills, demand_score)
			VALUES ($1, $2, $3, 0)
			ON CONFLICT (name) DO NOTHING`,
			it.Name, it.Category, related)
		if err != nil {
			return err
		}
	}

	roles := []struct {
		Skill      string
		Role       string
		Importance skill.RoleImportance
	}{
		{"JavaScript", "frontend-developer", skill.RoleRequired},
		{"React", "frontend-developer", skill.RoleRequired},
		{"TypeScript", "frontend-developer", skill.RolePreferred},
		{"Git", "frontend-developer", skill.RolePreferred},
		{"Communication", "frontend-developer", skill.RoleOptional},

		{"JavaScript", "fullstack-developer", skill.RoleRequired},
		{"React", "fullstack-developer", skill.RoleRequired},
		{"Node.js", "fullstack-developer", skill.RoleRequired},
		{"SQL", "fullstack-developer", skill.RolePreferred},
		{"Docker", "fullstack-developer", skill.RoleOptional},

		{"Go", "backend-developer", skill.RoleRequired},
		{"SQL", "backend-developer", skill.RoleRequired},
		{"PostgreSQL", "backend-developer", skill.RolePreferred},
		{"Docker", "backend-developer", skill.RolePreferred},
		{"System Design", "backend-developer", skill.RoleOptional},

		{"Python", "data-scientist", skill.RoleRequired},
		{"Machine Learning", "data-scientist", skill.RoleRequired},
		{"SQL", "data-scientist", skill.RoleRequired},
		{"Data Analysis", "data-scientist", skill.RolePreferred},
		{"Deep Learning", "data-scientist", skill.RoleOptional},

		{"AWS", "devops-engineer", skill.RoleRequired},
		{"Docker", "devops-engineer", skill.RoleRequired},
		{"Kubernetes", "devops-engineer", skill.RoleRequired},
		{"Terraform", "devops-engineer", skill.RolePreferred},
		{"Go", "devops-engineer", skill.RoleOptional},
	}

	for _, rt := range roles {
		_, err := db.Exec(ctx, `
			INSERT INTO skill_roles (skill_name, role, importance)
			VALUES ($1, $2, $3)
			ON CONFLICT (skill_name, role) DO UPDATE SET importance = EXCLUDED.importance`,
			rt.Skill, rt.Role, rt.Importance)
		if err != nil {
			return err
		}
	}
	return nil
}
