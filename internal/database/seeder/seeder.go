package seeder

import (
	"context"
	"fmt"
	"log"

	"github.com/Harshverma1208/skill-companion-project/internal/database"
)

// Seeder is one idempotent setup step. Steps run in order and may rely on
// earlier ones having finished.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

func Run(ctx context.Context, db database.DB, logger *log.Logger) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if logger == nil {
		logger = log.Default()
	}

	steps := []Seeder{
		SchemaSeeder{},
		SkillSeeder{},
		JobSeeder{},
		CourseSeeder{},
	}
	for _, s := range steps {
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name(), err)
		}
		logger.Printf("seeder=%s status=done", s.Name())
	}
	return nil
}

// SchemaSeeder creates every table the service reads or writes. Statements
// are IF NOT EXISTS so repeated runs are safe.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			current_role_name TEXT,
			target_role TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS skills (
			name TEXT PRIMARY KEY,
			category TEXT NOT NULL DEFAULT 'technical',
			related_skills TEXT[] NOT NULL DEFAULT '{}',
			demand_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			demand_last_updated TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS skill_roles (
			skill_name TEXT NOT NULL REFERENCES skills(name) ON DELETE CASCADE,
			role TEXT NOT NULL,
			importance TEXT NOT NULL DEFAULT 'required',
			PRIMARY KEY (skill_name, role)
		)`,
		`CREATE TABLE IF NOT EXISTS job_postings (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			salary_min DOUBLE PRECISION NOT NULL DEFAULT 0,
			salary_max DOUBLE PRECISION NOT NULL DEFAULT 0,
			salary_currency TEXT NOT NULL DEFAULT 'USD',
			open_positions INTEGER NOT NULL DEFAULT 0,
			growth_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
			competition_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			metrics_updated_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (title, category)
		)`,
		`CREATE TABLE IF NOT EXISTS job_required_skills (
			job_id UUID NOT NULL REFERENCES job_postings(id) ON DELETE CASCADE,
			skill_name TEXT NOT NULL,
			importance TEXT NOT NULL DEFAULT 'must-have',
			PRIMARY KEY (job_id, skill_name)
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			platform TEXT NOT NULL,
			external_id TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL DEFAULT '',
			difficulty TEXT NOT NULL DEFAULT 'beginner',
			rating_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			rating_count INTEGER NOT NULL DEFAULT 0,
			price_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			price_currency TEXT NOT NULL DEFAULT 'USD',
			skills TEXT[] NOT NULL DEFAULT '{}',
			enrollment_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (platform, external_id)
		)`,
		`CREATE TABLE IF NOT EXISTS user_skills (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			skill_name TEXT NOT NULL,
			proficiency TEXT NOT NULL DEFAULT 'beginner',
			PRIMARY KEY (user_id, skill_name)
		)`,
		`CREATE TABLE IF NOT EXISTS user_completed_courses (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			course_ref TEXT NOT NULL,
			completed_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (user_id, course_ref)
		)`,
		`CREATE TABLE IF NOT EXISTS user_saved_courses (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			course_ref TEXT NOT NULL,
			saved_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (user_id, course_ref)
		)`,
		`CREATE TABLE IF NOT EXISTS analysis_history (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			type TEXT NOT NULL,
			result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_history_user ON analysis_history (user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_job_postings_category ON job_postings (category)`,
		`CREATE INDEX IF NOT EXISTS idx_skills_demand ON skills (demand_score DESC)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
