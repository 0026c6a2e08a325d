package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/database"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/skill"

	"github.com/jackc/pgx/v5"
)

var ErrSkillNotFound = errors.New("skill not found")

type DemandUpdate struct {
	Name      string
	Score     float64
	UpdatedAt time.Time
}

type SkillFilter struct {
	Category       skill.Category
	MinDemandScore float64
	ExcludeNames   []string
}

// SkillRepository is the catalog: registry of skills keyed by exact,
// case-sensitive name.
type SkillRepository interface {
	GetByName(ctx context.Context, name string) (skill.Skill, error)
	List(ctx context.Context, filter SkillFilter) ([]skill.Skill, error)
	EnsureSkill(ctx context.Context, name string, category skill.Category) error
	ApplyDemandUpdate(ctx context.Context, upd DemandUpdate) error
	RoleRequirements(ctx context.Context, role string) (required []string, recommended []string, err error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetByName(ctx context.Context, name string) (skill.Skill, error) {
	row := r.db.QueryRow(ctx, `
		SELECT name, category, related_skills, demand_score, demand_last_updated
		FROM skills
		WHERE name = $1`, name)

	var s skill.Skill
	var related []string
	var updated *time.Time
	if err := row.Scan(&s.Name, &s.Category, &related, &s.DemandScore, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return skill.Skill{}, fmt.Errorf("%w: %q", ErrSkillNotFound, name)
		}
		return skill.Skill{}, fmt.Errorf("get skill %q: %w", name, err)
	}
	s.RelatedSkills = related
	if updated != nil {
		s.DemandLastUpdated = *updated
	}
	return s, nil
}

func (r *PostgresSkillRepository) List(ctx context.Context, filter SkillFilter) ([]skill.Skill, error) {
	query := `
		SELECT name, category, related_skills, demand_score, demand_last_updated
		FROM skills
		WHERE demand_score >= $1`
	args := []any{filter.MinDemandScore}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if len(filter.ExcludeNames) > 0 {
		args = append(args, filter.ExcludeNames)
		query += fmt.Sprintf(" AND NOT (name = ANY($%d))", len(args))
	}
	query += " ORDER BY demand_score DESC, name ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		var related []string
		var updated *time.Time
		if err := rows.Scan(&s.Name, &s.Category, &related, &s.DemandScore, &updated); err != nil {
			return nil, err
		}
		s.RelatedSkills = related
		if updated != nil {
			s.DemandLastUpdated = *updated
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureSkill creates the record on first reference; an existing name is
// left untouched. Skills are never deleted, even at zero demand.
func (r *PostgresSkillRepository) EnsureSkill(ctx context.Context, name string, category skill.Category) error {
	if name == "" {
		return fmt.Errorf("empty skill name")
	}
	if category == "" {
		category = skill.CategoryTechnical
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO skills (name, category, related_skills, demand_score)
		VALUES ($1, $2, '{}', 0)
		ON CONFLICT (name) DO NOTHING`, name, category)
	return err
}

// ApplyDemandUpdate writes score and refresh timestamp in one statement so
// the pair is atomic. GREATEST keeps the timestamp from moving backward if
// an older pass commits late.
func (r *PostgresSkillRepository) ApplyDemandUpdate(ctx context.Context, upd DemandUpdate) error {
	if upd.Name == "" {
		return fmt.Errorf("empty skill name")
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO skills (name, category, related_skills, demand_score, demand_last_updated)
		VALUES ($1, 'technical', '{}', $2, $3)
		ON CONFLICT (name) DO UPDATE SET
			demand_score = EXCLUDED.demand_score,
			demand_last_updated = GREATEST(skills.demand_last_updated, EXCLUDED.demand_last_updated)`,
		upd.Name, upd.Score, upd.UpdatedAt.UTC())
	return err
}

func (r *PostgresSkillRepository) RoleRequirements(ctx context.Context, role string) ([]string, []string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT skill_name, importance
		FROM skill_roles
		WHERE role = $1
		ORDER BY skill_name ASC`, role)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var required, recommended []string
	for rows.Next() {
		var name, importance string
		if err := rows.Scan(&name, &importance); err != nil {
			return nil, nil, err
		}
		if skill.RoleImportance(importance) == skill.RoleRequired {
			required = append(required, name)
		} else {
			recommended = append(recommended, name)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return required, recommended, nil
}
