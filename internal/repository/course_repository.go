package repository

import (
	"context"
	"fmt"

	"github.com/Harshverma1208/skill-companion-project/internal/database"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/course"

	"github.com/google/uuid"
)

type CourseFilter struct {
	Skill      string
	Platform   string
	Difficulty course.Difficulty
	Query      string
	Limit      int
}

// CourseRepository serves the ranking candidate pool and the course search.
type CourseRepository interface {
	ListCandidates(ctx context.Context, limit int) ([]course.Course, error)
	Search(ctx context.Context, filter CourseFilter) ([]course.Course, error)
	UpsertCourse(ctx context.Context, c course.Course) error
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

const courseColumns = `
	id, title, platform, external_id, description, url, difficulty,
	rating_score, rating_count, price_amount, price_currency, skills, enrollment_count`

// ListCandidates returns the pool in stable catalog order (insertion order)
// so that the ranker's tie-break is reproducible across calls.
func (r *PostgresCourseRepository) ListCandidates(ctx context.Context, limit int) ([]course.Course, error) {
	if limit <= 0 {
		limit = 1000
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		ORDER BY created_at ASC, id ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return scanCourses(rows)
}

func (r *PostgresCourseRepository) Search(ctx context.Context, filter CourseFilter) ([]course.Course, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 20 {
		limit = 20
	}

	query := `SELECT ` + courseColumns + ` FROM courses WHERE 1=1`
	args := []any{}
	if filter.Skill != "" {
		args = append(args, filter.Skill)
		query += fmt.Sprintf(" AND $%d = ANY(skills)", len(args))
	}
	if filter.Platform != "" {
		args = append(args, filter.Platform)
		query += fmt.Sprintf(" AND platform = $%d", len(args))
	}
	if filter.Difficulty != "" {
		args = append(args, string(filter.Difficulty))
		query += fmt.Sprintf(" AND difficulty = $%d", len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY rating_score DESC, enrollment_count DESC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanCourses(rows)
}

func (r *PostgresCourseRepository) UpsertCourse(ctx context.Context, c course.Course) error {
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO courses (
			id, title, platform, external_id, description, url, difficulty,
			rating_score, rating_count, price_amount, price_currency, skills, enrollment_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (platform, external_id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			url = EXCLUDED.url,
			difficulty = EXCLUDED.difficulty,
			rating_score = EXCLUDED.rating_score,
			rating_count = EXCLUDED.rating_count,
			price_amount = EXCLUDED.price_amount,
			price_currency = EXCLUDED.price_currency,
			skills = EXCLUDED.skills,
			enrollment_count = EXCLUDED.enrollment_count`,
		id, c.Title, c.Platform, c.ExternalID, c.Description, c.URL, string(c.Difficulty),
		c.Rating.Score, c.Rating.Count, c.Price.Amount, c.Price.Currency, c.Skills, c.EnrollmentCount)
	return err
}

func scanCourses(rows database.Rows) ([]course.Course, error) {
	defer rows.Close()

	out := make([]course.Course, 0)
	for rows.Next() {
		var c course.Course
		var difficulty string
		var skills []string
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Platform, &c.ExternalID, &c.Description, &c.URL, &difficulty,
			&c.Rating.Score, &c.Rating.Count, &c.Price.Amount, &c.Price.Currency, &skills, &c.EnrollmentCount,
		); err != nil {
			return nil, err
		}
		c.Difficulty = course.Difficulty(difficulty)
		c.Skills = skills
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
