package repository

import (
	"context"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/database"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/job"

	"github.com/google/uuid"
)

type SalaryInsight struct {
	Category string
	AvgMin   float64
	AvgMax   float64
	JobCount int
}

// JobRepository exposes the read-only corpus snapshot the aggregator and the
// trend queries run over, plus the upsert path used by the feed adapters.
type JobRepository interface {
	Snapshot(ctx context.Context, limit int) ([]job.Posting, error)
	ListTrending(ctx context.Context, category string, limit int) ([]job.Posting, error)
	SalaryInsights(ctx context.Context) ([]SalaryInsight, error)
	UpsertPosting(ctx context.Context, p job.Posting) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Snapshot(ctx context.Context, limit int) ([]job.Posting, error) {
	if limit <= 0 {
		limit = 5000
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, title, category, description,
		       salary_min, salary_max, salary_currency,
		       open_positions, growth_rate, competition_score, metrics_updated_at
		FROM job_postings
		ORDER BY created_at ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	postings, err := scanPostings(rows)
	if err != nil {
		return nil, err
	}
	return r.attachRequiredSkills(ctx, postings)
}

func (r *PostgresJobRepository) ListTrending(ctx context.Context, category string, limit int) ([]job.Posting, error) {
	if limit <= 0 || limit > 10 {
		limit = 10
	}
	query := `
		SELECT id, title, category, description,
		       salary_min, salary_max, salary_currency,
		       open_positions, growth_rate, competition_score, metrics_updated_at
		FROM job_postings
		WHERE growth_rate > 0`
	args := []any{}
	if category != "" {
		args = append(args, category)
		query += " AND category = $1"
	}
	args = append(args, limit)
	if len(args) == 2 {
		query += " ORDER BY growth_rate DESC LIMIT $2"
	} else {
		query += " ORDER BY growth_rate DESC LIMIT $1"
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	postings, err := scanPostings(rows)
	if err != nil {
		return nil, err
	}
	return r.attachRequiredSkills(ctx, postings)
}

func (r *PostgresJobRepository) SalaryInsights(ctx context.Context) ([]SalaryInsight, error) {
	rows, err := r.db.Query(ctx, `
		SELECT category, AVG(salary_min), AVG(salary_max), COUNT(*)
		FROM job_postings
		GROUP BY category
		ORDER BY category ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SalaryInsight, 0)
	for rows.Next() {
		var it SalaryInsight
		if err := rows.Scan(&it.Category, &it.AvgMin, &it.AvgMax, &it.JobCount); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertPosting keys on (title, category) like the upstream feed does; a
// re-sync refreshes metrics without duplicating the posting.
func (r *PostgresJobRepository) UpsertPosting(ctx context.Context, p job.Posting) error {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO job_postings (
			id, title, category, description,
			salary_min, salary_max, salary_currency,
			open_positions, growth_rate, competition_score, metrics_updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (title, category) DO UPDATE SET
			description = EXCLUDED.description,
			salary_min = EXCLUDED.salary_min,
			salary_max = EXCLUDED.salary_max,
			salary_currency = EXCLUDED.salary_currency,
			open_positions = EXCLUDED.open_positions,
			growth_rate = EXCLUDED.growth_rate,
			competition_score = EXCLUDED.competition_score,
			metrics_updated_at = EXCLUDED.metrics_updated_at
		RETURNING id`,
		id, p.Title, p.Category, p.Description,
		p.Salary.Min, p.Salary.Max, p.Salary.Currency,
		p.Metrics.OpenPositions, p.Metrics.GrowthRate, p.Metrics.CompetitionScore, p.Metrics.LastUpdated.UTC())

	if err := row.Scan(&id); err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM job_required_skills WHERE job_id = $1`, id); err != nil {
		return err
	}
	for _, rs := range p.RequiredSkills {
		if rs.Name == "" {
			continue
		}
		_, err := r.db.Exec(ctx, `
			INSERT INTO job_required_skills (job_id, skill_name, importance)
			VALUES ($1, $2, $3)
			ON CONFLICT (job_id, skill_name) DO UPDATE SET importance = EXCLUDED.importance`,
			id, rs.Name, string(rs.Importance))
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresJobRepository) attachRequiredSkills(ctx context.Context, postings []job.Posting) ([]job.Posting, error) {
	if len(postings) == 0 {
		return postings, nil
	}
	ids := make([]uuid.UUID, 0, len(postings))
	idx := make(map[uuid.UUID]int, len(postings))
	for i, p := range postings {
		ids = append(ids, p.ID)
		idx[p.ID] = i
	}

	rows, err := r.db.Query(ctx, `
		SELECT job_id, skill_name, importance
		FROM job_required_skills
		WHERE job_id = ANY($1)
		ORDER BY skill_name ASC`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var jobID uuid.UUID
		var name, importance string
		if err := rows.Scan(&jobID, &name, &importance); err != nil {
			return nil, err
		}
		i, ok := idx[jobID]
		if !ok {
			continue
		}
		postings[i].RequiredSkills = append(postings[i].RequiredSkills, job.RequiredSkill{
			Name:       name,
			Importance: job.Importance(importance),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return postings, nil
}

func scanPostings(rows database.Rows) ([]job.Posting, error) {
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		var p job.Posting
		var metricsUpdated *time.Time
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Category, &p.Description,
			&p.Salary.Min, &p.Salary.Max, &p.Salary.Currency,
			&p.Metrics.OpenPositions, &p.Metrics.GrowthRate, &p.Metrics.CompetitionScore, &metricsUpdated,
		); err != nil {
			return nil, err
		}
		if metricsUpdated != nil {
			p.Metrics.LastUpdated = *metricsUpdated
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
