package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/database"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrUserNotFound = errors.New("user not found")

// ProfileRepository maintains the per-user snapshot: skills, completed/saved
// course identifiers and the append-only analysis history.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	UpsertSkill(ctx context.Context, userID uuid.UUID, s profile.UserSkill) error
	RemoveSkill(ctx context.Context, userID uuid.UUID, name string) error
	SetTargetRole(ctx context.Context, userID uuid.UUID, role string) error
	MarkCourseCompleted(ctx context.Context, userID uuid.UUID, courseRef string) error
	SaveCourse(ctx context.Context, userID uuid.UUID, courseRef string) error
	UnsaveCourse(ctx context.Context, userID uuid.UUID, courseRef string) error
	AppendAnalysis(ctx context.Context, userID uuid.UUID, typ profile.AnalysisType, result any) error
	ListAnalysis(ctx context.Context, userID uuid.UUID, limit int) ([]profile.AnalysisEntry, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	p := profile.Profile{UserID: userID}

	row := r.db.QueryRow(ctx, `SELECT COALESCE(current_role_name, ''), COALESCE(target_role, '') FROM users WHERE id = $1`, userID)
	if err := row.Scan(&p.CurrentRole, &p.TargetRole); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}
		return profile.Profile{}, fmt.Errorf("get profile %s: %w", userID, err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT skill_name, proficiency
		FROM user_skills
		WHERE user_id = $1
		ORDER BY skill_name ASC`, userID)
	if err != nil {
		return profile.Profile{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var us profile.UserSkill
		var prof string
		if err := rows.Scan(&us.Name, &prof); err != nil {
			return profile.Profile{}, err
		}
		us.Proficiency = profile.Proficiency(prof)
		p.Skills = append(p.Skills, us)
	}
	if err := rows.Err(); err != nil {
		return profile.Profile{}, err
	}

	p.CompletedCourses, err = r.courseRefs(ctx, `SELECT course_ref FROM user_completed_courses WHERE user_id = $1 ORDER BY completed_at ASC`, userID)
	if err != nil {
		return profile.Profile{}, err
	}
	p.SavedCourses, err = r.courseRefs(ctx, `SELECT course_ref FROM user_saved_courses WHERE user_id = $1 ORDER BY saved_at ASC`, userID)
	if err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) courseRefs(ctx context.Context, query string, userID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfileRepository) UpsertSkill(ctx context.Context, userID uuid.UUID, s profile.UserSkill) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_skills (user_id, skill_name, proficiency)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, skill_name) DO UPDATE SET proficiency = EXCLUDED.proficiency`,
		userID, s.Name, string(s.Proficiency))
	return err
}

func (r *PostgresProfileRepository) RemoveSkill(ctx context.Context, userID uuid.UUID, name string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1 AND skill_name = $2`, userID, name)
	return err
}

func (r *PostgresProfileRepository) SetTargetRole(ctx context.Context, userID uuid.UUID, role string) error {
	affected, err := r.db.Exec(ctx, `UPDATE users SET target_role = $2 WHERE id = $1`, userID, role)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return nil
}

func (r *PostgresProfileRepository) MarkCourseCompleted(ctx context.Context, userID uuid.UUID, courseRef string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_completed_courses (user_id, course_ref, completed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, course_ref) DO NOTHING`,
		userID, courseRef, time.Now().UTC())
	return err
}

func (r *PostgresProfileRepository) SaveCourse(ctx context.Context, userID uuid.UUID, courseRef string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_saved_courses (user_id, course_ref, saved_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, course_ref) DO NOTHING`,
		userID, courseRef, time.Now().UTC())
	return err
}

func (r *PostgresProfileRepository) UnsaveCourse(ctx context.Context, userID uuid.UUID, courseRef string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM user_saved_courses WHERE user_id = $1 AND course_ref = $2`, userID, courseRef)
	return err
}

// AppendAnalysis only ever inserts; history entries are never rewritten or
// reordered here. Retention is handled elsewhere.
func (r *PostgresProfileRepository) AppendAnalysis(ctx context.Context, userID uuid.UUID, typ profile.AnalysisType, result any) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO analysis_history (id, user_id, type, result, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), userID, string(typ), payload, time.Now().UTC())
	return err
}

func (r *PostgresProfileRepository) ListAnalysis(ctx context.Context, userID uuid.UUID, limit int) ([]profile.AnalysisEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, type, result, created_at
		FROM analysis_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.AnalysisEntry, 0)
	for rows.Next() {
		var e profile.AnalysisEntry
		var typ string
		var raw []byte
		if err := rows.Scan(&e.ID, &typ, &raw, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Type = profile.AnalysisType(typ)
		e.Result = json.RawMessage(raw)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
