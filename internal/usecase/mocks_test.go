package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/course"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/job"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/profile"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/skill"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"

	"github.com/google/uuid"
)

type mockSkillRepo struct {
	mu          sync.Mutex
	skills      map[string]skill.Skill
	listItems   []skill.Skill
	listErr     error
	lastFilter  repository.SkillFilter
	applied     []repository.DemandUpdate
	applyErrFor map[string]error
	required    map[string][]string
	recommended map[string][]string
	roleErr     error
}

func (m *mockSkillRepo) GetByName(_ context.Context, name string) (skill.Skill, error) {
	s, ok := m.skills[name]
	if !ok {
		return skill.Skill{}, repository.ErrSkillNotFound
	}
	return s, nil
}

func (m *mockSkillRepo) List(_ context.Context, filter repository.SkillFilter) ([]skill.Skill, error) {
	m.mu.Lock()
	m.lastFilter = filter
	m.mu.Unlock()
	return m.listItems, m.listErr
}

func (m *mockSkillRepo) EnsureSkill(context.Context, string, skill.Category) error { return nil }

func (m *mockSkillRepo) ApplyDemandUpdate(_ context.Context, upd repository.DemandUpdate) error {
	if err, ok := m.applyErrFor[upd.Name]; ok {
		return err
	}
	m.mu.Lock()
	m.applied = append(m.applied, upd)
	m.mu.Unlock()
	return nil
}

func (m *mockSkillRepo) RoleRequirements(_ context.Context, role string) ([]string, []string, error) {
	if m.roleErr != nil {
		return nil, nil, m.roleErr
	}
	return m.required[role], m.recommended[role], nil
}

func (m *mockSkillRepo) appliedUpdates() []repository.DemandUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repository.DemandUpdate, len(m.applied))
	copy(out, m.applied)
	return out
}

type mockJobRepo struct {
	snapshot    []job.Posting
	snapshotErr error
	trending    []job.Posting
	salaries    []repository.SalaryInsight
}

func (m *mockJobRepo) Snapshot(context.Context, int) ([]job.Posting, error) {
	return m.snapshot, m.snapshotErr
}

func (m *mockJobRepo) ListTrending(context.Context, string, int) ([]job.Posting, error) {
	return m.trending, nil
}

func (m *mockJobRepo) SalaryInsights(context.Context) ([]repository.SalaryInsight, error) {
	return m.salaries, nil
}

func (m *mockJobRepo) UpsertPosting(context.Context, job.Posting) error { return nil }

type mockCourseRepo struct {
	pool      []course.Course
	searchHit []course.Course
}

func (m *mockCourseRepo) ListCandidates(context.Context, int) ([]course.Course, error) {
	return m.pool, nil
}

func (m *mockCourseRepo) Search(context.Context, repository.CourseFilter) ([]course.Course, error) {
	return m.searchHit, nil
}

func (m *mockCourseRepo) UpsertCourse(context.Context, course.Course) error { return nil }

type appendedAnalysis struct {
	UserID uuid.UUID
	Type   profile.AnalysisType
	Result any
}

type mockProfileRepo struct {
	profiles  map[uuid.UUID]profile.Profile
	appended  []appendedAnalysis
	appendErr error
	upserted  []profile.UserSkill
	entries   []profile.AnalysisEntry
}

func (m *mockProfileRepo) GetProfile(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return profile.Profile{}, repository.ErrUserNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) UpsertSkill(_ context.Context, _ uuid.UUID, s profile.UserSkill) error {
	m.upserted = append(m.upserted, s)
	return nil
}

func (m *mockProfileRepo) RemoveSkill(context.Context, uuid.UUID, string) error { return nil }

func (m *mockProfileRepo) SetTargetRole(_ context.Context, userID uuid.UUID, _ string) error {
	if _, ok := m.profiles[userID]; !ok {
		return repository.ErrUserNotFound
	}
	return nil
}

func (m *mockProfileRepo) MarkCourseCompleted(context.Context, uuid.UUID, string) error { return nil }
func (m *mockProfileRepo) SaveCourse(context.Context, uuid.UUID, string) error          { return nil }
func (m *mockProfileRepo) UnsaveCourse(context.Context, uuid.UUID, string) error        { return nil }

func (m *mockProfileRepo) AppendAnalysis(_ context.Context, userID uuid.UUID, typ profile.AnalysisType, result any) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, appendedAnalysis{UserID: userID, Type: typ, Result: result})
	return nil
}

func (m *mockProfileRepo) ListAnalysis(context.Context, uuid.UUID, int) ([]profile.AnalysisEntry, error) {
	return m.entries, nil
}

type mockCache struct {
	mu     sync.Mutex
	store  map[string]any
	locked bool
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string]any)}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.store[key]
	return ok, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[key] = value
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, key)
	m.locked = false
	return nil
}

func (m *mockCache) SetIfNotExists(_ context.Context, _ string, _ string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locked {
		return false, nil
	}
	m.locked = true
	return true, nil
}
