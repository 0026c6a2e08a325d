package ranking

import (
	"sort"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/profile"
)

const (
	DefaultLimit = 10
	MaxLimit     = 20
)

// Candidate is a course or job listing eligible for ranking. Quality is the
// primary sort signal (course rating, job demand growth rate); Popularity is
// the secondary one (enrollment count, open positions).
type Candidate struct {
	ID         string
	Skills     []string
	Quality    float64
	Popularity int
}

type UserView struct {
	Skills    map[string]profile.Proficiency
	Completed map[string]struct{}
}

// Rank filters and orders the candidate pool:
//
//   - candidates in the completed set are dropped;
//   - a candidate qualifies only if it teaches a skill the user lacks, or a
//     skill held at beginner proficiency;
//   - ordering is Quality desc, then Popularity desc, remaining ties kept in
//     input order. The stable sort is what makes repeated runs on identical
//     input byte-identical.
//
// An empty pool yields an empty slice.
func Rank(user UserView, pool []Candidate, limit int) []Candidate {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	eligible := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if c.ID == "" {
			continue
		}
		if _, done := user.Completed[c.ID]; done {
			continue
		}
		if teachesRelevantSkill(user.Skills, c.Skills) {
			eligible = append(eligible, c)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].Quality != eligible[j].Quality {
			return eligible[i].Quality > eligible[j].Quality
		}
		return eligible[i].Popularity > eligible[j].Popularity
	})

	if len(eligible) > limit {
		eligible = eligible[:limit]
	}
	return eligible
}

// RankIDs is Rank reduced to candidate identifiers.
func RankIDs(user UserView, pool []Candidate, limit int) []string {
	ranked := Rank(user, pool, limit)
	out := make([]string, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, c.ID)
	}
	return out
}

func teachesRelevantSkill(skills map[string]profile.Proficiency, taught []string) bool {
	for _, name := range taught {
		if name == "" {
			continue
		}
		prof, held := skills[name]
		if !held {
			return true
		}
		if prof == profile.ProficiencyBeginner {
			return true
		}
	}
	return false
}
