package demand

import (
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/job"
)

// scoreDivisor and the [0,10] ceiling are uncalibrated; changing either
// changes every stored score.
const (
	scoreDivisor = 10.0
	scoreCeiling = 10.0
)

type SkillScore struct {
	Name            string
	Count           int
	ImportanceScore float64
	Score           float64
	UpdatedAt       time.Time
}

// Compute groups every required-skill entry across the corpus by exact skill
// name and derives a demand score per skill:
//
//	score = min(10, count * mean(importance weight) / 10)
//
// Postings with no required skills contribute nothing. The result is fully
// determined by the corpus; re-running on an unchanged corpus yields
// identical scores.
func Compute(corpus []job.Posting, now time.Time) map[string]SkillScore {
	type group struct {
		count     int
		weightSum float64
	}
	groups := make(map[string]*group)

	for _, p := range corpus {
		for _, rs := range p.RequiredSkills {
			if rs.Name == "" {
				continue
			}
			g := groups[rs.Name]
			if g == nil {
				g = &group{}
				groups[rs.Name] = g
			}
			g.count++
			g.weightSum += rs.Importance.Weight()
		}
	}

	out := make(map[string]SkillScore, len(groups))
	for name, g := range groups {
		mean := g.weightSum / float64(g.count)
		score := float64(g.count) * mean / scoreDivisor
		if score > scoreCeiling {
			score = scoreCeiling
		}
		if score < 0 {
			score = 0
		}
		out[name] = SkillScore{
			Name:            name,
			Count:           g.count,
			ImportanceScore: mean,
			Score:           score,
			UpdatedAt:       now.UTC(),
		}
	}
	return out
}
