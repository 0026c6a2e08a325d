package job

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Importance is the urgency tier a posting assigns to a required skill.
// Feeds occasionally ship tiers outside the known set; those fall back to a
// defined middle weight instead of failing the posting.
type Importance string

const (
	ImportanceMustHave   Importance = "must-have"
	ImportancePreferred  Importance = "preferred"
	ImportanceNiceToHave Importance = "nice-to-have"
)

const (
	weightMustHave   = 1.0
	weightPreferred  = 0.6
	weightNiceToHave = 0.3
	weightUnknown    = 0.5
)

func ParseImportance(raw string) (Importance, bool) {
	switch Importance(strings.ToLower(strings.TrimSpace(raw))) {
	case ImportanceMustHave:
		return ImportanceMustHave, true
	case ImportancePreferred:
		return ImportancePreferred, true
	case ImportanceNiceToHave:
		return ImportanceNiceToHave, true
	}
	return "", false
}

// Weight maps the tier to its demand-scoring weight. Unknown tiers weigh 0.5.
func (i Importance) Weight() float64 {
	switch i {
	case ImportanceMustHave:
		return weightMustHave
	case ImportancePreferred:
		return weightPreferred
	case ImportanceNiceToHave:
		return weightNiceToHave
	}
	return weightUnknown
}

type RequiredSkill struct {
	Name       string
	Importance Importance
}

type SalaryRange struct {
	Min      float64
	Max      float64
	Currency string
}

type DemandMetrics struct {
	OpenPositions    int
	GrowthRate       float64
	CompetitionScore float64
	LastUpdated      time.Time
}

// Posting is immutable once ingested except for metric refresh.
type Posting struct {
	ID             uuid.UUID
	Title          string
	Category       string
	Description    string
	RequiredSkills []RequiredSkill
	Salary         SalaryRange
	Metrics        DemandMetrics
}
