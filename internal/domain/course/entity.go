package course

import "github.com/google/uuid"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type Rating struct {
	Score float64
	Count int
}

type Price struct {
	Amount   float64
	Currency string
}

// Course is a ranking candidate from an external platform. Platform plus
// ExternalID identifies the listing across syncs.
type Course struct {
	ID              uuid.UUID
	Title           string
	Platform        string
	ExternalID      string
	Description     string
	URL             string
	Difficulty      Difficulty
	Rating          Rating
	Price           Price
	Skills          []string
	EnrollmentCount int
}
