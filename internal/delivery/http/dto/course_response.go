package dto

import (
	"github.com/google/uuid"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/course"
)

type CourseResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Platform        string    `json:"platform"`
	ExternalID      string    `json:"external_id"`
	Description     string    `json:"description,omitempty"`
	URL             string    `json:"url"`
	Difficulty      string    `json:"difficulty"`
	RatingScore     float64   `json:"rating_score"`
	RatingCount     int       `json:"rating_count"`
	PriceAmount     float64   `json:"price_amount"`
	PriceCurrency   string    `json:"price_currency"`
	Skills          []string  `json:"skills"`
	EnrollmentCount int       `json:"enrollment_count"`
}

func NewCourseResponse(c course.Course) CourseResponse {
	out := CourseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Platform:        c.Platform,
		ExternalID:      c.ExternalID,
		Description:     c.Description,
		URL:             c.URL,
		Difficulty:      string(c.Difficulty),
		RatingScore:     c.Rating.Score,
		RatingCount:     c.Rating.Count,
		PriceAmount:     c.Price.Amount,
		PriceCurrency:   c.Price.Currency,
		Skills:          c.Skills,
		EnrollmentCount: c.EnrollmentCount,
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	return out
}

func NewCourseListResponse(items []course.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewCourseResponse(c))
	}
	return out
}
