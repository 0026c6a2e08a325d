package seeder

import (
	"context"

	"github.com/Harshverma1208/skill-companion-project/internal/database"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/course"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"
)

// CourseSeeder loads a starter candidate pool for the recommendation ranker.
type CourseSeeder struct{}

func (CourseSeeder) Name() string { return "courses" }

func (CourseSeeder) Run(ctx context.Context, db database.DB) error {
	repo := repository.NewPostgresCourseRepository(db)

	items := []course.Course{
		{
			Title:           "Go: The Complete Developer's Guide",
			Platform:        "learnhub",
			ExternalID:      "go-complete-guide",
			URL:             "https://learnhub.example.com/courses/go-complete-guide",
			Difficulty:      course.DifficultyIntermediate,
			Rating:          course.Rating{Score: 4.7, Count: 18234},
			Price:           course.Price{Amount: 49.99, Currency: "USD"},
			Skills:          []string{"Go", "PostgreSQL", "Docker"},
			EnrollmentCount: 124531,
		},
		{
			Title:           "Modern React with Redux",
			Platform:        "learnhub",
			ExternalID:      "modern-react-redux",
			URL:             "https://learnhub.example.com/courses/modern-react-redux",
			Difficulty:      course.DifficultyBeginner,
			Rating:          course.Rating{Score: 4.6, Count: 84211},
			Price:           course.Price{Amount: 59.99, Currency: "USD"},
			Skills:          []string{"React", "JavaScript", "Redux"},
			EnrollmentCount: 412876,
		},
		{
			Title:           "Node.js API Masterclass",
			Platform:        "learnhub",
			ExternalID:      "nodejs-api-masterclass",
			URL:             "https://learnhub.example.com/courses/nodejs-api-masterclass",
			Difficulty:      course.DifficultyIntermediate,
			Rating:          course.Rating{Score: 4.5, Count: 12044},
			Price:           course.Price{Amount: 39.99, Currency: "USD"},
			Skills:          []string{"Node.js", "Express", "MongoDB"},
			EnrollmentCount: 87654,
		},
		{
			Title:           "Machine Learning A-Z",
			Platform:        "learnhub",
			ExternalID:      "machine-learning-az",
			URL:             "https://learnhub.example.com/courses/machine-learning-az",
			Difficulty:      course.DifficultyBeginner,
			Rating:          course.Rating{Score: 4.8, Count: 156732},
			Price:           course.Price{Amount: 79.99, Currency: "USD"},
			Skills:          []string{"Python", "Machine Learning", "Data Analysis"},
			EnrollmentCount: 823411,
		},
		{
			Title:           "AWS Certified Solutions Architect",
			Platform:        "cloudacademy",
			ExternalID:      "aws-solutions-architect",
			URL:             "https://cloudacademy.example.com/courses/aws-solutions-architect",
			Difficulty:      course.DifficultyAdvanced,
			Rating:          course.Rating{Score: 4.7, Count: 67421},
			Price:           course.Price{Amount: 89.99, Currency: "USD"},
			Skills:          []string{"AWS", "Terraform", "System Design"},
			EnrollmentCount: 534211,
		},
		{
			Title:           "Kubernetes for Developers",
			Platform:        "cloudacademy",
			ExternalID:      "kubernetes-for-developers",
			URL:             "https://cloudacademy.example.com/courses/kubernetes-for-developers",
			Difficulty:      course.DifficultyIntermediate,
			Rating:          course.Rating{Score: 4.4, Count: 9876},
			Price:           course.Price{Amount: 54.99, Currency: "USD"},
			Skills:          []string{"Kubernetes", "Docker"},
			EnrollmentCount: 65432,
		},
	}

	for _, c := range items {
		if err := repo.UpsertCourse(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
