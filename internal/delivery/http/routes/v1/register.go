package v1

import (
	"log"

	"github.com/Harshverma1208/skill-companion-project/internal/config"
	"github.com/Harshverma1208/skill-companion-project/internal/database"
	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/handler"
	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/middleware"
	"github.com/Harshverma1208/skill-companion-project/internal/infrastructure/resume"
	"github.com/Harshverma1208/skill-companion-project/internal/pkg/jwt"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"
	"github.com/Harshverma1208/skill-companion-project/internal/usecase"
	"github.com/Harshverma1208/skill-companion-project/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  usecase.SearchCache
	Hub    *ws.Hub
	Logger *log.Logger
}

// Register wires the full v1 surface. Auth, course search, trends and the
// stateless gap preview are public; everything touching a profile sits
// behind the JWT middleware.
func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	skillRepo := repository.NewPostgresSkillRepository(deps.DB)
	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	courseRepo := repository.NewPostgresCourseRepository(deps.DB)
	profileRepo := repository.NewPostgresProfileRepository(deps.DB)

	extractor := resume.NewHTTPExtractor(deps.Config.Resume.BaseURL, deps.Config.Resume.Timeout, deps.Logger)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	skillUC := usecase.NewSkillUsecase(skillRepo, profileRepo)
	gapUC := usecase.NewGapUsecase(skillRepo, profileRepo, deps.Logger)
	recommendationUC := usecase.NewRecommendationUsecase(courseRepo, jobRepo, profileRepo, deps.Logger)
	demandUC := usecase.NewDemandUsecase(jobRepo, skillRepo, deps.Cache, usecase.DemandParams{
		Workers:       deps.Config.Aggregator.Workers,
		SnapshotLimit: deps.Config.Aggregator.SnapshotLimit,
		LockTTL:       deps.Config.Aggregator.LockTTL,
	}, deps.Logger)
	trendsUC := usecase.NewTrendsUsecase(jobRepo, deps.Cache, deps.Logger)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	resumeUC := usecase.NewResumeUsecase(extractor, profileRepo, deps.Logger)

	authHandler := handler.NewAuthHandler(authUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	gapHandler := handler.NewGapHandler(gapUC)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUC, deps.Config.Aggregator.RecommendLimit)
	demandHandler := handler.NewDemandHandler(demandUC)
	trendsHandler := handler.NewTrendsHandler(trendsUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	resumeHandler := handler.NewResumeHandler(resumeUC)

	authHandler.RegisterRoutes(r.Group("/auth"))

	r.Get("/skills", skillHandler.List)
	r.Get("/skills/:name", skillHandler.Get)
	r.Get("/courses/search", recommendationHandler.SearchCourses)
	trendsHandler.RegisterRoutes(r)
	r.Post("/analysis/skill-gap/preview", gapHandler.Preview)

	if deps.Hub != nil {
		wsHandler := ws.NewHandler(deps.Hub, deps.Logger)
		r.Get("/ws/demand", wsHandler.HandleDemandWS)
	}

	protected := r.Group("", authMw.Middleware())
	protected.Post("/analysis/skill-gap", gapHandler.Analyze)
	resumeHandler.RegisterRoutes(protected)

	recommendations := protected.Group("/recommendations")
	recommendations.Get("/skills", skillHandler.Recommended)
	recommendations.Get("/courses", recommendationHandler.Courses)
	recommendations.Get("/jobs", recommendationHandler.Jobs)

	demandHandler.RegisterRoutes(protected)
	profileHandler.RegisterRoutes(protected)
}
