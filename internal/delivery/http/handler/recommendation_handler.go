package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/dto"
	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/middleware"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/course"
	"github.com/Harshverma1208/skill-companion-project/internal/pkg/response"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"
	"github.com/Harshverma1208/skill-companion-project/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc           usecase.RecommendationUsecase
	defaultLimit int
}

// NewRecommendationHandler builds the handler. defaultLimit applies when the
// limit query parameter is absent; zero defers to the ranker's default.
func NewRecommendationHandler(uc usecase.RecommendationUsecase, defaultLimit int) *RecommendationHandler {
	return &RecommendationHandler{uc: uc, defaultLimit: defaultLimit}
}

func (h *RecommendationHandler) Courses(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit, err := parseQueryInt(c, "limit", h.defaultLimit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.RecommendCourses(c.Context(), userID, limit)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCourseListResponse(items))
}

func (h *RecommendationHandler) Jobs(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit, err := parseQueryInt(c, "limit", h.defaultLimit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.RecommendJobs(c.Context(), userID, limit)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobPostingListResponse(items))
}

func (h *RecommendationHandler) SearchCourses(c fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	filter := repository.CourseFilter{
		Skill:    strings.TrimSpace(c.Query("skill")),
		Platform: strings.TrimSpace(c.Query("platform")),
		Query:    strings.TrimSpace(c.Query("q")),
		Limit:    limit,
	}
	if raw := strings.TrimSpace(c.Query("difficulty")); raw != "" {
		filter.Difficulty = course.Difficulty(strings.ToLower(raw))
	}

	items, err := h.uc.SearchCourses(c.Context(), filter)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCourseListResponse(items))
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

func mapRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
