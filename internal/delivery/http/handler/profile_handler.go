package handler

import (
	"context"
	"errors"

	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/dto"
	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/middleware"
	"github.com/Harshverma1208/skill-companion-project/internal/pkg/response"
	"github.com/Harshverma1208/skill-companion-project/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type addSkillRequest struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type targetRoleRequest struct {
	TargetRole string `json:"target_role"`
}

type courseRefRequest struct {
	CourseRef string `json:"course_ref"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me")
	grp.Get("/", h.Get)
	grp.Put("/target-role", h.SetTargetRole)
	grp.Get("/history", h.History)

	skills := grp.Group("/skills")
	skills.Post("/", h.AddSkill)
	skills.Delete("/:name", h.RemoveSkill)

	courses := grp.Group("/courses")
	courses.Post("/completed", h.CompleteCourse)
	courses.Post("/saved", h.SaveCourse)
	courses.Delete("/saved/:ref", h.UnsaveCourse)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) AddSkill(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req addSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	added, err := h.uc.AddSkill(c.Context(), userID, usecase.AddUserSkillInput{
		Name:        req.Name,
		Proficiency: req.Proficiency,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserSkillResponse(added))
}

func (h *ProfileHandler) RemoveSkill(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if err := h.uc.RemoveSkill(c.Context(), userID, c.Params("name")); err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProfileHandler) SetTargetRole(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req targetRoleRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SetTargetRole(c.Context(), userID, req.TargetRole); err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProfileHandler) CompleteCourse(c fiber.Ctx) error {
	return h.courseMutation(c, h.uc.CompleteCourse)
}

func (h *ProfileHandler) SaveCourse(c fiber.Ctx) error {
	return h.courseMutation(c, h.uc.SaveCourse)
}

func (h *ProfileHandler) UnsaveCourse(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if err := h.uc.UnsaveCourse(c.Context(), userID, c.Params("ref")); err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProfileHandler) History(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit, err := parseQueryInt(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.AnalysisHistory(c.Context(), userID, limit)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAnalysisHistoryResponse(items))
}

func (h *ProfileHandler) courseMutation(c fiber.Ctx, fn func(ctx context.Context, userID uuid.UUID, ref string) error) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req courseRefRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := fn(c.Context(), userID, req.CourseRef); err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapProfileUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidProficiency):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid proficiency level", nil, err)
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
