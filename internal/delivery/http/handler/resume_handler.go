package handler

import (
	"errors"

	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/middleware"
	"github.com/Harshverma1208/skill-companion-project/internal/pkg/response"
	"github.com/Harshverma1208/skill-companion-project/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

type analyzeResumeRequest struct {
	ResumeText string `json:"resume_text"`
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/analysis/resume", h.Analyze)
}

func (h *ResumeHandler) Analyze(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req analyzeResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	ext, err := h.uc.AnalyzeResume(c.Context(), userID, req.ResumeText)
	if err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, ext)
}

func mapResumeUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrResumeServiceUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Resume analysis unavailable", nil, err)
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
