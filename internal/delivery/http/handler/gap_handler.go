package handler

import (
	"errors"

	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/dto"
	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/middleware"
	"github.com/Harshverma1208/skill-companion-project/internal/domain/profile"
	"github.com/Harshverma1208/skill-companion-project/internal/pkg/response"
	"github.com/Harshverma1208/skill-companion-project/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type GapHandler struct {
	uc usecase.GapUsecase
}

type analyzeGapRequest struct {
	TargetRole string `json:"target_role"`
}

type previewGapRequest struct {
	TargetRole string            `json:"target_role"`
	Skills     []previewGapSkill `json:"skills"`
}

type previewGapSkill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

func NewGapHandler(uc usecase.GapUsecase) *GapHandler {
	return &GapHandler{uc: uc}
}

// Analyze runs the gap analysis against the caller's stored profile and
// records the report in their history.
func (h *GapHandler) Analyze(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req analyzeGapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	rep, err := h.uc.AnalyzeGapForUser(c.Context(), userID, req.TargetRole)
	if err != nil {
		return mapGapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewGapReportResponse(rep))
}

// Preview is the stateless variant: the caller supplies the skill list and
// nothing is written to history.
func (h *GapHandler) Preview(c fiber.Ctx) error {
	var req previewGapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills := make([]profile.UserSkill, 0, len(req.Skills))
	for _, s := range req.Skills {
		prof, ok := profile.ParseProficiency(s.Proficiency)
		if !ok {
			prof = profile.ProficiencyBeginner
		}
		skills = append(skills, profile.UserSkill{Name: s.Name, Proficiency: prof})
	}

	rep, err := h.uc.AnalyzeGap(c.Context(), skills, req.TargetRole)
	if err != nil {
		return mapGapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewGapReportResponse(rep))
}

func mapGapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrRoleNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Target role not found", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
