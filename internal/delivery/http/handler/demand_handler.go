package handler

import (
	"errors"

	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/dto"
	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/middleware"
	"github.com/Harshverma1208/skill-companion-project/internal/pkg/response"
	"github.com/Harshverma1208/skill-companion-project/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DemandHandler struct {
	uc usecase.DemandUsecase
}

func NewDemandHandler(uc usecase.DemandUsecase) *DemandHandler {
	return &DemandHandler{uc: uc}
}

func (h *DemandHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/demand")
	grp.Post("/refresh", h.Refresh)
	grp.Get("/", h.Latest)
}

// Refresh triggers a full aggregation pass. At most one pass runs at a time;
// a concurrent trigger gets a conflict.
func (h *DemandHandler) Refresh(c fiber.Ctx) error {
	rep, err := h.uc.ComputeSkillDemand(c.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrAggregationRunning) {
			return middleware.NewAppError(fiber.StatusConflict, "Aggregation already running", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDemandReportResponse(rep))
}

func (h *DemandHandler) Latest(c fiber.Ctx) error {
	scores, found, err := h.uc.LatestSnapshot(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	if !found {
		return middleware.NewAppError(fiber.StatusNotFound, "No demand snapshot yet", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillDemandList(scores))
}
