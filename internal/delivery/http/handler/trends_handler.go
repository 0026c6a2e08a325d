package handler

import (
	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/dto"
	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/middleware"
	"github.com/Harshverma1208/skill-companion-project/internal/pkg/response"
	"github.com/Harshverma1208/skill-companion-project/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TrendsHandler struct {
	uc usecase.TrendsUsecase
}

func NewTrendsHandler(uc usecase.TrendsUsecase) *TrendsHandler {
	return &TrendsHandler{uc: uc}
}

func (h *TrendsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/trends", h.Get)
}

func (h *TrendsHandler) Get(c fiber.Ctx) error {
	trends, err := h.uc.GetMarketTrends(c.Context(), c.Query("category"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		dto.NewMarketTrendsResponse(trends.TrendingJobs, trends.SalaryInsights))
}
