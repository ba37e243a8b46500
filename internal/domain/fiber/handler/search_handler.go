package handler

import (
	"github.com/fadilmartias/recruit-track/internal/dto"
	"github.com/fadilmartias/recruit-track/internal/middleware"
	"github.com/fadilmartias/recruit-track/internal/usecase"
	"github.com/fadilmartias/recruit-track/internal/util"
	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	uc *usecase.SearchUsecase
}

func NewSearchHandler(uc *usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

func (h *SearchHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/search", middleware.Protected(), h.Search)
}

// Search has no degraded mode: when the index is unreachable the request
// fails rather than falling back to scanning the record store.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var query dto.SearchQuery
	if err := c.BodyParser(&query); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	result, err := h.uc.Search(currentUserID(c), query)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "search is unavailable",
		}, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
