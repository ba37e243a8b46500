package handler

import (
	"errors"

	"github.com/fadilmartias/recruit-track/internal/dto"
	"github.com/fadilmartias/recruit-track/internal/middleware"
	"github.com/fadilmartias/recruit-track/internal/response"
	"github.com/fadilmartias/recruit-track/internal/usecase"
	"github.com/fadilmartias/recruit-track/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CandidateHandler struct {
	uc         *usecase.CandidateUsecase
	downloadUc *usecase.DownloadUsecase
}

func NewCandidateHandler(uc *usecase.CandidateUsecase, downloadUc *usecase.DownloadUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc, downloadUc: downloadUc}
}

func (h *CandidateHandler) RegisterRoutes(app *fiber.App) {
	candidates := app.Group("/candidates", middleware.Protected())
	candidates.Post("/", h.Add)
	candidates.Get("/", h.List)
	candidates.Post("/bulk", middleware.RequireAdmin(), h.BulkImport)
	candidates.Get("/:id", h.Get)
	candidates.Get("/:id/resume", h.Resume)
}

func currentUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(middleware.LocalUserID).(uuid.UUID)
	return id
}

func (h *CandidateHandler) Add(c *fiber.Ctx) error {
	var in dto.ManualCandidateInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	candidate, err := h.uc.AddManual(currentUserID(c), &in)
	if err != nil {
		var formErr *util.FormError
		if errors.As(err, &formErr) {
			return util.FormErrorResponse(c, formErr)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to add candidate",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success add candidate",
		Data:    candidate,
	})
}

// BulkImport responds with per-row results: rows that fail validation or
// storage are reported in errors without aborting the rest.
func (h *CandidateHandler) BulkImport(c *fiber.Ctx) error {
	var body struct {
		Rows []dto.BulkCandidateRow `json:"rows"`
	}
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	result, err := h.uc.ImportBulk(currentUserID(c), body.Rows)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "bulk import failed",
		}, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CandidateHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", usecase.DefaultPageSize)

	candidates, total, err := h.uc.List(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list candidates",
		}, err)
	}

	normPage, normSize := usecase.NormalizePage(page, pageSize)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list candidates",
		Data:       candidates,
		Pagination: response.NewPagination(normPage, normSize, total),
	})
}

func (h *CandidateHandler) Get(c *fiber.Ctx) error {
	candidate, err := h.uc.GetByID(currentUserID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "candidate not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get candidate",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get candidate",
		Data:    candidate,
	})
}

// Resume gates one resume access through the daily quota and returns the
// externally hosted URL.
func (h *CandidateHandler) Resume(c *fiber.Ctx) error {
	url, _, err := h.downloadUc.AccessResume(currentUserID(c), c.Params("id"), c.IP())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCandidateNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "candidate not found"})
		case errors.Is(err, usecase.ErrQuotaExceeded):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Daily resume download limit reached"})
		default:
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "failed to access resume",
			}, err)
		}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"url": url})
}
