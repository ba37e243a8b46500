package handler

import (
	"errors"

	"github.com/fadilmartias/recruit-track/internal/dto"
	"github.com/fadilmartias/recruit-track/internal/middleware"
	"github.com/fadilmartias/recruit-track/internal/usecase"
	"github.com/fadilmartias/recruit-track/internal/util"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AdminHandler struct {
	uc          *usecase.AdminUsecase
	candidateUc *usecase.CandidateUsecase
}

func NewAdminHandler(uc *usecase.AdminUsecase, candidateUc *usecase.CandidateUsecase) *AdminHandler {
	return &AdminHandler{uc: uc, candidateUc: candidateUc}
}

func (h *AdminHandler) RegisterRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireAdmin())
	admin.Post("/recruiters", h.CreateRecruiter)
	admin.Get("/recruiters", h.ListRecruiters)
	admin.Patch("/recruiters/:id", h.UpdateRecruiter)
	admin.Get("/analytics", h.Analytics)
	admin.Get("/activity", h.ActivityLogs)
	admin.Post("/reindex", h.Reindex)
}

func (h *AdminHandler) CreateRecruiter(c *fiber.Ctx) error {
	var in dto.CreateRecruiterInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	user, err := h.uc.CreateRecruiter(currentUserID(c), in)
	if err != nil {
		var formErr *util.FormError
		if errors.As(err, &formErr) {
			return util.FormErrorResponse(c, formErr)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create recruiter",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create recruiter",
		Data: dto.UserDTO{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Role:       user.Role,
			Active:     user.Active,
			DailyLimit: user.DailyLimit,
			CreatedAt:  user.CreatedAt,
		},
	})
}

func (h *AdminHandler) ListRecruiters(c *fiber.Ctx) error {
	recruiters, pagination, err := h.uc.ListRecruiters(c.QueryInt("page", 1), c.QueryInt("pageSize", usecase.DefaultPageSize))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list recruiters",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list recruiters",
		Data:       recruiters,
		Pagination: pagination,
	})
}

func (h *AdminHandler) UpdateRecruiter(c *fiber.Ctx) error {
	var in dto.UpdateRecruiterInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	user, err := h.uc.UpdateRecruiter(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "recruiter not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to update recruiter",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update recruiter",
		Data: dto.UserDTO{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Role:       user.Role,
			Active:     user.Active,
			DailyLimit: user.DailyLimit,
			CreatedAt:  user.CreatedAt,
		},
	})
}

func (h *AdminHandler) Analytics(c *fiber.Ctx) error {
	report, err := h.uc.Analytics()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to build analytics",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get analytics",
		Data:    report,
	})
}

func (h *AdminHandler) ActivityLogs(c *fiber.Ctx) error {
	logs, pagination, err := h.uc.ActivityLogs(
		c.QueryInt("page", 1),
		c.QueryInt("pageSize", usecase.DefaultPageSize),
		c.Query("userId"),
		c.Query("action"),
	)
	if err != nil {
		var formErr *util.FormError
		if errors.As(err, &formErr) {
			return util.FormErrorResponse(c, formErr)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list activity logs",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list activity logs",
		Data:       logs,
		Pagination: pagination,
	})
}

// Reindex rebuilds the whole search index from the record store.
func (h *AdminHandler) Reindex(c *fiber.Ctx) error {
	synced, err := h.candidateUc.RebuildIndex()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to rebuild search index",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success rebuild search index",
		Data:    fiber.Map{"synced": synced},
	})
}
