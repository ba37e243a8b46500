package handler

import (
	"errors"
	"time"

	"github.com/fadilmartias/recruit-track/internal/dto"
	"github.com/fadilmartias/recruit-track/internal/middleware"
	"github.com/fadilmartias/recruit-track/internal/usecase"
	"github.com/fadilmartias/recruit-track/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/auth/login", middleware.RateLimiter(10, 1*time.Minute), h.Login)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	token, user, err := h.uc.Login(in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "invalid email or password",
			})
		case errors.Is(err, usecase.ErrUserInactive):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "account is inactive",
			})
		default:
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "login failed",
			}, err)
		}
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success login",
		Data: fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		},
	})
}
