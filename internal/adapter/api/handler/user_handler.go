package handler

import (
	"github.com/labstack/echo/v4"

	"fetan/internal/usecase"
	apperrors "fetan/pkg/errors"
	"fetan/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUseCase.GetUserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) GetReviews(c echo.Context) error {
	reviews, err := h.userUseCase.GetReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reviews)
}

func (h *UserHandler) UpdateBio(c echo.Context) error {
	uid := c.Get("uid").(string)
	if uid != c.Param("id") {
		return response.Error(c, apperrors.Forbidden("You can only update your own profile", nil))
	}

	var req struct {
		Bio string `json:"bio" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.UpdateUserBio(c.Request().Context(), uid, req.Bio); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "updated"})
}

func (h *UserHandler) ListProviders(c echo.Context) error {
	providers, err := h.userUseCase.ListProviders(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, providers)
}
