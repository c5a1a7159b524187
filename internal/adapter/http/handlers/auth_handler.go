package handlers

import (
	"errors"
	"net/http"

	request "lexintake/internal/adapter/http/dto/request"
	response "lexintake/internal/adapter/http/dto/response"
	"lexintake/internal/usecase"
	"lexintake/pkg"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves staff login.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("VALIDATION_REJECTED", "Invalid login payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, profile, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		Token:   token,
		Profile: response.FromProfile(profile),
	})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Invalid email or password", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	}
}
