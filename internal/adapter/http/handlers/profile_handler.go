package handlers

import (
	"errors"
	"net/http"

	request "lexintake/internal/adapter/http/dto/request"
	response "lexintake/internal/adapter/http/dto/response"
	"lexintake/internal/adapter/http/middleware"
	"lexintake/internal/domain/entities"
	"lexintake/internal/usecase"
	"lexintake/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidUserPayload = pkg.NewDomainErrorSimple("VALIDATION_REJECTED", "Invalid user payload", http.StatusBadRequest)

// ProfileHandler serves the admin-only staff management surface.

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

func (h *ProfileHandler) ListUsers(c *gin.Context) {
	role, ok := middleware.RoleFromContext(c)
	if !ok {
		c.JSON(errSessionMissing.HTTPStatus, errSessionMissing.ToHTTPError())
		return
	}

	profiles, err := h.usecase.List(c.Request.Context(), role)
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfiles(profiles))
}

func (h *ProfileHandler) UpdateRole(c *gin.Context) {
	role, ok := middleware.RoleFromContext(c)
	if !ok {
		c.JSON(errSessionMissing.HTTPStatus, errSessionMissing.ToHTTPError())
		return
	}

	var payload request.UpdateRoleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateRole(c.Request.Context(), role, c.Param("id"), entities.Role(payload.Role))
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(updated))
}

func (h *ProfileHandler) CreateUser(c *gin.Context) {
	role, ok := middleware.RoleFromContext(c)
	if !ok {
		c.JSON(errSessionMissing.HTTPStatus, errSessionMissing.ToHTTPError())
		return
	}

	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Provision(c.Request.Context(), role, payload.Email, payload.Password, entities.Role(payload.Role))
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProfile(created))
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProfileID), errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("VALIDATION_REJECTED", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Role not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email already registered", http.StatusConflict)
	default:
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	}
}
