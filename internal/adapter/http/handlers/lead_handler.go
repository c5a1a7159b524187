package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "lexintake/internal/adapter/http/dto/request"
	response "lexintake/internal/adapter/http/dto/response"
	"lexintake/internal/adapter/http/middleware"
	"lexintake/internal/domain/entities"
	"lexintake/internal/usecase"
	"lexintake/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLeadPayload = pkg.NewDomainErrorSimple("VALIDATION_REJECTED", "Invalid lead payload", http.StatusBadRequest)
	errInvalidListQuery   = pkg.NewDomainErrorSimple("VALIDATION_REJECTED", "Invalid list query", http.StatusBadRequest)
	errSessionMissing     = pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Authentication required", http.StatusUnauthorized)
)

// attachmentsFormKey is the multipart field holding uploaded files.
const attachmentsFormKey = "attachments"

// LeadHandler serves both surfaces of the lead lifecycle: the public
// submission endpoints and the session-gated admin mutations.

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// Quote returns the settlement range for the given case inputs without
// persisting anything.
func (h *LeadHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	estimate := entities.CalculateEstimate(payload.EstimatedDamage, payload.InjurySeverity, payload.IsCommercial)
	c.JSON(http.StatusOK, response.FromEstimateRange(estimate))
}

// Submit accepts the public multipart submission: form fields plus 0..N
// files under the "attachments" key. All uploads must succeed before the
// lead row is created.
func (h *LeadHandler) Submit(c *gin.Context) {
	var payload request.SubmitLeadRequest
	if err := c.ShouldBind(&payload); err != nil || payload.HasBlankField() {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	var attachments []usecase.AttachmentInput
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File[attachmentsFormKey] {
			f, err := fh.Open()
			if err != nil {
				log.Printf("[lead][handler] attachment open failed name=%s err=%v", fh.Filename, err)
				appErr := pkg.NewDomainError("UPLOAD_FAILED", "Could not read attachment", err, http.StatusBadGateway)
				c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
			defer f.Close()
			attachments = append(attachments, usecase.AttachmentInput{
				FileName:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Size:        fh.Size,
				Body:        f,
			})
		}
	}

	lead, err := h.usecase.Submit(c.Request.Context(), usecase.NewLeadInput{
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
		Email:           payload.Email,
		Phone:           payload.Phone,
		City:            payload.City,
		IsCommercial:    payload.IsCommercial,
		EstimatedDamage: payload.EstimatedDamage,
		InjurySeverity:  payload.InjurySeverity,
	}, attachments)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLead(lead))
}

// List returns leads for the admin table, filtered by lifecycle view and
// ordered by the requested field.
func (h *LeadHandler) List(c *gin.Context) {
	view, okView := entities.ParseLeadView(c.Query("view"))
	orderBy, okOrder := entities.ParseLeadOrderBy(c.Query("order_by"))
	direction, okDir := entities.ParseSortDirection(c.Query("direction"))
	if !okView || !okOrder || !okDir {
		c.JSON(errInvalidListQuery.HTTPStatus, errInvalidListQuery.ToHTTPError())
		return
	}

	leads, err := h.usecase.List(c.Request.Context(), view, orderBy, direction)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLeads(leads))
}

func (h *LeadHandler) Archive(c *gin.Context) {
	h.patchArchiveFlag(c, h.usecase.Archive)
}

func (h *LeadHandler) Unarchive(c *gin.Context) {
	h.patchArchiveFlag(c, h.usecase.Unarchive)
}

func (h *LeadHandler) patchArchiveFlag(
	c *gin.Context,
	updater func(ctx context.Context, actor entities.Role, id string) (entities.Lead, error),
) {
	role, ok := middleware.RoleFromContext(c)
	if !ok {
		c.JSON(errSessionMissing.HTTPStatus, errSessionMissing.ToHTTPError())
		return
	}

	lead, err := updater(c.Request.Context(), role, c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

// Delete permanently removes one lead and its attachments (admin only).
func (h *LeadHandler) Delete(c *gin.Context) {
	role, ok := middleware.RoleFromContext(c)
	if !ok {
		c.JSON(errSessionMissing.HTTPStatus, errSessionMissing.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), role, c.Param("id")); err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// PurgeArchived bulk-deletes every archived lead (admin only).
func (h *LeadHandler) PurgeArchived(c *gin.Context) {
	role, ok := middleware.RoleFromContext(c)
	if !ok {
		c.JSON(errSessionMissing.HTTPStatus, errSessionMissing.ToHTTPError())
		return
	}

	purged, err := h.usecase.PurgeArchived(c.Request.Context(), role)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PurgeResponse{Purged: purged})
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingContactField), errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidListQuery):
		return pkg.NewDomainErrorSimple("VALIDATION_REJECTED", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Role not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoArchivedLeads):
		return pkg.NewDomainErrorSimple("NO_ARCHIVED_LEADS", "No archived leads to purge", http.StatusConflict)
	case errors.Is(err, usecase.ErrAttachmentUpload):
		return pkg.NewDomainErrorSimple("UPLOAD_FAILED", "Attachment upload failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	}
}
