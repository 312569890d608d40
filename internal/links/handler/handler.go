package handler

import (
	"net/http"
	"time"

	"dub-server/internal/apierrors"
	"dub-server/internal/links/processor"
	"dub-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkspaceHeader carries the workspace a request acts on
const WorkspaceHeader = "X-Workspace-ID"

type Handler struct {
	processor processor.LinkProcessor
	logger    *observability.Logger
}

func New(processor processor.LinkProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateLinkRequest represents the HTTP request for creating a link
type CreateLinkRequest struct {
	Domain          string     `json:"domain" binding:"required,max=253"`
	Key             string     `json:"key" binding:"required,max=190"`
	URL             string     `json:"url" binding:"required,url"`
	ProgramID       *uuid.UUID `json:"program_id,omitempty"`
	PartnerID       *uuid.UUID `json:"partner_id,omitempty"`
	TrackConversion bool       `json:"track_conversion"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	ExpiredURL      *string    `json:"expired_url,omitempty" binding:"omitempty,url"`
}

// UpdateLinkRequest represents the HTTP request for updating a link
type UpdateLinkRequest struct {
	Key             *string    `json:"key,omitempty" binding:"omitempty,max=190"`
	URL             *string    `json:"url,omitempty" binding:"omitempty,url"`
	TrackConversion *bool      `json:"track_conversion,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	ExpiredURL      *string    `json:"expired_url,omitempty" binding:"omitempty,url"`
	Archived        *bool      `json:"archived,omitempty"`
}

// HandleCreateLink creates a short link
func (h *Handler) HandleCreateLink(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := h.getWorkspaceID(c)
	if !ok {
		return
	}

	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	link, err := h.processor.CreateLink(ctx, workspaceID, processor.CreateLinkParams{
		Domain:          req.Domain,
		Key:             req.Key,
		URL:             req.URL,
		ProgramID:       req.ProgramID,
		PartnerID:       req.PartnerID,
		TrackConversion: req.TrackConversion,
		ExpiresAt:       req.ExpiresAt,
		ExpiredURL:      req.ExpiredURL,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// HandleGetLink returns a link
func (h *Handler) HandleGetLink(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := h.getWorkspaceID(c)
	if !ok {
		return
	}
	linkID, ok := h.getLinkID(c)
	if !ok {
		return
	}

	link, err := h.processor.GetLink(ctx, workspaceID, linkID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// HandleUpdateLink updates the destination, expiry or archived flag of a link
func (h *Handler) HandleUpdateLink(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := h.getWorkspaceID(c)
	if !ok {
		return
	}
	linkID, ok := h.getLinkID(c)
	if !ok {
		return
	}

	var req UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	link, err := h.processor.UpdateLink(ctx, workspaceID, linkID, processor.UpdateLinkParams{
		Key:             req.Key,
		URL:             req.URL,
		TrackConversion: req.TrackConversion,
		ExpiresAt:       req.ExpiresAt,
		ExpiredURL:      req.ExpiredURL,
		Archived:        req.Archived,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// HandleDeleteLink deletes a link
func (h *Handler) HandleDeleteLink(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := h.getWorkspaceID(c)
	if !ok {
		return
	}
	linkID, ok := h.getLinkID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteLink(ctx, workspaceID, linkID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleGetLinkStats returns the click, lead and sale counters of a link
func (h *Handler) HandleGetLinkStats(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := h.getWorkspaceID(c)
	if !ok {
		return
	}
	linkID, ok := h.getLinkID(c)
	if !ok {
		return
	}

	stats, err := h.processor.GetLinkStats(ctx, workspaceID, linkID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) getWorkspaceID(c *gin.Context) (uuid.UUID, bool) {
	workspaceID, err := uuid.Parse(c.GetHeader(WorkspaceHeader))
	if err != nil {
		apierrors.RespondBadRequest(c, apierrors.CodeInvalidInput, "X-Workspace-ID header must be a valid UUID")
		return uuid.Nil, false
	}
	return workspaceID, true
}

func (h *Handler) getLinkID(c *gin.Context) (uuid.UUID, bool) {
	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondBadRequest(c, apierrors.CodeInvalidInput, "Invalid link ID")
		return uuid.Nil, false
	}
	return linkID, true
}
