package resumes

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"careercoach-backend/internal/shared/server/middleware"
	"careercoach-backend/internal/shared/server/respond"
	"careercoach-backend/internal/users"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/resume", h.save)
	rg.GET("/resume", h.get)
	rg.POST("/resume/improve", h.improveSection)
	rg.POST("/resume/improve-summary", h.improveSummary)
}

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(resume Resume) ResumeResponse {
	return ResumeResponse{
		Content:   resume.Content,
		CreatedAt: resume.CreatedAt,
		UpdatedAt: resume.UpdatedAt,
	}
}

type saveRequest struct {
	Content string `json:"content"`
}

func (h *Handler) save(c *gin.Context) {
	externalID := middleware.UserIDFromContext(c)

	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Save(c.Request.Context(), externalID, req.Content)
	if err != nil {
		h.fail(c, err, "failed to save resume")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(resume))
}

func (h *Handler) get(c *gin.Context) {
	externalID := middleware.UserIDFromContext(c)

	resume, err := h.Svc.Get(c.Request.Context(), externalID)
	if err != nil {
		h.fail(c, err, "failed to fetch resume")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(resume))
}

type improveSectionRequest struct {
	Current string `json:"current"`
	Type    string `json:"type"`
}

func (h *Handler) improveSection(c *gin.Context) {
	externalID := middleware.UserIDFromContext(c)

	var req improveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	content, err := h.Svc.ImproveSection(c.Request.Context(), externalID, req.Current, req.Type)
	if err != nil {
		h.fail(c, err, "failed to improve content")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"content": content})
}

type improveSummaryRequest struct {
	Current string `json:"current"`
}

func (h *Handler) improveSummary(c *gin.Context) {
	externalID := middleware.UserIDFromContext(c)

	var req improveSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	content, err := h.Svc.ImproveSummary(c.Request.Context(), externalID, req.Current)
	if err != nil {
		h.fail(c, err, "failed to improve summary")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"content": content})
}

func (h *Handler) fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "required fields are missing", nil)
	case errors.Is(err, users.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "user_not_found", "user not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrGenerationFailed):
		respond.Error(c, http.StatusBadGateway, "generation_failed", message, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "persistence_failed", message, nil)
	}
}
