package coverletters

import (
	"errors"
	"net/http"

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

// RegisterRoutes attaches cover letter routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cover-letters", h.generate)
	rg.GET("/cover-letters", h.list)
	rg.GET("/cover-letters/:id", h.get)
	rg.DELETE("/cover-letters/:id", h.delete)
}

type generateRequest struct {
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) generate(c *gin.Context) {
	externalID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	letter, err := h.Svc.Generate(c.Request.Context(), externalID, GenerateInput{
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		h.fail(c, err, "failed to generate cover letter")
		return
	}

	c.Set("coverLetterId", letter.ID)
	respond.JSON(c, http.StatusCreated, toResponse(letter))
}

func (h *Handler) list(c *gin.Context) {
	externalID := middleware.UserIDFromContext(c)

	letters, err := h.Svc.List(c.Request.Context(), externalID)
	if err != nil {
		h.fail(c, err, "failed to list cover letters")
		return
	}

	resp := make([]CoverLetterResponse, 0, len(letters))
	for _, letter := range letters {
		resp = append(resp, toResponse(letter))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	externalID := middleware.UserIDFromContext(c)

	letter, err := h.Svc.Get(c.Request.Context(), externalID, c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch cover letter")
		return
	}

	c.Set("coverLetterId", letter.ID)
	respond.JSON(c, http.StatusOK, toResponse(letter))
}

func (h *Handler) delete(c *gin.Context) {
	externalID := middleware.UserIDFromContext(c)

	letter, err := h.Svc.Delete(c.Request.Context(), externalID, c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to delete cover letter")
		return
	}

	c.Set("coverLetterId", letter.ID)
	respond.JSON(c, http.StatusOK, toResponse(letter))
}

// fail maps service errors to user-safe responses. Internal causes never
// cross this boundary; they are already logged by the service.
func (h *Handler) fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobTitle, companyName and jobDescription are required", nil)
	case errors.Is(err, users.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "user_not_found", "user not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "cover letter not found", nil)
	case errors.Is(err, ErrGenerationFailed):
		respond.Error(c, http.StatusBadGateway, "generation_failed", message, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "persistence_failed", message, nil)
	}
}
