package users

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careercoach-backend/internal/shared/server/middleware"
	"careercoach-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
	rg.PUT("/me/profile", h.updateProfile)
}

func (h *Handler) me(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	externalID := middleware.UserIDFromContext(c)
	user, err := h.Svc.GetByExternalID(c.Request.Context(), externalID)
	if err != nil {
		if err == ErrNotFound {
			respond.Error(c, http.StatusNotFound, "user_not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(user))
}

type updateProfileRequest struct {
	Industry   string   `json:"industry"`
	Experience int      `json:"experience"`
	Skills     []string `json:"skills"`
	Bio        string   `json:"bio"`
}

func (h *Handler) updateProfile(c *gin.Context) {
	externalID := middleware.UserIDFromContext(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Experience < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "experience must be non-negative", nil)
		return
	}

	user, err := h.Svc.UpdateProfile(c.Request.Context(), externalID, Profile{
		Industry:   strings.TrimSpace(req.Industry),
		Experience: req.Experience,
		Skills:     req.Skills,
		Bio:        strings.TrimSpace(req.Bio),
	})
	if err != nil {
		if err == ErrNotFound {
			respond.Error(c, http.StatusNotFound, "user_not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update profile", nil)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(user))
}

func toResponse(user User) gin.H {
	return gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"fullName":   user.FullName,
		"industry":   user.Industry,
		"experience": user.Experience,
		"skills":     user.Skills,
		"bio":        user.Bio,
	}
}
