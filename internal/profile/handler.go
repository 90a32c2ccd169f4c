package profile

import (
	"errors"
	"net/http"

	"github.com/Priyankavya/FitnessApp/middleware"
	"github.com/gin-gonic/gin"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

// CreateOrUpdate handles POST /profile
// @Summary Submit or update the caller's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Success 200 {object} UserProfile
// @Router /api/v1/profile [post]
func (h *Handler) CreateOrUpdate(c *gin.Context) {
	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.UserID(c)
	ip := middleware.GetIPFromContext(c)

	p, err := h.service.CreateOrUpdate(c.Request.Context(), userID, input, ip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

// Get handles GET /profile
func (h *Handler) Get(c *gin.Context) {
	userID := middleware.UserID(c)

	p, err := h.service.Get(userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}
