package goal

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Priyankavya/FitnessApp/middleware"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// SetGoal creates a goal, superseding any active one.
func (h *Handler) SetGoal(c *gin.Context) {
	var req SetGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "goal_type and a positive target_value are required"})
		return
	}

	userID := middleware.UserID(c)
	ip := middleware.GetIPFromContext(c)

	g, err := h.service.SetGoal(c.Request.Context(), userID, req, ip)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Goal set successfully", "goal": g})
	case errors.Is(err, ErrEventPublish):
		// goal is stored; only the event stream missed it
		c.JSON(http.StatusOK, gin.H{"message": "Goal set successfully", "goal": g, "warning": "goal event could not be published"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set goal"})
	}
}

// MyGoal returns the active goal, else the most recent one.
func (h *Handler) MyGoal(c *gin.Context) {
	g, err := h.service.MyGoal(middleware.UserID(c))
	if errors.Is(err, ErrNoGoal) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No goal set yet"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goal"})
		return
	}
	c.JSON(http.StatusOK, g)
}

// CheckGoal re-runs evaluation on demand.
func (h *Handler) CheckGoal(c *gin.Context) {
	userID := middleware.UserID(c)
	ip := middleware.GetIPFromContext(c)

	g, err := h.service.CheckGoal(c.Request.Context(), userID, ip)
	if err != nil && !errors.Is(err, ErrEventPublish) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check goal"})
		return
	}
	if g == nil {
		c.JSON(http.StatusOK, gin.H{"message": "No active goal"})
		return
	}
	if g.Status == StatusCompleted {
		c.JSON(http.StatusOK, gin.H{"message": "Congratulations! Goal achieved 🎉", "goal": g})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal still in progress", "goal": g})
}

// Reset deletes the user's goals and progress history.
func (h *Handler) Reset(c *gin.Context) {
	userID := middleware.UserID(c)
	ip := middleware.GetIPFromContext(c)

	if err := h.service.ResetAll(c.Request.Context(), userID, ip); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goals and progress cleared"})
}
