package workout

import (
	"errors"
	"net/http"

	"github.com/Priyankavya/FitnessApp/middleware"
	"github.com/gin-gonic/gin"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

// WeeklyPlan handles GET /workout/weekly-plan
// @Summary Resolved weekly workout plan, day ordered
// @Tags Workout
// @Produce json
// @Router /api/v1/workout/weekly-plan [get]
func (h *Handler) WeeklyPlan(c *gin.Context) {
	userID := middleware.UserID(c)

	entries, err := h.service.WeeklyPlan(userID)
	if err != nil {
		if errors.Is(err, ErrProfileRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
