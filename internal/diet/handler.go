package diet

import (
	"errors"
	"net/http"

	"github.com/Priyankavya/FitnessApp/middleware"
	"github.com/gin-gonic/gin"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

// DailyPlan handles GET /diet/daily-plan
// @Summary Resolved daily diet plan, meal-slot ordered
// @Tags Diet
// @Produce json
// @Router /api/v1/diet/daily-plan [get]
func (h *Handler) DailyPlan(c *gin.Context) {
	userID := middleware.UserID(c)

	entries, err := h.service.DailyPlan(userID)
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

// LogMeal handles POST /diet/log-meal
func (h *Handler) LogMeal(c *gin.Context) {
	var req LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.UserID(c)
	if err := h.service.LogMeal(userID, req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal logged successfully"})
}

// TodayLogs handles GET /diet/today-logs
func (h *Handler) TodayLogs(c *gin.Context) {
	userID := middleware.UserID(c)

	entries, err := h.service.TodayLogs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
