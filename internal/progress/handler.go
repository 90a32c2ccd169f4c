package progress

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

// Add records a reading for today.
func (h *Handler) Add(c *gin.Context) {
	var req AddProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a positive weight is required"})
		return
	}

	userID := middleware.UserID(c)
	ip := middleware.GetIPFromContext(c)

	entry, err := h.service.Record(c.Request.Context(), userID, req.Weight, ip)
	if errors.Is(err, ErrProfileRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please submit your profile before recording progress"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Progress recorded",
		"bmi":      entry.Bmi,
		"category": entry.Category,
		"entry":    entry,
	})
}

// My returns the full history ordered by date.
func (h *Handler) My(c *gin.Context) {
	entries, err := h.service.History(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Latest returns the newest reading.
func (h *Handler) Latest(c *gin.Context) {
	entry, err := h.service.Latest(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No progress recorded yet"})
		return
	}
	c.JSON(http.StatusOK, entry)
}
