package reports

import (
	"errors"
	"fmt"
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

// ExportProgress streams the user's progress history as a file.
// Query params: format=csv|excel|pdf, date_range=daily|weekly|monthly|yearly|custom,
// start_date/end_date for custom ranges.
func (h *Handler) ExportProgress(c *gin.Context) {
	req := ProgressReportRequest{
		Format:    c.DefaultQuery("format", FormatCSV),
		DateRange: c.DefaultQuery("date_range", DateRangeWeekly),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	data, filename, contentType, err := h.service.ExportProgress(middleware.UserID(c), req)
	if errors.Is(err, ErrUnsupportedFormat) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv, excel or pdf"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
