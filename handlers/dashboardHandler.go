package handlers

import (
	"InjetaClin/middlewares"
	"InjetaClin/models"
	"InjetaClin/services"
	"InjetaClin/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the derived read views: overdue doses, pending
// surveys, approaching consults, the activity worklist and the NPS figure.
type DashboardHandler struct {
	schedule *services.ScheduleService
}

func NewDashboardHandler(schedule *services.ScheduleService) *DashboardHandler {
	return &DashboardHandler{schedule: schedule}
}

func (h *DashboardHandler) GetOverdue(c *gin.Context) {
	entries, err := h.schedule.Overdue(c, time.Now())
	if err != nil {
		middlewares.HttpError(c, "failed to compute overdue treatments", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"data": entries}, http.StatusOK)
}

func (h *DashboardHandler) GetPendingSurveys(c *gin.Context) {
	doses, err := h.schedule.PendingSurveys(c)
	if err != nil {
		middlewares.HttpError(c, "failed to compute pending surveys", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"data": doses}, http.StatusOK)
}

func (h *DashboardHandler) GetApproachingConsults(c *gin.Context) {
	doses, err := h.schedule.ApproachingConsults(c, time.Now())
	if err != nil {
		middlewares.HttpError(c, "failed to compute approaching consults", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"data": doses}, http.StatusOK)
}

type activityEntry struct {
	models.Dose
	StatusColor  string `json:"status_color"`
	PaymentColor string `json:"payment_color"`
}

func (h *DashboardHandler) GetActivity(c *gin.Context) {
	doses, err := h.schedule.Activity(c, time.Now())
	if err != nil {
		middlewares.HttpError(c, "failed to compute activity window", http.StatusInternalServerError, err)
		return
	}
	entries := make([]activityEntry, 0, len(doses))
	for _, dose := range doses {
		entries = append(entries, activityEntry{
			Dose:         dose,
			StatusColor:  utils.DoseStatusColor(dose.Status),
			PaymentColor: utils.PaymentStatusColor(dose.PaymentStatus),
		})
	}
	middlewares.RespondJSON(c, gin.H{"data": entries}, http.StatusOK)
}

// GetNPS accepts ?window=30|60; window=0 disables the window.
func (h *DashboardHandler) GetNPS(c *gin.Context) {
	window := 30
	if raw := c.Query("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid window"})
			return
		}
		window = parsed
	}
	result, err := h.schedule.NPS(c, window, time.Now())
	if err != nil {
		middlewares.HttpError(c, "failed to compute NPS", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, result, http.StatusOK)
}
