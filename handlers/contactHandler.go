package handlers

import (
	"InjetaClin/middlewares"
	"InjetaClin/models"
	"InjetaClin/services"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	service *services.ContactService
}

func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) GetUpcomingContacts(c *gin.Context) {
	events, err := h.service.Upcoming(c, time.Now())
	if err != nil {
		middlewares.HttpError(c, "failed to compute upcoming contacts", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"data": events}, http.StatusOK)
}

func (h *ContactHandler) GetPatientTimeline(c *gin.Context) {
	events, err := h.service.Timeline(c, c.Param("patient_id"), time.Now())
	if err != nil {
		middlewares.HttpError(c, "failed to compute contact timeline", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"data": events}, http.StatusOK)
}

// DismissContact marks a contact as handled. The body may carry patient
// feedback; repeating the call for the same contact changes nothing.
func (h *ContactHandler) DismissContact(c *gin.Context) {
	var entry models.DismissedLog
	// An empty body is allowed; feedback is optional on dismissal.
	if err := c.ShouldBindJSON(&entry); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry.ContactID = c.Param("contact_id")
	if err := h.service.Dismiss(c, &entry); err != nil {
		middlewares.HttpError(c, "failed to dismiss contact", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, entry, http.StatusOK)
}

// RemindContact emails the guardian for a pending contact event.
func (h *ContactHandler) RemindContact(c *gin.Context) {
	if err := h.service.SendReminder(c, c.Param("contact_id"), time.Now()); err != nil {
		middlewares.HttpError(c, "failed to send reminder", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"message": "Reminder sent"}, http.StatusOK)
}

func (h *ContactHandler) GetDismissedLogs(c *gin.Context) {
	entries, err := h.service.DismissedLogs(c)
	if err != nil {
		middlewares.HttpError(c, "failed to get dismissed logs", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"data": entries}, http.StatusOK)
}

// UpdateDismissedLog updates the feedback fields of a dismissal entry.
func (h *ContactHandler) UpdateDismissedLog(c *gin.Context) {
	var entry models.DismissedLog
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry.ContactID = c.Param("contact_id")
	if err := h.service.UpdateDismissedLog(c, &entry); err != nil {
		middlewares.HttpError(c, "failed to update dismissed log", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, entry, http.StatusOK)
}
