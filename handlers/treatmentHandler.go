package handlers

import (
	"InjetaClin/models"
	"InjetaClin/services"
	"InjetaClin/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type TreatmentHandler struct {
	service  *services.TreatmentService
	schedule *services.ScheduleService
}

func NewTreatmentHandler(service *services.TreatmentService, schedule *services.ScheduleService) *TreatmentHandler {
	return &TreatmentHandler{service: service, schedule: schedule}
}

func (h *TreatmentHandler) CreateTreatment(c *gin.Context) {
	var treatment models.Treatment
	if err := c.ShouldBindJSON(&treatment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateTreatmentData(treatment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &treatment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, treatment)
}

func (h *TreatmentHandler) GetTreatmentByID(c *gin.Context) {
	treatment, err := h.service.GetByID(c, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if treatment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Treatment not found"})
		return
	}
	c.JSON(http.StatusOK, treatment)
}

func (h *TreatmentHandler) GetAllTreatments(c *gin.Context) {
	treatments, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": treatments})
}

func (h *TreatmentHandler) UpdateTreatment(c *gin.Context) {
	var treatment models.Treatment
	if err := c.ShouldBindJSON(&treatment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	treatment.ID = c.Param("id")
	if err := utils.ValidateTreatmentData(treatment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Update(c, &treatment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, treatment)
}

func (h *TreatmentHandler) DeleteTreatment(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{"message": "Treatment deleted"})
}

// GetTreatmentProjection returns the next expected dose for one treatment.
func (h *TreatmentHandler) GetTreatmentProjection(c *gin.Context) {
	projection, err := h.schedule.ProjectTreatment(c, c.Param("id"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if projection == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No projection available"})
		return
	}
	c.JSON(http.StatusOK, projection)
}
