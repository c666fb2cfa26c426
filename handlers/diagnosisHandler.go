package handlers

import (
	"InjetaClin/models"
	"InjetaClin/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DiagnosisHandler struct {
	service *services.DiagnosisService
}

func NewDiagnosisHandler(service *services.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{service: service}
}

func (h *DiagnosisHandler) CreateDiagnosis(c *gin.Context) {
	var diagnosis models.Diagnosis
	if err := c.ShouldBindJSON(&diagnosis); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &diagnosis); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, diagnosis)
}

func (h *DiagnosisHandler) GetAllDiagnoses(c *gin.Context) {
	diagnoses, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": diagnoses})
}

func (h *DiagnosisHandler) UpdateDiagnosis(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	var diagnosis models.Diagnosis
	if err := c.ShouldBindJSON(&diagnosis); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	diagnosis.ID = uint(id)
	if err := h.service.Update(c, &diagnosis); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, diagnosis)
}

func (h *DiagnosisHandler) DeleteDiagnosis(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	if err := h.service.Delete(c, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{"message": "Diagnosis deleted"})
}
