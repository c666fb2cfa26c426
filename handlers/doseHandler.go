package handlers

import (
	"InjetaClin/models"
	"InjetaClin/services"
	"InjetaClin/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DoseHandler struct {
	service *services.DoseService
}

func NewDoseHandler(service *services.DoseService) *DoseHandler {
	return &DoseHandler{service: service}
}

func (h *DoseHandler) CreateDose(c *gin.Context) {
	var dose models.Dose
	if err := c.ShouldBindJSON(&dose); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateDoseData(dose); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &dose); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dose)
}

func (h *DoseHandler) GetDoseByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	dose, err := h.service.GetByID(c, uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if dose == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dose not found"})
		return
	}
	c.JSON(http.StatusOK, dose)
}

// GetAllDoses optionally filters by treatment via ?treatment_id=.
func (h *DoseHandler) GetAllDoses(c *gin.Context) {
	if treatmentID := c.Query("treatment_id"); treatmentID != "" {
		doses, err := h.service.GetByTreatment(c, treatmentID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": doses})
		return
	}
	doses, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": doses})
}

func (h *DoseHandler) UpdateDose(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	var dose models.Dose
	if err := c.ShouldBindJSON(&dose); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dose.ID = uint(id)
	if err := utils.ValidateDoseData(dose); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Update(c, &dose); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dose)
}

func (h *DoseHandler) DeleteDose(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	treatmentID := c.Query("treatment_id")
	if treatmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "treatment_id is required"})
		return
	}
	if err := h.service.Delete(c, treatmentID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{"message": "Dose deleted"})
}
