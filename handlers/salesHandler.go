package handlers

import (
	"InjetaClin/middlewares"
	"InjetaClin/models"
	"InjetaClin/services"
	"InjetaClin/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	service *services.SalesService
}

func NewSalesHandler(service *services.SalesService) *SalesHandler {
	return &SalesHandler{service: service}
}

func (h *SalesHandler) CreateSale(c *gin.Context) {
	var sale models.Sale
	if err := c.ShouldBindJSON(&sale); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateSaleData(sale); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &sale); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sale)
}

func (h *SalesHandler) GetSaleByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	sale, err := h.service.GetByID(c, uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if sale == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *SalesHandler) GetAllSales(c *gin.Context) {
	sales, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sales})
}

func (h *SalesHandler) UpdateSale(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	var sale models.Sale
	if err := c.ShouldBindJSON(&sale); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sale.ID = uint(id)
	if err := utils.ValidateSaleData(sale); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Update(c, &sale); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *SalesHandler) DeleteSale(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	if err := h.service.Delete(c, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{"message": "Sale deleted"})
}

// GetSalesKPIs reports period totals for ?from=&to= (YYYY-MM-DD) and the
// variance against the preceding period of equal length.
func (h *SalesHandler) GetSalesKPIs(c *gin.Context) {
	from, fromOK := utils.ParseDate(c.Query("from"))
	to, toOK := utils.ParseDate(c.Query("to"))
	if !fromOK || !toOK || to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from/to range"})
		return
	}
	report, err := h.service.KPIs(c, from, to)
	if err != nil {
		middlewares.HttpError(c, "failed to compute sales KPIs", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, report, http.StatusOK)
}
