package handlers

import (
	"InjetaClin/middlewares"
	"InjetaClin/services"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	service *services.PurchaseService
}

func NewPurchaseHandler(service *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: service}
}

func (h *PurchaseHandler) GetAllPurchaseRequests(c *gin.Context) {
	requests, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": requests})
}

// PredictPurchases runs the demand predictor and returns the request list
// with any newly opened requests first.
func (h *PurchaseHandler) PredictPurchases(c *gin.Context) {
	requests, err := h.service.Predict(c, time.Now())
	if err != nil {
		middlewares.HttpError(c, "failed to predict purchases", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"data": requests}, http.StatusOK)
}

type purchaseStatusRequest struct {
	Status string `json:"status"`
}

// UpdatePurchaseStatus advances a request one step; anything else is a 422.
func (h *PurchaseHandler) UpdatePurchaseStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	var body purchaseStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	request, err := h.service.AdvanceStatus(c, uint(id), body.Status)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if request == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase request not found"})
		return
	}
	c.JSON(http.StatusOK, request)
}
