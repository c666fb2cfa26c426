package handlers

import (
	"InjetaClin/models"
	"InjetaClin/services"
	"InjetaClin/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProtocolHandler struct {
	service *services.ProtocolService
}

func NewProtocolHandler(service *services.ProtocolService) *ProtocolHandler {
	return &ProtocolHandler{service: service}
}

func (h *ProtocolHandler) CreateProtocol(c *gin.Context) {
	var protocol models.Protocol
	if err := c.ShouldBindJSON(&protocol); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateProtocolData(protocol); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &protocol); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, protocol)
}

func (h *ProtocolHandler) GetProtocolByID(c *gin.Context) {
	protocol, err := h.service.GetByID(c, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if protocol == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Protocol not found"})
		return
	}
	c.JSON(http.StatusOK, protocol)
}

func (h *ProtocolHandler) GetAllProtocols(c *gin.Context) {
	protocols, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": protocols})
}

func (h *ProtocolHandler) UpdateProtocol(c *gin.Context) {
	var protocol models.Protocol
	if err := c.ShouldBindJSON(&protocol); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	protocol.ID = c.Param("id")
	if err := utils.ValidateProtocolData(protocol); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Update(c, &protocol); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, protocol)
}

func (h *ProtocolHandler) DeleteProtocol(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{"message": "Protocol deleted"})
}
