package handlers

import (
	"InjetaClin/middlewares"
	"InjetaClin/models"
	"InjetaClin/services"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	service *services.DocumentService
}

func NewDocumentHandler(service *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// UploadDocument accepts a multipart "file" field. Type and size are checked
// before anything is stored.
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	if header.Size > services.MaxDocumentSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": services.ErrDocumentTooLarge.Error()})
		return
	}

	file, err := header.Open()
	if err != nil {
		middlewares.HttpError(c, "failed to open uploaded file", http.StatusInternalServerError, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		middlewares.HttpError(c, "failed to read uploaded file", http.StatusInternalServerError, err)
		return
	}

	document := models.Document{
		PatientID:   c.Param("patient_id"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     content,
	}
	if err := h.service.Create(c, &document); err != nil {
		if errors.Is(err, services.ErrDocumentInvalidType) || errors.Is(err, services.ErrDocumentTooLarge) {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
			return
		}
		middlewares.HttpError(c, "failed to store document", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, document)
}

func (h *DocumentHandler) GetPatientDocuments(c *gin.Context) {
	documents, err := h.service.GetByPatient(c, c.Param("patient_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": documents})
}

// DownloadDocument streams the stored file back to the caller.
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("document_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	document, err := h.service.GetByID(c, uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if document == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+document.FileName+"\"")
	c.Data(http.StatusOK, document.ContentType, document.Content)
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("document_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	if err := h.service.Delete(c, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{"message": "Document deleted"})
}
