package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ta-portal-api/internal/service"
	appErrors "github.com/noah-isme/ta-portal-api/pkg/errors"
	"github.com/noah-isme/ta-portal-api/pkg/response"
)

// ExportHandler streams application exports for reviewing teachers.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler creates a new handler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// ExportApplications godoc
// @Summary Download the caller's applications as CSV or PDF
// @Tags Exports
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Router /exportApplications [get]
func (h *ExportHandler) ExportApplications(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	format := c.DefaultQuery("format", service.ExportFormatCSV)
	result, err := h.exports.Applications(c.Request.Context(), claims.Email, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+result.Filename)
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
