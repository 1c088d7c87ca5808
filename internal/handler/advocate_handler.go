package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careloop/advocates-api/internal/dto"
	"github.com/careloop/advocates-api/internal/service"
	appErrors "github.com/careloop/advocates-api/pkg/errors"
	"github.com/careloop/advocates-api/pkg/response"
)

// AdvocateHandler exposes advocate directory endpoints.
type AdvocateHandler struct {
	advocates *service.AdvocateService
	exports   *service.ExportService
}

// NewAdvocateHandler constructs AdvocateHandler.
func NewAdvocateHandler(advocates *service.AdvocateService, exports *service.ExportService) *AdvocateHandler {
	return &AdvocateHandler{advocates: advocates, exports: exports}
}

// List godoc
// @Summary List advocates
// @Tags Advocates
// @Produce json
// @Param search query string false "Match against name, city, degree and specialties; supersedes city and degree"
// @Param city query string false "Filter by city substring"
// @Param degree query string false "Filter by exact degree"
// @Param specialty query string false "Filter by exact specialty"
// @Param minYearsOfExperience query int false "Minimum years of experience"
// @Param limit query int false "Page size (1-100, default 10)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorBody
// @Router /advocates [get]
func (h *AdvocateHandler) List(c *gin.Context) {
	filter, details := dto.ParseAdvocateQuery(c.Request.URL.Query())
	if len(details) > 0 {
		response.Error(c, appErrors.ErrValidation.WithDetails(details))
		return
	}

	advocates, pagination, err := h.advocates.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, advocates, pagination)
}

// Get godoc
// @Summary Get advocate detail
// @Tags Advocates
// @Produce json
// @Param id path int true "Advocate ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /advocates/{id} [get]
func (h *AdvocateHandler) Get(c *gin.Context) {
	id, details := dto.ParseAdvocateID(c.Param("id"))
	if len(details) > 0 {
		response.Error(c, appErrors.ErrValidation.WithDetails(details))
		return
	}

	advocate, err := h.advocates.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, advocate, nil)
}

// Export godoc
// @Summary Export the advocate directory
// @Tags Advocates
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Export format: csv or pdf" default(csv)
// @Param search query string false "Match against name, city, degree and specialties; supersedes city and degree"
// @Param city query string false "Filter by city substring"
// @Param degree query string false "Filter by exact degree"
// @Param specialty query string false "Filter by exact specialty"
// @Param minYearsOfExperience query int false "Minimum years of experience"
// @Success 200 {file} binary
// @Failure 400 {object} response.ErrorBody
// @Router /advocates/export [get]
func (h *AdvocateHandler) Export(c *gin.Context) {
	filter, details := dto.ParseAdvocateQuery(c.Request.URL.Query())
	if len(details) > 0 {
		response.Error(c, appErrors.ErrValidation.WithDetails(details))
		return
	}

	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	result, err := h.exports.Export(c.Request.Context(), format, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}
