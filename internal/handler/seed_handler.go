package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careloop/advocates-api/internal/service"
	"github.com/careloop/advocates-api/pkg/response"
)

// SeedHandler exposes the dataset seeding endpoint.
type SeedHandler struct {
	seeder *service.SeedService
}

// NewSeedHandler constructs SeedHandler.
func NewSeedHandler(seeder *service.SeedService) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// Seed godoc
// @Summary Seed the advocate directory
// @Tags Seed
// @Produce json
// @Success 200 {object} dto.SeedResponse
// @Failure 409 {object} response.ErrorBody
// @Router /seed [post]
func (h *SeedHandler) Seed(c *gin.Context) {
	result, err := h.seeder.Seed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Plain(c, http.StatusOK, result)
}
