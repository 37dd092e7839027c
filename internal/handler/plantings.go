package handler

import (
	"net/http"

	"agrofield/internal/apierror"
	"agrofield/internal/dto"
	"agrofield/internal/service"

	"github.com/gin-gonic/gin"
)

type PlantingsHandler struct{ svc service.PlantingService }

func NewPlantingsHandler(svc service.PlantingService) *PlantingsHandler {
	return &PlantingsHandler{svc: svc}
}

// Create POST /v1/plantings
func (h *PlantingsHandler) Create(c *gin.Context) {
	var req dto.CreatePlantingRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List GET /v1/plantings
func (h *PlantingsHandler) List(c *gin.Context) {
	resp, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list plantings"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID GET /v1/plantings/:id
func (h *PlantingsHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.FindOne(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/plantings/:id
func (h *PlantingsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
