package handler

import (
	"net/http"

	"agrofield/internal/apierror"
	"agrofield/internal/dto"
	"agrofield/internal/service"

	"github.com/gin-gonic/gin"
)

type SoilTypesHandler struct{ svc service.SoilTypeService }

func NewSoilTypesHandler(svc service.SoilTypeService) *SoilTypesHandler {
	return &SoilTypesHandler{svc: svc}
}

// Create POST /v1/soil-types
func (h *SoilTypesHandler) Create(c *gin.Context) {
	var req dto.CreateReferenceRequest
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

// List GET /v1/soil-types
func (h *SoilTypesHandler) List(c *gin.Context) {
	resp, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list soil types"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PUT /v1/soil-types/:id
func (h *SoilTypesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateReferenceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/soil-types/:id — blocked while areas reference the row.
func (h *SoilTypesHandler) Delete(c *gin.Context) {
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
