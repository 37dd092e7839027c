package handler

import (
	"net/http"

	"agrofield/internal/apierror"
	"agrofield/internal/dto"
	"agrofield/internal/service"

	"github.com/gin-gonic/gin"
)

type IrrigationTypesHandler struct{ svc service.IrrigationTypeService }

func NewIrrigationTypesHandler(svc service.IrrigationTypeService) *IrrigationTypesHandler {
	return &IrrigationTypesHandler{svc: svc}
}

// Create POST /v1/irrigation-types
func (h *IrrigationTypesHandler) Create(c *gin.Context) {
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

// List GET /v1/irrigation-types
func (h *IrrigationTypesHandler) List(c *gin.Context) {
	resp, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list irrigation types"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PUT /v1/irrigation-types/:id
func (h *IrrigationTypesHandler) Update(c *gin.Context) {
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

// Delete DELETE /v1/irrigation-types/:id — blocked while areas reference the row.
func (h *IrrigationTypesHandler) Delete(c *gin.Context) {
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
