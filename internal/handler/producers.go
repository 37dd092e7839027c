package handler

import (
	"net/http"

	"agrofield/internal/apierror"
	"agrofield/internal/dto"
	"agrofield/internal/service"

	"github.com/gin-gonic/gin"
)

type ProducersHandler struct{ svc service.ProducerService }

func NewProducersHandler(svc service.ProducerService) *ProducersHandler {
	return &ProducersHandler{svc: svc}
}

// Create POST /v1/producers
func (h *ProducersHandler) Create(c *gin.Context) {
	var req dto.CreateProducerRequest
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

// List GET /v1/producers
func (h *ProducersHandler) List(c *gin.Context) {
	resp, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list producers"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID GET /v1/producers/:id
func (h *ProducersHandler) GetByID(c *gin.Context) {
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

// Update PUT /v1/producers/:id
func (h *ProducersHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateProducerRequest
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

// Delete DELETE /v1/producers/:id
func (h *ProducersHandler) Delete(c *gin.Context) {
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
