package handler

import (
	"net/http"

	"agrofield/internal/apierror"
	"agrofield/internal/dto"
	"agrofield/internal/service"

	"github.com/gin-gonic/gin"
)

type AreasHandler struct{ svc service.AreaService }

func NewAreasHandler(svc service.AreaService) *AreasHandler {
	return &AreasHandler{svc: svc}
}

// Create POST /v1/areas
func (h *AreasHandler) Create(c *gin.Context) {
	var req dto.CreateAreaRequest
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

// List GET /v1/areas
func (h *AreasHandler) List(c *gin.Context) {
	resp, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list areas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID GET /v1/areas/:id
func (h *AreasHandler) GetByID(c *gin.Context) {
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

// ListByProducer GET /v1/producers/:id/areas
func (h *AreasHandler) ListByProducer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.FindByProducer(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PUT /v1/areas/:id
func (h *AreasHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateAreaRequest
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

// UpdateStatus PATCH /v1/areas/:id/status
func (h *AreasHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateAreaStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStatus(c.Request.Context(), id, *req.Active)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
