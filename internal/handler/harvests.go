package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"agrofield/internal/apierror"
	"agrofield/internal/dto"
	"agrofield/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type HarvestsHandler struct {
	svc      service.HarvestService
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewHarvestsHandler(svc service.HarvestService, rdb *redis.Client, cacheTTL time.Duration) *HarvestsHandler {
	return &HarvestsHandler{svc: svc, rdb: rdb, cacheTTL: cacheTTL}
}

// Create POST /v1/harvests
func (h *HarvestsHandler) Create(c *gin.Context) {
	var req dto.CreateHarvestRequest
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

// List GET /v1/harvests
func (h *HarvestsHandler) List(c *gin.Context) {
	resp, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list harvests"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID GET /v1/harvests/:id
func (h *HarvestsHandler) GetByID(c *gin.Context) {
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

// Update PUT /v1/harvests/:id
func (h *HarvestsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateHarvestRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	// The area links may have changed — drop any cached footprint.
	h.invalidateTotalArea(c.Request.Context(), id)
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/harvests/:id
func (h *HarvestsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	h.invalidateTotalArea(c.Request.Context(), id)
	c.JSON(http.StatusNoContent, nil)
}

// TotalArea GET /v1/harvests/:id/total-area
//
// Distinct cultivated footprint across the harvest's plantings, in square
// meters. Always 200 with a zero total when the harvest is missing or has no
// plantings — "no data" is not an error here. Results are cached in Redis;
// cache errors degrade to a direct computation.
func (h *HarvestsHandler) TotalArea(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cacheKey := totalAreaCacheKey(id)

	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.HarvestTotalAreaResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	total, err := h.svc.TotalArea(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute total area"))
		return
	}

	resp := dto.HarvestTotalAreaResponse{HarvestID: id, TotalM2: total}

	// Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, h.cacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}

// TotalAreaDirect GET /v1/harvests/:id/total-area/direct
//
// Geodesic surface of the areas directly linked to the harvest, ignoring
// planting structure.
func (h *HarvestsHandler) TotalAreaDirect(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	total, err := h.svc.TotalAreaDirect(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute total area"))
		return
	}
	c.JSON(http.StatusOK, dto.HarvestDirectAreaResponse{HarvestID: id, TotalM2: total})
}

func totalAreaCacheKey(harvestID uint) string {
	return "harvest:total-area:" + strconv.FormatUint(uint64(harvestID), 10)
}

func (h *HarvestsHandler) invalidateTotalArea(ctx context.Context, harvestID uint) {
	_ = h.rdb.Del(ctx, totalAreaCacheKey(harvestID)).Err()
}
