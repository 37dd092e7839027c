//go:build integration

package e2e

// End-to-end integration tests using real PostGIS + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// These tests:
//   - area creation round-trips the polygon through the geometry column
//   - geometrically invalid payloads are rejected with a field error
//   - status toggling is idempotent over HTTP
//   - harvest total-area deduplicates land shared between plantings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"agrofield/internal/config"
	"agrofield/internal/infra"
	"agrofield/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

var squarePolygon = map[string]any{
	"type": "Polygon",
	"coordinates": [][][]float64{
		{{-51.21, -30.03}, {-51.20, -30.03}, {-51.20, -30.02}, {-51.21, -30.02}, {-51.21, -30.03}},
	},
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	// PostGIS-enabled Postgres container — the migrations run
	// CREATE EXTENSION postgis, so a plain postgres image will not do.
	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgis/postgis:15-3.4-alpine"),
		tcPostgres.WithDatabase("agrofield_test"),
		tcPostgres.WithUsername("agrofield"),
		tcPostgres.WithPassword("agrofield"),
		// Postgres restarts once during init, so wait for the second
		// "ready" line before connecting.
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:                  8000,
		Env:                   "test",
		DatabaseURL:           pgURL,
		RedisURL:              rdURL,
		TotalAreaCacheMinutes: 1,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	require.NoError(t, infra.RunMigrations(db))

	r := router.New(cfg, db, rdb)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{server: srv}
}

// seedReferences creates a producer, a soil type and an irrigation type and
// returns their IDs.
func seedReferences(t *testing.T, env *testEnv) (producerID, soilTypeID, irrigationTypeID uint) {
	t.Helper()

	var created struct {
		ID uint `json:"id"`
	}

	resp := do(t, env.server, "POST", "/v1/producers",
		jsonBody(t, map[string]any{"name": "Rosa Campos", "document": "12345678900"}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeJSON(t, resp, &created)
	producerID = created.ID

	resp = do(t, env.server, "POST", "/v1/soil-types",
		jsonBody(t, map[string]any{"name": "Clay"}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeJSON(t, resp, &created)
	soilTypeID = created.ID

	resp = do(t, env.server, "POST", "/v1/irrigation-types",
		jsonBody(t, map[string]any{"name": "Drip"}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeJSON(t, resp, &created)
	irrigationTypeID = created.ID

	return
}

type areaBody struct {
	ID      uint `json:"id"`
	Active  bool `json:"active"`
	Polygon *struct {
		Type        string        `json:"type"`
		Coordinates [][][]float64 `json:"coordinates"`
	} `json:"polygon"`
	AreaM2 string  `json:"area_m2"`
	AreaHa float64 `json:"area_ha"`
}

func createArea(t *testing.T, env *testEnv, producerID, soilTypeID, irrigationTypeID uint, name string) areaBody {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/areas", jsonBody(t, map[string]any{
		"name":               name,
		"producer_id":        producerID,
		"soil_type_id":       soilTypeID,
		"irrigation_type_id": irrigationTypeID,
		"area_m2":            125000.0,
		"polygon":            squarePolygon,
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var area areaBody
	decodeJSON(t, resp, &area)
	return area
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_CreateAreaRoundTrip(t *testing.T) {
	env := setupTestEnv(t)
	producerID, soilTypeID, irrigationTypeID := seedReferences(t, env)

	area := createArea(t, env, producerID, soilTypeID, irrigationTypeID, "North Field")
	assert.True(t, area.Active)
	assert.Equal(t, "125000", area.AreaM2)

	// GET returns the stored geometry decoded back to GeoJSON.
	resp := do(t, env.server, "GET", "/v1/areas/"+itoa(area.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched areaBody
	decodeJSON(t, resp, &fetched)

	require.NotNil(t, fetched.Polygon)
	assert.Equal(t, "Polygon", fetched.Polygon.Type)
	require.Len(t, fetched.Polygon.Coordinates, 1)
	assert.Len(t, fetched.Polygon.Coordinates[0], 5)
	// The geodesic hectare figure comes from ST_Area of the stored polygon.
	assert.Greater(t, fetched.AreaHa, 0.0)
}

func TestE2E_RejectInvalidPolygon(t *testing.T) {
	env := setupTestEnv(t)
	producerID, soilTypeID, irrigationTypeID := seedReferences(t, env)

	// A Point is not a Polygon: must fail validation before touching the DB.
	resp := do(t, env.server, "POST", "/v1/areas", jsonBody(t, map[string]any{
		"name":               "Bad Geometry",
		"producer_id":        producerID,
		"soil_type_id":       soilTypeID,
		"irrigation_type_id": irrigationTypeID,
		"area_m2":            100.0,
		"polygon":            map[string]any{"type": "Point", "coordinates": []float64{-51.21, -30.03}},
	}))
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decodeJSON(t, resp, &body)
	assert.Contains(t, body.Fields, "polygon")
}

func TestE2E_AreaStatusToggleIdempotent(t *testing.T) {
	env := setupTestEnv(t)
	producerID, soilTypeID, irrigationTypeID := seedReferences(t, env)
	area := createArea(t, env, producerID, soilTypeID, irrigationTypeID, "North Field")

	deactivate := func() areaBody {
		resp := do(t, env.server, "PATCH", "/v1/areas/"+itoa(area.ID)+"/status",
			jsonBody(t, map[string]any{"active": false}))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body areaBody
		decodeJSON(t, resp, &body)
		return body
	}

	first := deactivate()
	assert.False(t, first.Active)

	// Repeating the same request succeeds and reports the same state.
	second := deactivate()
	assert.False(t, second.Active)

	// Deactivated areas drop out of the active listing.
	resp := do(t, env.server, "GET", "/v1/areas", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []areaBody
	decodeJSON(t, resp, &list)
	for _, a := range list {
		assert.NotEqual(t, area.ID, a.ID)
	}
}

func TestE2E_HarvestTotalAreaDeduplicates(t *testing.T) {
	env := setupTestEnv(t)
	producerID, soilTypeID, irrigationTypeID := seedReferences(t, env)

	shared := createArea(t, env, producerID, soilTypeID, irrigationTypeID, "Shared Field")
	own := createArea(t, env, producerID, soilTypeID, irrigationTypeID, "Own Field")

	// Product to plant.
	resp := do(t, env.server, "POST", "/v1/products",
		jsonBody(t, map[string]any{"name": "Soybean"}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &product)

	resp = do(t, env.server, "POST", "/v1/harvests", jsonBody(t, map[string]any{
		"name": "Winter 2026", "year": 2026, "producer_id": producerID,
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var harvest struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &harvest)

	// Two plantings sharing one area.
	for _, areaIDs := range [][]uint{{shared.ID, own.ID}, {shared.ID}} {
		resp = do(t, env.server, "POST", "/v1/plantings", jsonBody(t, map[string]any{
			"harvest_id": harvest.ID,
			"product_id": product.ID,
			"area_ids":   areaIDs,
		}))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp = do(t, env.server, "GET", "/v1/harvests/"+itoa(harvest.ID)+"/total-area", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var total struct {
		HarvestID uint   `json:"harvest_id"`
		TotalM2   string `json:"total_m2"`
	}
	decodeJSON(t, resp, &total)

	// 125000 + 125000, the shared area counted once.
	assert.Equal(t, harvest.ID, total.HarvestID)
	assert.Equal(t, "250000", total.TotalM2)

	// Second request is served from cache with the same payload.
	resp = do(t, env.server, "GET", "/v1/harvests/"+itoa(harvest.ID)+"/total-area", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cached struct {
		TotalM2 string `json:"total_m2"`
	}
	decodeJSON(t, resp, &cached)
	assert.Equal(t, total.TotalM2, cached.TotalM2)
}

func TestE2E_HarvestTotalAreaEmpty(t *testing.T) {
	env := setupTestEnv(t)
	producerID, _, _ := seedReferences(t, env)

	resp := do(t, env.server, "POST", "/v1/harvests", jsonBody(t, map[string]any{
		"name": "Winter 2026", "year": 2026, "producer_id": producerID,
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var harvest struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &harvest)

	resp = do(t, env.server, "GET", "/v1/harvests/"+itoa(harvest.ID)+"/total-area", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var total struct {
		TotalM2 string `json:"total_m2"`
	}
	decodeJSON(t, resp, &total)
	assert.Equal(t, "0", total.TotalM2)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
