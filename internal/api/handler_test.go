package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carpark-status-backend/config"
	"carpark-status-backend/internal/model"
	"carpark-status-backend/internal/store"
)

func testRouter(carparks []model.Carpark, status store.LoadStatus) *gin.Engine {
	gin.SetMode(gin.TestMode)

	s := store.NewMemStore()
	s.Replace(carparks, status)

	cfg := &config.Config{
		Server: config.ServerConfig{
			RateLimitPerSec: 1000,
			RateLimitBurst:  1000,
			CacheTTLSeconds: 1,
		},
		Ranking: config.RankingConfig{DefaultLimit: 5},
		View:    config.ViewConfig{PageSize: 10},
		Map:     config.MapConfig{CenterLat: 1.3521, CenterLon: 103.8198},
	}
	return NewRouter(cfg, s)
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)
	return w
}

func manyCarparks(n int) []model.Carpark {
	cps := make([]model.Carpark, n)
	for i := range cps {
		cps[i] = model.Carpark{
			ID:      fmt.Sprintf("CP%02d", i+1),
			Address: "BLK TEST STREET",
			Lat:     1.35,
			Lon:     103.82,
		}
	}
	return cps
}

func TestListCarparks_Pagination(t *testing.T) {
	router := testRouter(manyCarparks(23), store.LoadStatus{})

	w := get(t, router, "/api/carparks?page=3")
	require.Equal(t, http.StatusOK, w.Code)

	var resp carparksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Page)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 23, resp.TotalItems)
	assert.Len(t, resp.Items, 3)
}

func TestListCarparks_PageOutOfRange(t *testing.T) {
	router := testRouter(manyCarparks(23), store.LoadStatus{})

	w := get(t, router, "/api/carparks?page=4")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Page out of range"}`, w.Body.String())

	w = get(t, router, "/api/carparks?page=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCarparks_Search(t *testing.T) {
	carparks := []model.Carpark{
		{ID: "ACB", Address: "BLK 270 ALBERT CENTRE"},
		{ID: "BM29", Address: "BLK 271 ALBERT CENTRE"},
		{ID: "XYZ", Address: "TAMPINES AVENUE"},
	}
	router := testRouter(carparks, store.LoadStatus{})

	w := get(t, router, "/api/carparks?q=albert")
	require.Equal(t, http.StatusOK, w.Code)

	var resp carparksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalItems)
	assert.Equal(t, 1, resp.Page)
}

func TestListCarparks_EmptyStore(t *testing.T) {
	router := testRouter(nil, store.LoadStatus{})

	w := get(t, router, "/api/carparks")
	require.Equal(t, http.StatusOK, w.Code)

	var resp carparksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.TotalPages)
}

func TestGetCarpark(t *testing.T) {
	router := testRouter([]model.Carpark{{ID: "ACB", Address: "ALBERT CENTRE", Available: 42}}, store.LoadStatus{})

	w := get(t, router, "/api/carparks/acb")
	require.Equal(t, http.StatusOK, w.Code)

	var cp model.Carpark
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cp))
	assert.Equal(t, "ACB", cp.ID)
	assert.Equal(t, 42, cp.Available)

	w = get(t, router, "/api/carparks/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNearestCarparks(t *testing.T) {
	// Observer at (0, 0); identifiers encode the expected distance.
	carparks := []model.Carpark{
		{ID: "FIVE_KM", Lat: 0.044966, Lon: 0},
		{ID: "ONE_KM", Lat: 0.008993, Lon: 0},
		{ID: "TWO_KM", Lat: 0.017987, Lon: 0},
	}
	router := testRouter(carparks, store.LoadStatus{})

	w := get(t, router, "/api/carparks/nearest?lat=0&lon=0&limit=2")
	require.Equal(t, http.StatusOK, w.Code)

	var ranked []model.Carpark
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ranked))
	require.Len(t, ranked, 2)
	assert.Equal(t, "ONE_KM", ranked[0].ID)
	assert.Equal(t, "TWO_KM", ranked[1].ID)
	assert.InDelta(t, 1.0, ranked[0].Distance, 0.01)
}

func TestNearestCarparks_BadInput(t *testing.T) {
	router := testRouter(manyCarparks(3), store.LoadStatus{})

	for _, path := range []string{
		"/api/carparks/nearest",
		"/api/carparks/nearest?lat=1.35",
		"/api/carparks/nearest?lat=abc&lon=103.8",
		"/api/carparks/nearest?lat=91&lon=103.8",
		"/api/carparks/nearest?lat=1.35&lon=181",
		"/api/carparks/nearest?lat=1.35&lon=103.8&limit=0",
	} {
		w := get(t, router, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
	}
}

func TestCarparksGeoJSON(t *testing.T) {
	carparks := []model.Carpark{
		{ID: "ACB", Address: "ALBERT CENTRE", Lat: 1.3010, Lon: 103.8546, Available: 120},
		{ID: "ACM", Address: "ALJUNIED CRESCENT", Lat: 1.3198, Lon: 103.8854, Available: 3},
	}
	router := testRouter(carparks, store.LoadStatus{})

	w := get(t, router, "/api/carparks.geojson")
	require.Equal(t, http.StatusOK, w.Code)

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "Point", fc.Features[0].Geometry.Type)
	// GeoJSON position order is lon, lat.
	assert.InDelta(t, 103.8546, fc.Features[0].Geometry.Coordinates[0], 1e-9)
	assert.InDelta(t, 1.3010, fc.Features[0].Geometry.Coordinates[1], 1e-9)
	assert.Equal(t, "high", fc.Features[0].Properties["band"])
	assert.Equal(t, "low", fc.Features[1].Properties["band"])
}

func TestCarparksGeoJSON_WithObserver(t *testing.T) {
	carparks := []model.Carpark{
		{ID: "NEAR", Lat: 1.3530, Lon: 103.8200},
		{ID: "FAR", Lat: 1.4500, Lon: 103.9000},
	}
	router := testRouter(carparks, store.LoadStatus{})

	w := get(t, router, "/api/carparks.geojson?lat=1.3521&lon=103.8198")
	require.Equal(t, http.StatusOK, w.Code)

	var fc struct {
		Features []struct {
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	// 2 ranked carparks + 1 observer marker.
	require.Len(t, fc.Features, 3)
	assert.EqualValues(t, 1, fc.Features[0].Properties["rank"])
	assert.Equal(t, "NEAR", fc.Features[0].Properties["id"])
	assert.Equal(t, "observer", fc.Features[2].Properties["role"])
}

func TestGetStatus(t *testing.T) {
	status := store.LoadStatus{
		LoadedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		StaticCount: 2000,
		Degraded:    true,
		Message:     "Live availability is currently unreachable. Showing all carparks with 0 available lots.",
	}
	router := testRouter(nil, status)

	w := get(t, router, "/api/status")
	require.Equal(t, http.StatusOK, w.Code)

	var resp statusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Degraded)
	assert.Equal(t, 2000, resp.StaticCount)
	assert.InDelta(t, 1.3521, resp.MapCenter.Lat, 1e-9)
}

func TestReportLocation(t *testing.T) {
	router := testRouter(nil, store.LoadStatus{})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/locate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	w := post(`{"lat": 1.3521, "lon": 103.8198}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp locateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Contains(t, resp.Message, "1.3521")

	w = post(`{"error": "permission_denied"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Message, "denied")

	w = post(`{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request"}`, w.Body.String())
}
