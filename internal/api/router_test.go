package api

import (
	"context"
	"encoding/json"
	"itinerary-route-service/internal/adapters/cache"
	"itinerary-route-service/internal/adapters/repositories"
	"itinerary-route-service/internal/api/dto"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/db"
	"itinerary-route-service/internal/services"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const crossedBody = `{
  "activities": [
    {"id": "A", "category": "museum", "coordinates": {"lat": 0, "lng": 0}, "duration_minutes": 30},
    {"id": "C", "category": "museum", "coordinates": {"lat": 0, "lng": 0.02}, "duration_minutes": 30},
    {"id": "B", "category": "museum", "coordinates": {"lat": 0, "lng": 0.01}, "duration_minutes": 30},
    {"id": "D", "category": "museum", "coordinates": {"lat": 0, "lng": 0.03}, "duration_minutes": 30}
  ]
}`

func crossedDay(tripID string, dayNumber int) *domain.ItineraryDay {
	a := func(id string, lng float64) domain.Activity {
		return domain.Activity{ID: id, Name: id, Category: domain.CategoryMuseum, Coordinates: &domain.Coordinates{Lng: lng}, DurationMinutes: 30}
	}
	return &domain.ItineraryDay{
		TripID:     tripID,
		DayNumber:  dayNumber,
		Activities: []domain.Activity{a("A", 0), a("C", 0.02), a("B", 0.01), a("D", 0.03)},
	}
}

func setupRouter(t *testing.T) (http.Handler, *repositories.SqliteItineraryRepository) {
	t.Helper()

	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, repositories.InitSchema(conn))

	repo := repositories.NewSqliteItineraryRepository(conn)
	ctx := context.Background()
	require.NoError(t, repo.SaveDay(ctx, crossedDay("rome", 1)))
	require.NoError(t, repo.SaveDay(ctx, crossedDay("rome", 2)))

	optimizer := services.NewDayOptimizer(repo, cache.NopResultCache{}, services.Options{})
	return NewRouter(optimizer), repo
}

func countRuns(t *testing.T, repo *repositories.SqliteItineraryRepository, tripID string, dayNumber int) int {
	t.Helper()

	var n int
	err := repo.DB.QueryRow(`SELECT COUNT(*) FROM optimization_runs WHERE trip_id = ? AND day_number = ?`, tripID, dayNumber).Scan(&n)
	require.NoError(t, err)
	return n
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h, _ := setupRouter(t)

	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = do(t, h, http.MethodPost, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	h, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestOptimize(t *testing.T) {
	h, _ := setupRouter(t)

	rec := do(t, h, http.MethodPost, "/optimize", crossedBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.OptimizationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	ids := make([]string, 0, len(res.OptimizedOrder))
	for _, a := range res.OptimizedOrder {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids)
	assert.Equal(t, 7450, res.OriginalDistanceMeters)
	assert.Equal(t, 4338, res.OptimizedDistanceMeters)
	assert.Equal(t, 3112, res.SavingsMeters)
	assert.Equal(t, 1, res.SwapsPerformed)
	assert.Equal(t, "two_opt", res.Strategy)
	assert.Equal(t, map[string]string{"A": "09:00", "B": "09:48", "C": "10:36", "D": "11:24"}, res.UpdatedStartTimes)
	require.NotNil(t, res.OptimizedOrder[1].StartTime)
	assert.Equal(t, "09:48", *res.OptimizedOrder[1].StartTime)
	assert.Nil(t, res.OriginalOrder[0].StartTime)
}

func TestOptimize_BadRequests(t *testing.T) {
	h, _ := setupRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"malformed", `{"activities": [`},
		{"unknown field", `{"activities": [], "bogus": true}`},
		{"trailing object", `{"activities": []} {}`},
		{"bad start time", `{"activities": [{"id": "a", "start_time": "25:99", "duration_minutes": 10}]}`},
		{"bad meal window", `{"activities": [], "constraints": {"meal_windows": {"lunch": "noon", "dinner": "18:00-21:00"}}}`},
		{"duplicate ids", `{"activities": [{"id": "a", "duration_minutes": 10}, {"id": "a", "duration_minutes": 10}]}`},
		{"unknown fixed id", `{"activities": [{"id": "a", "duration_minutes": 10}], "constraints": {"fixed_activity_ids": ["zzz"]}}`},
		{"negative duration", `{"activities": [{"id": "a", "duration_minutes": -5}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/optimize", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}

	rec := do(t, h, http.MethodGet, "/optimize", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestGetDay(t *testing.T) {
	h, _ := setupRouter(t)

	rec := do(t, h, http.MethodGet, "/trips/rome/days/1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.DayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "rome", res.TripID)
	assert.Equal(t, 1, res.DayNumber)
	assert.Len(t, res.Activities, 4)
	assert.Equal(t, "C", res.Activities[1].ID)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/trips/rome/days/9", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/trips/nowhere/days/1", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/trips/rome/days/zero", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/trips/rome/days/0", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, http.MethodDelete, "/trips/rome/days/1", "").Code)
}

func TestOptimizeStoredDay(t *testing.T) {
	h, repo := setupRouter(t)
	ctx := context.Background()

	rec := do(t, h, http.MethodPost, "/trips/rome/days/1/optimize", `{"dry_run": true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := repo.GetDay(ctx, "rome", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D"}, domain.IDs(stored.Activities), "dry run must not persist")

	// No body means no constraints and no dry run.
	rec = do(t, h, http.MethodPost, "/trips/rome/days/1/optimize", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err = repo.GetDay(ctx, "rome", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, domain.IDs(stored.Activities))

	assert.Equal(t, 1, countRuns(t, repo, "rome", 1))

	rec = do(t, h, http.MethodPost, "/trips/rome/days/1/optimize", `{"constraints": {"fixed_activity_ids": ["nope"]}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/trips/rome/days/7/optimize", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOptimizeStoredTrip(t *testing.T) {
	h, repo := setupRouter(t)

	rec := do(t, h, http.MethodPost, "/trips/rome/optimize", `{"constraints": {"fixed_activity_ids": ["C"]}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.TripOptimizationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "rome", res.TripID)
	assert.False(t, res.DryRun)
	require.Len(t, res.Days, 2)
	for i, d := range res.Days {
		assert.Equal(t, i+1, d.DayNumber)
		assert.Equal(t, 0, d.Result.SwapsPerformed, "fixed C blocks the only improving move")
		assert.Equal(t, 7450, d.Result.OptimizedDistanceMeters)
	}

	assert.Equal(t, 1, countRuns(t, repo, "rome", 2))

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/trips/nowhere/optimize", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, http.MethodGet, "/trips/rome/optimize", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := setupRouter(t)

	do(t, h, http.MethodGet, "/health", "")
	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/health",status="200"}`)
}
