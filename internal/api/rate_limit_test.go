package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pageza/mealdb-explorer/backend/internal/middleware"
	"github.com/pageza/mealdb-explorer/backend/internal/mocks"
	"github.com/pageza/mealdb-explorer/backend/internal/model"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Redis container test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func setupRateLimitedRouter(t *testing.T, rl *middleware.RateLimiter) (*gin.Engine, *mocks.MockMatcherService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	matcher := new(mocks.MockMatcherService)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler())
	SetupAPI(router, new(mocks.MockMealService), matcher, rl)
	return router, matcher
}

func TestGetRateLimitStatus(t *testing.T) {
	client := setupRedis(t)
	router, matcher := setupRateLimitedRouter(t, middleware.NewMatchRateLimiter(client, 3, time.Minute))
	matcher.On("FindMatches", mock.Anything, []string{"eggs"}).Return([]*model.MatchResult{}, nil)

	w := PerformRequest(router, http.MethodGet, "/api/rate-limits/what-can-i-cook", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var status RateLimitStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, 3, status.Limit)
	assert.Equal(t, 3, status.Remaining)
	assert.Equal(t, "1m0s", status.Window)
	assert.Greater(t, status.ResetTime, time.Now().Add(-time.Second).Unix())

	w = PerformRequest(router, http.MethodPost, "/api/meals/what-can-i-cook", map[string]interface{}{
		"ingredients": []string{"eggs"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, http.MethodGet, "/api/rate-limits/what-can-i-cook", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, 2, status.Remaining)
}

func TestGetRateLimitStatusRedisDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	router, _ := setupRateLimitedRouter(t, middleware.NewMatchRateLimiter(client, 3, time.Minute))

	w := PerformRequest(router, http.MethodGet, "/api/rate-limits/what-can-i-cook", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL")
}

func TestRateLimitStatusRouteRequiresLimiter(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := PerformRequest(router, http.MethodGet, "/api/rate-limits/what-can-i-cook", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
