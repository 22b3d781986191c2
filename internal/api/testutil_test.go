package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pageza/mealdb-explorer/backend/internal/middleware"
	"github.com/pageza/mealdb-explorer/backend/internal/mocks"
)

// setupTestRouter wires the API on a fresh gin engine backed by mocks
func setupTestRouter(t *testing.T) (*gin.Engine, *mocks.MockMealService, *mocks.MockMatcherService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	meals := new(mocks.MockMealService)
	matcher := new(mocks.MockMatcherService)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler())
	SetupAPI(router, meals, matcher, nil)

	return router, meals, matcher
}

// PerformRequest performs an HTTP request against router, encoding body as JSON when set
func PerformRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()

	var buf *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		buf = bytes.NewBuffer(jsonBody)
	} else {
		buf = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	router.ServeHTTP(w, req)
	return w
}
