package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"skyit_builder/internal/ai"
	handlers "skyit_builder/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, backend http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	gen := ai.NewGenerator(ai.Options{APIKey: "test-key", BaseURL: srv.URL + "/v1", Model: "test-model"})

	router := gin.New()
	RegisterRoutes(router, handlers.NewAPIHandler(gen))
	return router
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateWebsite_EndToEnd(t *testing.T) {
	router := setupRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"`+"```html\\n<html>...</html>\\n```"+`"},"finish_reason":"stop"}]}`)
	})

	w := post(router, "/api/generate-website",
		`{"prompt": "Create a modern restaurant website with a hero section, menu, and contact info"}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"code": "<html>...</html>"}`, w.Body.String())
}

func TestGenerateWebsite_BackendFailure(t *testing.T) {
	router := setupRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`)
	})

	w := post(router, "/api/generate-website", `{"prompt": "anything"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "Failed to generate website"}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	router := setupRouter(t, http.NotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestExamplesRoutes(t *testing.T) {
	router := setupRouter(t, http.NotFound)

	for _, path := range []string{"/api/examples", "/api/examples/categories", "/api/examples/1"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
