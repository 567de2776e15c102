package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/feeddigital/cursos-api/internal/logger"
)

func withObservedLogger(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	previous := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = previous })
	return logs
}

func TestRequestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logs := withObservedLogger(t, zapcore.InfoLevel)

	router := gin.New()
	router.Use(CorrelationIDMiddleware(), RequestLoggingMiddleware())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(CorrelationIDHeader, "abc")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("Request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "abc", fields["correlation_id"])
	assert.Equal(t, "/health", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestEnhancedLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("body is still readable by the handler", func(t *testing.T) {
		logs := withObservedLogger(t, zapcore.DebugLevel)

		var seen string
		router := gin.New()
		router.Use(EnhancedLoggingMiddleware(true))
		router.POST("/enviar-consulta", func(c *gin.Context) {
			var body struct {
				Email string `json:"email"`
			}
			require.NoError(t, c.ShouldBindJSON(&body))
			seen = body.Email
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		req := httptest.NewRequest(http.MethodPost, "/enviar-consulta", strings.NewReader(`{"email":"b@x.com"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer secret")
		router.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "b@x.com", seen)
		requests := logs.FilterMessage("Detailed request").All()
		require.Len(t, requests, 1)
		headers, ok := requests[0].ContextMap()["headers"].(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "[REDACTED]", headers["Authorization"])
		assert.Len(t, logs.FilterMessage("Detailed response").All(), 1)
	})

	t.Run("bodies beyond the logged prefix reach the handler intact", func(t *testing.T) {
		withObservedLogger(t, zapcore.DebugLevel)

		payload := strings.Repeat("a", maxLoggedBody+1024)
		var received int
		router := gin.New()
		router.Use(EnhancedLoggingMiddleware(true))
		router.POST("/upload", func(c *gin.Context) {
			body, err := io.ReadAll(c.Request.Body)
			require.NoError(t, err)
			received = len(body)
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(payload))
		req.ContentLength = -1
		router.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, len(payload), received)
	})

	t.Run("disabled in production", func(t *testing.T) {
		logs := withObservedLogger(t, zapcore.DebugLevel)

		router := gin.New()
		router.Use(EnhancedLoggingMiddleware(false))
		router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "server ok") })
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Zero(t, logs.Len())
	})
}
