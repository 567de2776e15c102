package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feeddigital/cursos-api/internal/logger"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name                 string
		requestCorrelationID string
		expectNewID          bool
	}{
		{
			name:        "New ID generated when header not present",
			expectNewID: true,
		},
		{
			name:                 "Existing ID preserved when header present",
			requestCorrelationID: "test-correlation-id-123",
		},
		{
			name:                 "Overlong ID replaced",
			requestCorrelationID: strings.Repeat("a", MaxCorrelationIDLength+1),
			expectNewID:          true,
		},
		{
			name:                 "ID with header breaking characters replaced",
			requestCorrelationID: "abc\tdef; X-Injected: 1",
			expectNewID:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromGin, fromCtx string

			router := gin.New()
			router.Use(CorrelationIDMiddleware())
			router.GET("/test", func(c *gin.Context) {
				fromGin = GetCorrelationID(c)
				fromCtx = logger.CorrelationIDFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestCorrelationID != "" {
				req.Header.Set(CorrelationIDHeader, tt.requestCorrelationID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			header := w.Header().Get(CorrelationIDHeader)
			assert.Equal(t, header, fromGin)
			assert.Equal(t, header, fromCtx)

			if tt.expectNewID {
				_, err := uuid.Parse(header)
				assert.NoError(t, err)
				assert.NotEqual(t, tt.requestCorrelationID, header)
			} else {
				assert.Equal(t, tt.requestCorrelationID, header)
			}
		})
	}
}

func TestGetCorrelationIDWithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetCorrelationID(c))
}

func TestIsValidCorrelationID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "", want: false},
		{id: "3f1c2d4e-0000-4000-8000-000000000001", want: true},
		{id: "req.42:retry_1", want: true},
		{id: strings.Repeat("x", MaxCorrelationIDLength), want: true},
		{id: strings.Repeat("x", MaxCorrelationIDLength+1), want: false},
		{id: "has space", want: false},
		{id: "line\nbreak", want: false},
		{id: "ñandú", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isValidCorrelationID(tt.id), "id %q", tt.id)
	}
}
