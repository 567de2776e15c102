package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feeddigital/cursos-api/internal/constants"
)

func TestBootstrapWithLogProvider(t *testing.T) {
	cfg := testConfig()
	cfg.GinMode = "test"

	srv, err := Bootstrap(cfg)
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	w := do(srv, http.MethodPost, "/enviar-consulta", `{"email":"a@b.com","message":"hola"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Consulta enviada correctamente"}`, w.Body.String())
}

func TestBootstrapRejectsUnknownProvider(t *testing.T) {
	cfg := testConfig()
	cfg.Mail.Provider = "carrier-pigeon"

	_, err := Bootstrap(cfg)
	assert.Error(t, err)
}

func TestBootstrapMetricsIncludeRuntime(t *testing.T) {
	cfg := testConfig()
	cfg.Stage = constants.ProdEnvironment

	srv, err := Bootstrap(cfg)
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	body := do(srv, http.MethodGet, "/metrics", "", nil).Body.String()
	assert.Contains(t, body, "go_goroutines")
}
