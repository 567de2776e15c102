package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/feeddigital/cursos-api/internal/services"
	"github.com/feeddigital/cursos-api/internal/types/requests"
)

// MockSubmissionService is a mock implementation of SubmissionService
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) HandleEnrollment(ctx context.Context, req requests.EnrollmentRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockSubmissionService) HandleInquiry(ctx context.Context, req requests.InquiryRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockSubmissionService) HandleIntroClassSignup(ctx context.Context, req requests.IntroClassRequest) error {
	return m.Called(ctx, req).Error(0)
}

func setupRouter(svc SubmissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSubmissionHandler(svc)
	router := gin.New()
	router.POST("/enviar-inscripcion", h.SendEnrollment)
	router.POST("/enviar-consulta", h.SendInquiry)
	router.POST("/clase-intro", h.SignupIntroClass)
	return router
}

func post(router *gin.Engine, path, body string) (int, map[string]interface{}) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var out map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func TestSendEnrollment(t *testing.T) {
	valid := requests.EnrollmentRequest{Name: "Ana", Surname: "Pérez", Email: "ana@x.com", PaymentPlan: "mensual"}
	validBody := `{"nombre":"Ana","apellido":"Pérez","email":"ana@x.com","planPago":"mensual"}`

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *MockSubmissionService)
		wantStatus int
		wantBody   map[string]interface{}
	}{
		{
			name: "success",
			body: validBody,
			setupMock: func(m *MockSubmissionService) {
				m.On("HandleEnrollment", mock.Anything, valid).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]interface{}{"success": true, "message": "Inscripción enviada correctamente"},
		},
		{
			name: "missing fields",
			body: `{"nombre":"Ana"}`,
			setupMock: func(m *MockSubmissionService) {
				m.On("HandleEnrollment", mock.Anything, requests.EnrollmentRequest{Name: "Ana"}).
					Return(&services.MissingFieldError{Form: "enrollment", Fields: []string{"apellido", "email", "planPago"}})
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]interface{}{"error": "Faltan datos obligatorios"},
		},
		{
			name:       "malformed json",
			body:       `{"nombre":`,
			setupMock:  func(m *MockSubmissionService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]interface{}{"error": "Faltan datos obligatorios"},
		},
		{
			name:       "non string field",
			body:       `{"nombre":42,"apellido":"P","email":"a@x.com","planPago":"m"}`,
			setupMock:  func(m *MockSubmissionService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]interface{}{"error": "Faltan datos obligatorios"},
		},
		{
			name: "transport failure",
			body: validBody,
			setupMock: func(m *MockSubmissionService) {
				m.On("HandleEnrollment", mock.Anything, valid).
					Return(&services.DispatchError{Kind: "enrollment", Recipient: "admin@x.com", Err: errors.New("relay down")})
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]interface{}{"success": false, "message": "Error enviando email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockSubmissionService)
			tt.setupMock(svc)

			status, body := post(setupRouter(svc), "/enviar-inscripcion", tt.body)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
			svc.AssertExpectations(t)
		})
	}
}

func TestSendInquiry(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockSubmissionService)
		svc.On("HandleInquiry", mock.Anything, requests.InquiryRequest{Email: "b@x.com", Message: "hola"}).Return(nil)

		status, body := post(setupRouter(svc), "/enviar-consulta", `{"email":"b@x.com","message":"hola"}`)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Consulta enviada correctamente", body["message"])
		assert.Equal(t, true, body["success"])
		svc.AssertExpectations(t)
	})

	t.Run("missing email", func(t *testing.T) {
		svc := new(MockSubmissionService)
		svc.On("HandleInquiry", mock.Anything, mock.Anything).
			Return(&services.MissingFieldError{Form: "inquiry", Fields: []string{"email"}})

		status, body := post(setupRouter(svc), "/enviar-consulta", `{"message":"hola"}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, map[string]interface{}{"error": "Falta el email"}, body)
	})

	t.Run("empty body", func(t *testing.T) {
		svc := new(MockSubmissionService)

		status, body := post(setupRouter(svc), "/enviar-consulta", ``)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Falta el email", body["error"])
		svc.AssertNotCalled(t, "HandleInquiry", mock.Anything, mock.Anything)
	})

	t.Run("transport failure", func(t *testing.T) {
		svc := new(MockSubmissionService)
		svc.On("HandleInquiry", mock.Anything, mock.Anything).
			Return(&services.DispatchError{Kind: "inquiry", Err: errors.New("timeout")})

		status, body := post(setupRouter(svc), "/enviar-consulta", `{"email":"b@x.com"}`)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, map[string]interface{}{"success": false, "message": "Error enviando email"}, body)
	})
}

func TestSignupIntroClass(t *testing.T) {
	validBody := `{"nombre":"Luis","apellido":"Gómez","email":"luis@x.com","whatsapp":"+54 11 5555"}`
	valid := requests.IntroClassRequest{Name: "Luis", Surname: "Gómez", Email: "luis@x.com", WhatsApp: "+54 11 5555"}

	t.Run("success", func(t *testing.T) {
		svc := new(MockSubmissionService)
		svc.On("HandleIntroClassSignup", mock.Anything, valid).Return(nil)

		status, body := post(setupRouter(svc), "/clase-intro", validBody)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Correo de bienvenida enviado correctamente", body["message"])
	})

	t.Run("partial failure is a server error", func(t *testing.T) {
		svc := new(MockSubmissionService)
		svc.On("HandleIntroClassSignup", mock.Anything, valid).
			Return(&services.DispatchError{Kind: "intro_welcome", Recipient: "luis@x.com", Err: errors.New("rejected")})

		status, body := post(setupRouter(svc), "/clase-intro", validBody)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, map[string]interface{}{"success": false, "message": "Error enviando correos"}, body)
	})

	t.Run("unexpected error is a server error", func(t *testing.T) {
		svc := new(MockSubmissionService)
		svc.On("HandleIntroClassSignup", mock.Anything, valid).Return(errors.New("template failure"))

		status, _ := post(setupRouter(svc), "/clase-intro", validBody)

		require.Equal(t, http.StatusInternalServerError, status)
	})
}
