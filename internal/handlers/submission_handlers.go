package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/feeddigital/cursos-api/internal/types/requests"
)

// SubmissionService is the form pipeline the handlers delegate to.
type SubmissionService interface {
	HandleEnrollment(ctx context.Context, req requests.EnrollmentRequest) error
	HandleInquiry(ctx context.Context, req requests.InquiryRequest) error
	HandleIntroClassSignup(ctx context.Context, req requests.IntroClassRequest) error
}

var (
	enrollmentMessages = routeMessages{
		success:    "Inscripción enviada correctamente",
		badRequest: "Faltan datos obligatorios",
		failure:    "Error enviando email",
	}
	inquiryMessages = routeMessages{
		success:    "Consulta enviada correctamente",
		badRequest: "Falta el email",
		failure:    "Error enviando email",
	}
	introClassMessages = routeMessages{
		success:    "Correo de bienvenida enviado correctamente",
		badRequest: "Faltan datos obligatorios",
		failure:    "Error enviando correos",
	}
)

// SubmissionHandler serves the public form routes.
type SubmissionHandler struct {
	service SubmissionService
}

func NewSubmissionHandler(service SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// SendEnrollment godoc
// @Summary      Submit a course enrollment
// @Description  Notifies the course administrators of a new enrollment
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        enrollment  body      requests.EnrollmentRequest  true  "Enrollment form"
// @Success      200         {object}  responses.SubmissionResponse
// @Failure      400         {object}  responses.ErrorResponse
// @Failure      429         {object}  responses.ErrorResponse
// @Failure      500         {object}  responses.SubmissionResponse
// @Router       /enviar-inscripcion [post]
func (h *SubmissionHandler) SendEnrollment(c *gin.Context) {
	var req requests.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBadRequest(c, enrollmentMessages, err)
		return
	}
	sendSubmissionResult(c, enrollmentMessages, h.service.HandleEnrollment(c.Request.Context(), req))
}

// SendInquiry godoc
// @Summary      Submit a course inquiry
// @Description  Forwards a visitor question to the course administrators
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        inquiry  body      requests.InquiryRequest  true  "Inquiry form"
// @Success      200      {object}  responses.SubmissionResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      429      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.SubmissionResponse
// @Router       /enviar-consulta [post]
func (h *SubmissionHandler) SendInquiry(c *gin.Context) {
	var req requests.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBadRequest(c, inquiryMessages, err)
		return
	}
	sendSubmissionResult(c, inquiryMessages, h.service.HandleInquiry(c.Request.Context(), req))
}

// SignupIntroClass godoc
// @Summary      Sign up for the introductory class
// @Description  Notifies the administrators and sends a welcome message to the submitter
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        signup  body      requests.IntroClassRequest  true  "Intro class form"
// @Success      200     {object}  responses.SubmissionResponse
// @Failure      400     {object}  responses.ErrorResponse
// @Failure      429     {object}  responses.ErrorResponse
// @Failure      500     {object}  responses.SubmissionResponse
// @Router       /clase-intro [post]
func (h *SubmissionHandler) SignupIntroClass(c *gin.Context) {
	var req requests.IntroClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBadRequest(c, introClassMessages, err)
		return
	}
	sendSubmissionResult(c, introClassMessages, h.service.HandleIntroClassSignup(c.Request.Context(), req))
}
