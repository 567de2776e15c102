package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feeddigital/cursos-api/internal/constants"
	"github.com/feeddigital/cursos-api/internal/logger"
	"github.com/feeddigital/cursos-api/internal/services"
	"github.com/feeddigital/cursos-api/internal/types/responses"
)

// routeMessages holds the fixed user-facing texts of one form route.
type routeMessages struct {
	success    string
	badRequest string
	failure    string
}

// sendBadRequest answers with the route's client error payload, or 413 when
// the body limit stopped the read.
func sendBadRequest(c *gin.Context, msgs routeMessages, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, responses.ErrorResponse{Error: constants.ErrBodyTooLarge})
		return
	}

	logger.FromContext(c.Request.Context(), logger.Log).Info("Rejected submission",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: msgs.badRequest})
}

// sendSubmissionResult maps a service outcome to the route's response.
func sendSubmissionResult(c *gin.Context, msgs routeMessages, err error) {
	if err == nil {
		c.JSON(http.StatusOK, responses.SubmissionResponse{Success: true, Message: msgs.success})
		return
	}

	var missing *services.MissingFieldError
	if errors.As(err, &missing) {
		sendBadRequest(c, msgs, err)
		return
	}

	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	}
	var dispatchErr *services.DispatchError
	if errors.As(err, &dispatchErr) {
		fields = append(fields, zap.String("message_kind", dispatchErr.Kind))
	}
	logger.FromContext(c.Request.Context(), logger.Log).Error(msgs.failure, fields...)
	_ = c.Error(err)

	c.JSON(http.StatusInternalServerError, responses.SubmissionResponse{Success: false, Message: msgs.failure})
}
