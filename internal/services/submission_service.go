package services

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/feeddigital/cursos-api/internal/constants"
	"github.com/feeddigital/cursos-api/internal/logger"
	"github.com/feeddigital/cursos-api/internal/mail"
	"github.com/feeddigital/cursos-api/internal/templates"
	"github.com/feeddigital/cursos-api/internal/types/requests"
)

// Dispatch results reported to the DispatchRecorder
const (
	ResultSent   = "sent"
	ResultFailed = "failed"
)

// DispatchRecorder receives dispatch outcomes and validation rejections.
type DispatchRecorder interface {
	RecordDispatch(kind, result string)
	RecordRejection(form string)
}

type nopRecorder struct{}

func (nopRecorder) RecordDispatch(string, string) {}
func (nopRecorder) RecordRejection(string)        {}

// SubmissionService validates form submissions, renders them and hands the
// resulting messages to the mail transport.
type SubmissionService struct {
	sender   mail.Sender
	composer *templates.Composer
	recorder DispatchRecorder
	validate *validator.Validate
	logger   *zap.Logger
}

// NewSubmissionService creates a service bound to one long-lived sender.
func NewSubmissionService(sender mail.Sender, composer *templates.Composer, recorder DispatchRecorder, log *zap.Logger) *SubmissionService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if log == nil {
		log = logger.Log
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return &SubmissionService{
		sender:   sender,
		composer: composer,
		recorder: recorder,
		validate: validate,
		logger:   log,
	}
}

// HandleEnrollment sends the administrative notification for a course enrollment.
func (s *SubmissionService) HandleEnrollment(ctx context.Context, req requests.EnrollmentRequest) error {
	if err := s.check(constants.FormEnrollment, req); err != nil {
		return err
	}

	msg, err := s.composer.Enrollment(req)
	if err != nil {
		return errors.Wrap(err, "failed to render enrollment message")
	}
	return s.dispatch(ctx, constants.MessageEnrollment, msg)
}

// HandleInquiry sends the administrative notification for a course inquiry.
func (s *SubmissionService) HandleInquiry(ctx context.Context, req requests.InquiryRequest) error {
	if err := s.check(constants.FormInquiry, req); err != nil {
		return err
	}

	msg, err := s.composer.Inquiry(req)
	if err != nil {
		return errors.Wrap(err, "failed to render inquiry message")
	}
	return s.dispatch(ctx, constants.MessageInquiry, msg)
}

// HandleIntroClassSignup notifies the administrators and then welcomes the
// submitter. The welcome message is only attempted after the notification was
// accepted; a failure of either is returned as a DispatchError.
func (s *SubmissionService) HandleIntroClassSignup(ctx context.Context, req requests.IntroClassRequest) error {
	if err := s.check(constants.FormIntroClass, req); err != nil {
		return err
	}

	admin, err := s.composer.IntroClassAdmin(req)
	if err != nil {
		return errors.Wrap(err, "failed to render intro class notification")
	}
	welcome, err := s.composer.IntroClassWelcome(req)
	if err != nil {
		return errors.Wrap(err, "failed to render intro class welcome")
	}

	if err := s.dispatch(ctx, constants.MessageIntroAdmin, admin); err != nil {
		return err
	}
	if err := s.dispatch(ctx, constants.MessageIntroWelcome, welcome); err != nil {
		logger.FromContext(ctx, s.logger).Warn("Intro class notification sent but welcome message failed",
			zap.String("admin_recipient", admin.To),
			zap.String("welcome_recipient", welcome.To),
		)
		return err
	}
	return nil
}

// check validates req and converts validator output into a MissingFieldError.
func (s *SubmissionService) check(form string, req interface{}) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	missing := &MissingFieldError{Form: form}
	for _, fe := range validationErrors {
		missing.Fields = append(missing.Fields, fe.Field())
	}
	s.recorder.RecordRejection(form)
	return missing
}

func (s *SubmissionService) dispatch(ctx context.Context, kind string, msg *mail.Message) error {
	log := logger.FromContext(ctx, s.logger).With(
		zap.String("message_kind", kind),
		zap.String("to", msg.To),
	)

	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		withRef := *msg
		withRef.Headers = map[string]string{"X-Entity-Ref-ID": id}
		for k, v := range msg.Headers {
			withRef.Headers[k] = v
		}
		msg = &withRef
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.recorder.RecordDispatch(kind, ResultFailed)
		log.Error("Error enviando email", zap.Error(err))
		return &DispatchError{Kind: kind, Recipient: msg.To, Err: err}
	}

	s.recorder.RecordDispatch(kind, ResultSent)
	log.Info("Message dispatched", zap.String("subject", msg.Subject))
	return nil
}
