package templates

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/feeddigital/cursos-api/internal/config"
	"github.com/feeddigital/cursos-api/internal/constants"
	"github.com/feeddigital/cursos-api/internal/mail"
	"github.com/feeddigital/cursos-api/internal/types/requests"
)

// Composer renders submissions into outbound messages.
type Composer struct {
	from       mail.Address
	adminEmail string
	links      config.LinksConfig
	html       *htmltemplate.Template
	text       *texttemplate.Template
}

type submissionData struct {
	Name        string
	Surname     string
	Email       string
	WhatsApp    string
	PaymentPlan string
	Message     string
	VideoURL    string
	EnrollURL   string
	SenderName  string
}

// NewComposer parses the message templates once; the result is safe for concurrent use.
func NewComposer(from mail.Address, adminEmail string, links config.LinksConfig) (*Composer, error) {
	html, err := htmltemplate.New("messages").Parse(htmlTemplates)
	if err != nil {
		return nil, err
	}
	text, err := texttemplate.New("messages").Parse(textTemplates)
	if err != nil {
		return nil, err
	}
	return &Composer{
		from:       from,
		adminEmail: adminEmail,
		links:      links,
		html:       html,
		text:       text,
	}, nil
}

// Enrollment builds the administrative notification for a course enrollment.
func (c *Composer) Enrollment(req requests.EnrollmentRequest) (*mail.Message, error) {
	return c.compose(constants.MessageEnrollment, c.adminEmail, req.Email, SubjectEnrollment, submissionData{
		Name:        req.Name,
		Surname:     req.Surname,
		Email:       req.Email,
		WhatsApp:    orDefault(req.WhatsApp, WhatsAppFallback),
		PaymentPlan: req.PaymentPlan,
	})
}

// Inquiry builds the administrative notification for a course inquiry. A
// blank message is replaced by the fixed fallback sentence.
func (c *Composer) Inquiry(req requests.InquiryRequest) (*mail.Message, error) {
	message := req.Message
	if strings.TrimSpace(message) == "" {
		message = InquiryFallback
	}
	return c.compose(constants.MessageInquiry, c.adminEmail, req.Email, SubjectInquiry, submissionData{
		Email:   req.Email,
		Message: message,
	})
}

// IntroClassAdmin builds the administrative notification for an intro class signup.
func (c *Composer) IntroClassAdmin(req requests.IntroClassRequest) (*mail.Message, error) {
	return c.compose(constants.MessageIntroAdmin, c.adminEmail, req.Email, SubjectIntroAdmin, submissionData{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		WhatsApp: orDefault(req.WhatsApp, WhatsAppFallback),
	})
}

// IntroClassWelcome builds the welcome message addressed to the submitter.
func (c *Composer) IntroClassWelcome(req requests.IntroClassRequest) (*mail.Message, error) {
	return c.compose(constants.MessageIntroWelcome, req.Email, "", SubjectIntroWelcome, submissionData{
		Name:       req.Name,
		Surname:    req.Surname,
		Email:      req.Email,
		VideoURL:   c.links.IntroVideoURL,
		EnrollURL:  c.links.EnrollURL,
		SenderName: c.from.Name,
	})
}

func (c *Composer) compose(kind, to, replyTo, subject string, data submissionData) (*mail.Message, error) {
	var html bytes.Buffer
	if err := c.html.ExecuteTemplate(&html, kind, data); err != nil {
		return nil, err
	}
	var text bytes.Buffer
	if err := c.text.ExecuteTemplate(&text, kind, data); err != nil {
		return nil, err
	}

	return &mail.Message{
		From:    c.from,
		To:      to,
		ReplyTo: replyTo,
		Subject: subject,
		HTML:    strings.TrimSpace(html.String()),
		Text:    text.String(),
		Tags:    map[string]string{"category": kind},
	}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
