package requests

// EnrollmentRequest is the course enrollment form posted to /enviar-inscripcion.
type EnrollmentRequest struct {
	Name        string `json:"nombre" validate:"required"`
	Surname     string `json:"apellido" validate:"required"`
	Email       string `json:"email" validate:"required"`
	WhatsApp    string `json:"whatsapp"`
	PaymentPlan string `json:"planPago" validate:"required"`
}

// InquiryRequest is the course inquiry form posted to /enviar-consulta.
type InquiryRequest struct {
	Email   string `json:"email" validate:"required"`
	Message string `json:"message"`
}

// IntroClassRequest is the intro class signup form posted to /clase-intro.
type IntroClassRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Surname  string `json:"apellido" validate:"required"`
	Email    string `json:"email" validate:"required"`
	WhatsApp string `json:"whatsapp"`
}
