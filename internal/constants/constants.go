package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Service name reported in structured logs
	ServiceName = "cursos-api"
)

// Mail providers
const (
	MailProviderSMTP   = "smtp"
	MailProviderResend = "resend"
	MailProviderLog    = "log"
)

// Defaults for the deployment this service was built for
const (
	DefaultPort          = "8080"
	DefaultAdminEmail    = "feeddigitalcursos@gmail.com"
	DefaultFromName      = "Feed Digital Cursos"
	DefaultSMTPHost      = "smtp.gmail.com"
	DefaultSMTPPort      = 587
	DefaultStaticPrefix  = "/public"
	DefaultIntroVideoURL = "https://www.youtube.com/@feeddigitalcursos"
	DefaultEnrollURL     = "https://feeddigitalcursos.com/#inscripcion"
)

// Form kinds, used as metric labels and mail tags
const (
	FormEnrollment = "enrollment"
	FormInquiry    = "inquiry"
	FormIntroClass = "intro_class"
)

// Message kinds dispatched through the mail transport
const (
	MessageEnrollment   = "enrollment"
	MessageInquiry      = "inquiry"
	MessageIntroAdmin   = "intro_admin"
	MessageIntroWelcome = "intro_welcome"
)

// ErrBodyTooLarge is returned to clients whose form body exceeds the limit
const ErrBodyTooLarge = "El cuerpo de la solicitud es demasiado grande"
