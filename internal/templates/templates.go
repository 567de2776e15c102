package templates

// Subjects of the outbound messages
const (
	SubjectEnrollment   = "Nueva Inscripción al Curso"
	SubjectInquiry      = "Consulta de curso"
	SubjectIntroAdmin   = "Nueva inscripción a la clase introductoria"
	SubjectIntroWelcome = "¡Bienvenido/a a tu clase introductoria!"
)

// Fallback values substituted for optional fields
const (
	WhatsAppFallback = "No proporcionado"
	InquiryFallback  = "Consulta por días y horarios disponibles."
)

const htmlTemplates = `
{{define "enrollment"}}
<h2>Nueva inscripción</h2>
<p><b>Nombre:</b> {{.Name}} {{.Surname}}</p>
<p><b>Email:</b> {{.Email}}</p>
<p><b>WhatsApp:</b> {{.WhatsApp}}</p>
<p><b>Plan de pago:</b> {{.PaymentPlan}}</p>
{{end}}

{{define "inquiry"}}
<h2>Nueva consulta</h2>
<p><b>Email:</b> {{.Email}}</p>
<p><b>Mensaje:</b> {{.Message}}</p>
{{end}}

{{define "intro_admin"}}
<h2>Nueva inscripción a la clase introductoria</h2>
<p><b>Nombre:</b> {{.Name}} {{.Surname}}</p>
<p><b>Email:</b> {{.Email}}</p>
<p><b>WhatsApp:</b> {{.WhatsApp}}</p>
{{end}}

{{define "intro_welcome"}}
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .button { display: inline-block; padding: 10px 20px; background-color: #007bff; color: white; text-decoration: none; border-radius: 5px; }
        .footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <h2>¡Hola {{.Name}}!</h2>
        <p>Gracias por anotarte a nuestra clase introductoria. Ya podés verla desde el siguiente enlace:</p>
        <p><a class="button" href="{{.VideoURL}}">Ver la clase introductoria</a></p>
        <p>Si te gustó la clase y querés seguir aprendiendo, inscribite al curso completo:</p>
        <p><a class="button" href="{{.EnrollURL}}">Quiero inscribirme</a></p>
        <div class="footer">
            <p>{{.SenderName}}</p>
        </div>
    </div>
</body>
</html>
{{end}}
`

const textTemplates = `
{{define "enrollment"}}Nueva inscripción

Nombre: {{.Name}} {{.Surname}}
Email: {{.Email}}
WhatsApp: {{.WhatsApp}}
Plan de pago: {{.PaymentPlan}}
{{end}}

{{define "inquiry"}}Nueva consulta

Email: {{.Email}}
Mensaje: {{.Message}}
{{end}}

{{define "intro_admin"}}Nueva inscripción a la clase introductoria

Nombre: {{.Name}} {{.Surname}}
Email: {{.Email}}
WhatsApp: {{.WhatsApp}}
{{end}}

{{define "intro_welcome"}}¡Hola {{.Name}}!

Gracias por anotarte a nuestra clase introductoria. Ya podés verla desde el siguiente enlace:
{{.VideoURL}}

Si te gustó la clase y querés seguir aprendiendo, inscribite al curso completo:
{{.EnrollURL}}

{{.SenderName}}
{{end}}
`
