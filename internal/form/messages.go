package form

import "fmt"

// Messages maps "field.rule" (or just "field") to the text shown when that
// rule fails.
type Messages map[string]string

// For resolves the message for a failed rule, falling back to a generic one.
func (m Messages) For(field, tag, param string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := m[field]; ok {
		return msg
	}
	switch tag {
	case "required":
		return "Campo requerido"
	case "email":
		return "Email no válido"
	case "min":
		return fmt.Sprintf("Debe tener al menos %s caracteres", param)
	case "max":
		return fmt.Sprintf("No puede exceder %s caracteres", param)
	case "moment":
		return "Fecha inválida"
	}
	return "Valor no válido"
}

var clientMessages = Messages{
	"documentType.required":   "Tipo de documento es requerido",
	"documentType.doctype":    "Tipo de documento no válido",
	"documentNumber.required": "Número de documento es requerido",
	"documentNumber.digits":   "Solo se permiten números",
	"documentNumber.min":      "Debe tener al menos 5 dígitos",
	"documentNumber.max":      "No puede exceder 20 dígitos",
	"fullName.required":       "Nombre completo es requerido",
	"fullName.min":            "El nombre debe tener al menos 5 caracteres",
	"fullName.max":            "El nombre no puede exceder 100 caracteres",
	"birthDate.required":      "Fecha de nacimiento es requerida",
	"birthDate.notfuture":     "La fecha no puede ser en el futuro",
	"email.required":          "Email es requerido",
	"email.email":             "Ingrese un email válido",
	"email.max":               "El email no puede exceder 100 caracteres",
	"phone.required":          "Teléfono es requerido",
	"phone.digits":            "Solo se permiten números",
	"phone.min":               "El teléfono debe tener al menos 7 dígitos",
	"phone.max":               "El teléfono no puede exceder 15 dígitos",
}

var touristSiteMessages = Messages{
	"title.required":       "El título es requerido",
	"title.max":            "El título no puede exceder 100 caracteres",
	"description.required": "La descripción es requerida",
	"description.max":      "La descripción no puede exceder 500 caracteres",
	"type.required":        "El tipo de sitio es requerido",
	"type.sitetype":        "Tipo de sitio no válido",
	"imageUrl.required":    "La URL de la imagen es requerida",
	"imageUrl.url":         "Debe ser una URL válida",
	"location.required":    "La ubicación es requerida",
	"location.max":         "La ubicación no puede exceder 200 caracteres",
	"schedule.required":    "El horario es requerido",
	"schedule.max":         "El horario no puede exceder 50 caracteres",
	"price.min":            "El precio debe ser mayor o igual a 0",
	"price.max":            "El precio no puede exceder 1,000,000",
	"contact.required":     "El contacto es requerido",
	"contact.max":          "El contacto no puede exceder 50 caracteres",
}

var reservationMessages = Messages{
	"fecha.required":              "La fecha es requerida",
	"fecha.notpast":               "La fecha no puede ser en el pasado",
	"hora.required":               "La hora es requerida",
	"numeroPersonas.min":          "Debe haber al menos 1 persona",
	"numeroPersonas.max":          "No puede exceder 50 personas",
	"observaciones.max":           "Las observaciones no pueden exceder 500 caracteres",
	"tipoReserva.required":        "El tipo de reserva es requerido",
	"tipoReserva.reservationtype": "Tipo de reserva no válido",
	"cliente.id":                  "ID inválido",
	"sitioTuristico.id":           "ID inválido",
}

var invoiceMessages = Messages{
	"descripcion.required":     "La descripción es requerida",
	"descripcion.max":          "Máximo 500 caracteres",
	"metodoPago.required":      "Seleccione un método de pago",
	"metodoPago.paymentmethod": "Método no válido",
	"estadoPago.required":      "Seleccione un estado",
	"estadoPago.paymentstatus": "Estado no válido",
	"reservacionId.min":        "Reservación inválida",
	"montoTotal.min":           "No puede ser negativo",
}

var loginMessages = Messages{
	"email.required":    "El correo electrónico es requerido",
	"email.email":       "Por favor ingresa un correo electrónico válido",
	"password.required": "La contraseña es requerida",
	"password.min":      "La contraseña debe tener al menos 6 caracteres",
}

var signupMessages = Messages{
	"birthDate.notfuture":      "La fecha no puede ser futura",
	"email.email":              "Email no válido",
	"password.min":             "La contraseña debe tener al menos 6 caracteres",
	"password.hasupper":        "Debe contener al menos una letra mayúscula",
	"password.hasdigit":        "Debe contener al menos un número",
	"password.hasspecial":      "Debe contener al menos un carácter especial (@$!%*?&)",
	"confirmPassword.required": "Confirme su contraseña",
	"confirmPassword.eqfield":  "Las contraseñas no coinciden",
}

var forgotPasswordMessages = Messages{
	"email.required": "El correo electrónico es requerido",
	"email.email":    "Por favor ingresa un correo electrónico válido",
}

var verifyEmailMessages = Messages{
	"email.required": "No se encontró el correo electrónico para verificar",
	"email.email":    "No se encontró el correo electrónico para verificar",
	"code.required":  "Por favor ingrese el código de verificación",
}
