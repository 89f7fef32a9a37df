package quote

import "strings"

// Payload is the template_params object of both relay sends.
type Payload struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	FromPhone string `json:"from_phone"`
	Services  string `json:"services"`
	ToEmail   string `json:"to_email"`
}

// BuildPayload packages a draft for delivery to toEmail.
func BuildPayload(d LeadDraft, toEmail string) Payload {
	return Payload{
		FromName:  strings.TrimSpace(d.Name),
		FromEmail: strings.TrimSpace(d.Email),
		FromPhone: strings.TrimSpace(d.Phone),
		Services:  JoinServices(d.Services),
		ToEmail:   strings.TrimSpace(toEmail),
	}
}

// JoinServices renders selected services the way the email templates expect.
func JoinServices(services []string) string {
	return strings.Join(services, ", ")
}
