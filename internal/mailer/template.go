package mailer

import (
	"fmt"
	"html/template"
	"strings"
)

var contactTmpl = template.Must(template.New("contact").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #0ea5e9;">New Contact Form Submission</h2>
  <div style="background: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Message:</strong></p>
    <p style="white-space: pre-wrap;">{{.Message}}</p>
  </div>
  <p style="color: #6b7280; font-size: 12px;">
    This email was sent from your portfolio contact form.
  </p>
</div>
`))

type contactView struct {
	Name    string
	Email   string
	Message string
}

func renderHTML(name, email, message string) (string, error) {
	var b strings.Builder
	if err := contactTmpl.Execute(&b, contactView{Name: name, Email: email, Message: message}); err != nil {
		return "", fmt.Errorf("render contact email: %w", err)
	}
	return b.String(), nil
}

func renderText(name, email, message string) string {
	return fmt.Sprintf("New Contact Form Submission\n\nName: %s\nEmail: %s\nMessage:\n%s\n\nThis email was sent from your portfolio contact form.\n",
		name, email, message)
}
