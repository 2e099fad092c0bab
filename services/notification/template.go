package notification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"text/template"

	"doctorsportal/models"
)

const subjectTemplate = `Your appointment for {{.TreatmentName}} is confirmed`

const textTemplate = `Hello {{.PatientName}},

Your appointment for {{.TreatmentName}} on {{.Date}} at {{.Slot}} is confirmed.
Please be on time.

Confirmation sent to {{.PatientEmail}}.
`

const htmlTemplate = `<div>
<p>Hello {{.PatientName}},</p>
<h3>Your appointment for {{.TreatmentName}} is confirmed</h3>
<p>Looking forward to seeing you on {{.Date}} at {{.Slot}}.</p>
<p>Confirmation sent to {{.PatientEmail}}.</p>
</div>`

var (
	subjectTmpl = template.Must(template.New("subject").Parse(subjectTemplate))
	textTmpl    = template.Must(template.New("text").Parse(textTemplate))
	htmlTmpl    = htmltemplate.Must(htmltemplate.New("html").Parse(htmlTemplate))
)

// BookingEmail is a rendered confirmation message.
type BookingEmail struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

// RenderBookingEmail fills the confirmation templates from a booking.
func RenderBookingEmail(booking models.Booking) (*BookingEmail, error) {
	var subject, text, html bytes.Buffer
	if err := subjectTmpl.Execute(&subject, booking); err != nil {
		return nil, fmt.Errorf("render subject: %w", err)
	}
	if err := textTmpl.Execute(&text, booking); err != nil {
		return nil, fmt.Errorf("render text body: %w", err)
	}
	if err := htmlTmpl.Execute(&html, booking); err != nil {
		return nil, fmt.Errorf("render html body: %w", err)
	}
	return &BookingEmail{
		To:      booking.PatientEmail,
		ToName:  booking.PatientName,
		Subject: subject.String(),
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
