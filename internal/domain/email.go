package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WelcomeMessageEmailData holds data for the welcome email sent on registration.
type WelcomeMessageEmailData struct {
	Email string
}

// MeetingJoinedEmailData holds data for the notification sent to a meeting
// owner when someone joins.
type MeetingJoinedEmailData struct {
	Email            string
	MeetingTitle     string
	ParticipantEmail string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendWelcomeMessage(ctx context.Context, data *WelcomeMessageEmailData) error
	SendMeetingJoined(ctx context.Context, data *MeetingJoinedEmailData) error
}
