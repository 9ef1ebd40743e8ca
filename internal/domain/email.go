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

// WelcomeEmailData holds data for the subscriber welcome email.
type WelcomeEmailData struct {
	Email string
}

// NewsletterEmailData holds data for a newsletter issue.
type NewsletterEmailData struct {
	Subject string
	Body    string
	Email   string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendSubscriberWelcome(ctx context.Context, data *WelcomeEmailData) error
}

// NewsletterService broadcasts a newsletter issue to every active subscriber.
type NewsletterService interface {
	// Broadcast renders and sends the issue to each active subscriber,
	// returning the number of emails sent. A per-recipient send failure is
	// logged and skipped; it does not abort the broadcast.
	Broadcast(ctx context.Context, subject, body string) (int, error)
}
