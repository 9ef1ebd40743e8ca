package services

import (
	"context"
	"fmt"
	"log"

	"communityhub/internal/domain"
)

type newsletterService struct {
	subscriberRepo domain.SubscriberRepository
	mailer         domain.Mailer
	renderer       domain.EmailTemplateRenderer
}

// NewNewsletterService creates a NewsletterService that sends issues to every
// active subscriber through the given mailer.
func NewNewsletterService(subscriberRepo domain.SubscriberRepository, mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.NewsletterService {
	return &newsletterService{
		subscriberRepo: subscriberRepo,
		mailer:         mailer,
		renderer:       renderer,
	}
}

func (s *newsletterService) Broadcast(ctx context.Context, subject, body string) (int, error) {
	if subject == "" {
		return 0, fmt.Errorf("%w: subject is required", domain.ErrInvalidInput)
	}
	if body == "" {
		return 0, fmt.Errorf("%w: body is required", domain.ErrInvalidInput)
	}

	subs, err := s.subscriberRepo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active subscribers: %w", err)
	}

	sent := 0
	for _, sub := range subs {
		data := &domain.NewsletterEmailData{
			Subject: subject,
			Body:    body,
			Email:   sub.Email,
		}
		renderedSubject, htmlBody, textBody, err := s.renderer.Render("newsletter", data)
		if err != nil {
			return sent, fmt.Errorf("render newsletter: %w", err)
		}
		if err := s.mailer.Send(sub.Email, renderedSubject, htmlBody, textBody); err != nil {
			// Skip the recipient rather than aborting the whole issue.
			log.Printf("[NEWSLETTER] send to %s failed: %v", sub.Email, err)
			continue
		}
		sent++
	}
	return sent, nil
}
