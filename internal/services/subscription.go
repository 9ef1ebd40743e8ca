package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"communityhub/internal/domain"
)

// Stored emails are case-sensitive; no normalization is applied before
// lookup or insert.
var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type subscriptionService struct {
	repo         domain.SubscriberRepository
	emailService domain.EmailService
}

// NewSubscriptionService creates a SubscriptionService. emailService may be
// nil; when set, a welcome email is sent (best effort) on first subscribe.
func NewSubscriptionService(repo domain.SubscriberRepository, emailService domain.EmailService) domain.SubscriptionService {
	return &subscriptionService{
		repo:         repo,
		emailService: emailService,
	}
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if !emailRegexp.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	return nil
}

func (s *subscriptionService) Subscribe(ctx context.Context, email string) (domain.SubscribeOutcome, error) {
	if err := validateEmail(email); err != nil {
		return "", err
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		sub := &domain.Subscriber{
			Email:            email,
			Status:           domain.SubscriberStatusActive,
			SubscriptionDate: time.Now().UTC(),
		}
		if err := s.repo.Create(ctx, sub); err != nil {
			// A concurrent subscribe for the same email can win the insert
			// race; the unique constraint reports it, and the record exists.
			if errors.Is(err, domain.ErrDuplicateEmail) {
				return domain.OutcomeAlreadySubscribed, nil
			}
			return "", fmt.Errorf("create subscriber: %w", err)
		}
		s.sendWelcome(ctx, email)
		return domain.OutcomeSubscribed, nil
	}
	if err != nil {
		return "", fmt.Errorf("get subscriber: %w", err)
	}

	if existing.Status == domain.SubscriberStatusUnsubscribed {
		if err := s.repo.UpdateStatus(ctx, email, domain.SubscriberStatusActive); err != nil {
			return "", fmt.Errorf("reactivate subscriber: %w", err)
		}
		return domain.OutcomeResubscribed, nil
	}
	return domain.OutcomeAlreadySubscribed, nil
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, email string) (domain.UnsubscribeOutcome, error) {
	if err := validateEmail(email); err != nil {
		return "", err
	}

	// Single unconditional write keeps unsubscribe idempotent: the stored
	// status ends up "unsubscribed" no matter what it was before.
	err := s.repo.UpdateStatus(ctx, email, domain.SubscriberStatusUnsubscribed)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.OutcomeNotFound, nil
	}
	if err != nil {
		return "", fmt.Errorf("unsubscribe: %w", err)
	}
	return domain.OutcomeUnsubscribed, nil
}

func (s *subscriptionService) ListActiveSubscribers(ctx context.Context) ([]*domain.Subscriber, error) {
	subs, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active subscribers: %w", err)
	}
	if subs == nil {
		subs = []*domain.Subscriber{}
	}
	return subs, nil
}

// sendWelcome sends the welcome email without failing the subscribe call.
func (s *subscriptionService) sendWelcome(ctx context.Context, email string) {
	if s.emailService == nil {
		return
	}
	data := &domain.WelcomeEmailData{Email: email}
	if err := s.emailService.SendSubscriberWelcome(ctx, data); err != nil {
		log.Printf("[SUBSCRIPTION] welcome email to %s failed: %v", email, err)
	}
}
