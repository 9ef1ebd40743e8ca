package services

import (
	"context"
	"errors"
	"fmt"

	"communityhub/internal/domain"
	"communityhub/internal/meta"
)

type registrationService struct {
	repo          domain.RegistrationRepository
	enforceUnique bool
}

// NewRegistrationService creates a RegistrationService. When enforceUnique is
// true, a second registration for the same (event, user) pair is rejected
// with ErrAlreadyRegistered; otherwise duplicates are permitted.
func NewRegistrationService(repo domain.RegistrationRepository, enforceUnique bool) domain.RegistrationService {
	return &registrationService{
		repo:          repo,
		enforceUnique: enforceUnique,
	}
}

func validateRegisterInput(input domain.RegisterInput) error {
	switch {
	case input.EventID == "":
		return fmt.Errorf("%w: event_id is required", domain.ErrInvalidInput)
	case input.UserID == "":
		return fmt.Errorf("%w: user_id is required", domain.ErrInvalidInput)
	case input.Status == "":
		return fmt.Errorf("%w: status is required", domain.ErrInvalidInput)
	case input.EventTitle == "":
		return fmt.Errorf("%w: event_title is required", domain.ErrInvalidInput)
	case input.RegisteredAt == "":
		return fmt.Errorf("%w: registered_at is required", domain.ErrInvalidInput)
	case input.AttendeeCount < 0:
		return fmt.Errorf("%w: attendee_count must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

func (s *registrationService) Register(ctx context.Context, input domain.RegisterInput) (*domain.Registration, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	if s.enforceUnique {
		if _, err := s.repo.GetByEventAndUser(ctx, input.EventID, input.UserID); err == nil {
			return nil, domain.ErrAlreadyRegistered
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get registration: %w", err)
		}
	}

	reg := &domain.Registration{
		ID:            meta.NewID(),
		EventID:       input.EventID,
		UserID:        input.UserID,
		Status:        input.Status,
		AttendeeCount: input.AttendeeCount,
		EventTitle:    input.EventTitle,
		Notes:         input.Notes,
		RegisteredAt:  input.RegisteredAt,
	}
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return reg, nil
}

func (s *registrationService) GetEvent(ctx context.Context, eventID string) (*domain.Registration, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event_id is required", domain.ErrInvalidInput)
	}
	reg, err := s.repo.GetFirstByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get first registration: %w", err)
	}
	return reg, nil
}

func (s *registrationService) ListRegistrationsForEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event_id is required", domain.ErrInvalidInput)
	}
	regs, err := s.repo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations for event: %w", err)
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	return regs, nil
}

func (s *registrationService) ListEventsByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrInvalidInput)
	}
	regs, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by user: %w", err)
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	return regs, nil
}
