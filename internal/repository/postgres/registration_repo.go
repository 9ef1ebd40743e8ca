package postgres

import (
	"context"
	"database/sql"
	"errors"

	"communityhub/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO event_registrations (id, event_id, user_id, status, attendee_count, event_title, notes, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		reg.ID, reg.EventID, reg.UserID, reg.Status, reg.AttendeeCount, reg.EventTitle, reg.Notes, reg.RegisteredAt)
	return err
}

func (r *registrationRepository) GetFirstByEventID(ctx context.Context, eventID string) (*domain.Registration, error) {
	// Stable order: oldest registration first, id as a tiebreaker.
	query := `
		SELECT id, event_id, user_id, status, attendee_count, event_title, notes, registered_at
		FROM event_registrations
		WHERE event_id = $1
		ORDER BY registered_at ASC, id ASC
		LIMIT 1
	`
	reg := &domain.Registration{}
	err := r.DB.QueryRowContext(ctx, query, eventID).
		Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Status, &reg.AttendeeCount, &reg.EventTitle, &reg.Notes, &reg.RegisteredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `
		SELECT id, event_id, user_id, status, attendee_count, event_title, notes, registered_at
		FROM event_registrations
		WHERE event_id = $1
		ORDER BY registered_at ASC, id ASC
	`
	return r.list(ctx, query, eventID)
}

func (r *registrationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := `
		SELECT id, event_id, user_id, status, attendee_count, event_title, notes, registered_at
		FROM event_registrations
		WHERE user_id = $1
		ORDER BY registered_at ASC, id ASC
	`
	return r.list(ctx, query, userID)
}

func (r *registrationRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := `
		SELECT id, event_id, user_id, status, attendee_count, event_title, notes, registered_at
		FROM event_registrations
		WHERE event_id = $1 AND user_id = $2
		ORDER BY registered_at ASC, id ASC
		LIMIT 1
	`
	reg := &domain.Registration{}
	err := r.DB.QueryRowContext(ctx, query, eventID, userID).
		Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Status, &reg.AttendeeCount, &reg.EventTitle, &reg.Notes, &reg.RegisteredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) list(ctx context.Context, query string, arg any) ([]*domain.Registration, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []*domain.Registration
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Status, &reg.AttendeeCount, &reg.EventTitle, &reg.Notes, &reg.RegisteredAt); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	return regs, nil
}
