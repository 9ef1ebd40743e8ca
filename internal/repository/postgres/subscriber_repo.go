package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"communityhub/internal/domain"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type subscriberRepository struct {
	DB *sql.DB
}

func NewSubscriberRepository(db *sql.DB) domain.SubscriberRepository {
	return &subscriberRepository{
		DB: db,
	}
}

func (r *subscriberRepository) Create(ctx context.Context, sub *domain.Subscriber) error {
	query := `
		INSERT INTO subscribers (email, status, subscription_date)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, sub.Email, sub.Status, sub.SubscriptionDate)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *subscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	query := `
		SELECT email, status, subscription_date
		FROM subscribers
		WHERE email = $1
	`
	sub := &domain.Subscriber{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&sub.Email, &sub.Status, &sub.SubscriptionDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (r *subscriberRepository) UpdateStatus(ctx context.Context, email, status string) error {
	// subscription_date is deliberately left untouched; it records the
	// first subscribe only.
	query := `
		UPDATE subscribers
		SET status = $2
		WHERE email = $1
	`
	res, err := r.DB.ExecContext(ctx, query, email, status)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *subscriberRepository) ListActive(ctx context.Context) ([]*domain.Subscriber, error) {
	query := `
		SELECT email, status, subscription_date
		FROM subscribers
		WHERE status = $1
		ORDER BY subscription_date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, domain.SubscriberStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*domain.Subscriber
	for rows.Next() {
		sub := &domain.Subscriber{}
		if err := rows.Scan(&sub.Email, &sub.Status, &sub.SubscriptionDate); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []*domain.Subscriber{}
	}
	return subs, nil
}
