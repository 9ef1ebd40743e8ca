package domain

import (
	"context"
	"time"
)

// Subscriber status values as persisted. "resubscribed" is never stored;
// it is only an outcome reported to the caller.
const (
	SubscriberStatusActive       = "active"
	SubscriberStatusUnsubscribed = "unsubscribed"
)

// SubscribeOutcome is the result reported by Subscribe.
type SubscribeOutcome string

const (
	OutcomeSubscribed        SubscribeOutcome = "subscribed"
	OutcomeResubscribed      SubscribeOutcome = "resubscribed"
	OutcomeAlreadySubscribed SubscribeOutcome = "already_subscribed"
)

// UnsubscribeOutcome is the result reported by Unsubscribe.
type UnsubscribeOutcome string

const (
	OutcomeUnsubscribed UnsubscribeOutcome = "unsubscribed"
	OutcomeNotFound     UnsubscribeOutcome = "not_found"
)

// Subscriber is a newsletter subscriber keyed by email. At most one record
// exists per email; records are never physically deleted.
// swagger:model Subscriber
type Subscriber struct {
	Email            string    `json:"email"`
	Status           string    `json:"status"`
	SubscriptionDate time.Time `json:"subscription_date"`
}

// SubscriberRepository defines storage operations for subscribers.
type SubscriberRepository interface {
	// Create inserts a new subscriber. Returns ErrDuplicateEmail when the
	// email already exists (unique constraint).
	Create(ctx context.Context, sub *Subscriber) error
	// GetByEmail returns the subscriber for the email, or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*Subscriber, error)
	// UpdateStatus sets the status for the email. Returns ErrNotFound when
	// no record exists. SubscriptionDate is never touched.
	UpdateStatus(ctx context.Context, email, status string) error
	// ListActive returns every subscriber with status "active".
	ListActive(ctx context.Context) ([]*Subscriber, error)
}

// SubscriptionService drives the subscription state machine:
// absent --subscribe--> active; active --unsubscribe--> unsubscribed;
// unsubscribed --subscribe--> active (resubscribed). All transitions are
// idempotent from the caller's point of view.
type SubscriptionService interface {
	Subscribe(ctx context.Context, email string) (SubscribeOutcome, error)
	Unsubscribe(ctx context.Context, email string) (UnsubscribeOutcome, error)
	ListActiveSubscribers(ctx context.Context) ([]*Subscriber, error)
}
