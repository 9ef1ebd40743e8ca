package domain

import "context"

// Registration records a user's intent to attend an event.
// Registrations are immutable once created: there is no update or delete.
// swagger:model Registration
type Registration struct {
	ID            string `json:"id"`
	EventID       string `json:"event_id"`
	UserID        string `json:"user_id"`
	Status        string `json:"status"`
	AttendeeCount int    `json:"attendee_count"`
	EventTitle    string `json:"event_title"`
	Notes         string `json:"notes,omitempty"`
	RegisteredAt  string `json:"registered_at"`
}

// RegisterInput holds the caller-supplied fields for a new registration.
// Status is an open string tag (e.g. "confirmed", "waitlisted"); no
// enumeration is enforced. RegisteredAt is the caller's timestamp string.
type RegisterInput struct {
	EventID       string
	UserID        string
	Status        string
	AttendeeCount int
	EventTitle    string
	Notes         string
	RegisteredAt  string
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// Create inserts the registration and sets its ID.
	Create(ctx context.Context, reg *Registration) error
	// GetFirstByEventID returns the first registration for the event in a
	// stable order (oldest first), or ErrNotFound.
	GetFirstByEventID(ctx context.Context, eventID string) (*Registration, error)
	// ListByEventID returns every registration for the event.
	ListByEventID(ctx context.Context, eventID string) ([]*Registration, error)
	// ListByUserID returns every registration made by the user.
	ListByUserID(ctx context.Context, userID string) ([]*Registration, error)
	// GetByEventAndUser returns the registration for the (event, user)
	// pair, or ErrNotFound.
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*Registration, error)
}

// RegistrationService defines the registration ledger operations.
type RegistrationService interface {
	// Register validates the input and inserts a new registration.
	// Returns ErrInvalidInput on missing required fields, and
	// ErrAlreadyRegistered when unique enforcement is enabled and the
	// (event, user) pair already has a registration.
	Register(ctx context.Context, input RegisterInput) (*Registration, error)
	// GetEvent returns the first registration for the event. Callers that
	// need every registrant must use ListRegistrationsForEvent instead.
	GetEvent(ctx context.Context, eventID string) (*Registration, error)
	ListRegistrationsForEvent(ctx context.Context, eventID string) ([]*Registration, error)
	ListEventsByUser(ctx context.Context, userID string) ([]*Registration, error)
}
