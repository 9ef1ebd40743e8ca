package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"communityhub/internal/domain"
)

type mockSubscriberRepository struct {
	subs      map[string]*domain.Subscriber
	createErr error
	getErr    error
	updateErr error
	listErr   error
}

func newMockSubscriberRepository() *mockSubscriberRepository {
	return &mockSubscriberRepository{subs: map[string]*domain.Subscriber{}}
}

func (m *mockSubscriberRepository) Create(ctx context.Context, sub *domain.Subscriber) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.subs[sub.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	cp := *sub
	m.subs[sub.Email] = &cp
	return nil
}

func (m *mockSubscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	sub, ok := m.subs[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *sub
	return &cp, nil
}

func (m *mockSubscriberRepository) UpdateStatus(ctx context.Context, email, status string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	sub, ok := m.subs[email]
	if !ok {
		return domain.ErrNotFound
	}
	sub.Status = status
	return nil
}

func (m *mockSubscriberRepository) ListActive(ctx context.Context) ([]*domain.Subscriber, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*domain.Subscriber
	for _, sub := range m.subs {
		if sub.Status == domain.SubscriberStatusActive {
			cp := *sub
			out = append(out, &cp)
		}
	}
	return out, nil
}

type mockEmailService struct {
	sentTo []string
	err    error
}

func (m *mockEmailService) SendSubscriberWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	m.sentTo = append(m.sentTo, data.Email)
	return m.err
}

func TestSubscriptionService_StateMachine(t *testing.T) {
	ctx := context.Background()
	repo := newMockSubscriberRepository()
	svc := NewSubscriptionService(repo, nil)
	email := "a@x.com"

	outcome, err := svc.Subscribe(ctx, email)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if outcome != domain.OutcomeSubscribed {
		t.Fatalf("expected subscribed, got %s", outcome)
	}

	outcome, err = svc.Subscribe(ctx, email)
	if err != nil {
		t.Fatalf("second subscribe: %v", err)
	}
	if outcome != domain.OutcomeAlreadySubscribed {
		t.Fatalf("expected already_subscribed, got %s", outcome)
	}

	unsubOutcome, err := svc.Unsubscribe(ctx, email)
	if err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	if unsubOutcome != domain.OutcomeUnsubscribed {
		t.Fatalf("expected unsubscribed, got %s", unsubOutcome)
	}
	if repo.subs[email].Status != domain.SubscriberStatusUnsubscribed {
		t.Fatalf("stored status = %s, want unsubscribed", repo.subs[email].Status)
	}

	outcome, err = svc.Subscribe(ctx, email)
	if err != nil {
		t.Fatalf("resubscribe: %v", err)
	}
	if outcome != domain.OutcomeResubscribed {
		t.Fatalf("expected resubscribed, got %s", outcome)
	}
	if repo.subs[email].Status != domain.SubscriberStatusActive {
		t.Fatalf("stored status = %s, want active", repo.subs[email].Status)
	}
	if len(repo.subs) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(repo.subs))
	}
}

func TestSubscriptionService_SubscriptionDateUnchangedOnResubscribe(t *testing.T) {
	ctx := context.Background()
	repo := newMockSubscriberRepository()
	svc := NewSubscriptionService(repo, nil)
	email := "keep@date.com"

	if _, err := svc.Subscribe(ctx, email); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	original := repo.subs[email].SubscriptionDate
	if _, err := svc.Unsubscribe(ctx, email); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := svc.Subscribe(ctx, email); err != nil {
		t.Fatalf("resubscribe: %v", err)
	}
	if !repo.subs[email].SubscriptionDate.Equal(original) {
		t.Fatalf("subscription date changed on resubscribe")
	}
}

func TestSubscriptionService_UnsubscribeIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newMockSubscriberRepository()
	svc := NewSubscriptionService(repo, nil)
	email := "twice@x.com"

	if _, err := svc.Subscribe(ctx, email); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	for i := 0; i < 2; i++ {
		outcome, err := svc.Unsubscribe(ctx, email)
		if err != nil {
			t.Fatalf("unsubscribe %d: %v", i+1, err)
		}
		if outcome != domain.OutcomeUnsubscribed {
			t.Fatalf("unsubscribe %d: expected unsubscribed, got %s", i+1, outcome)
		}
	}
	if repo.subs[email].Status != domain.SubscriberStatusUnsubscribed {
		t.Fatalf("stored status = %s, want unsubscribed", repo.subs[email].Status)
	}
}

func TestSubscriptionService_UnsubscribeNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newMockSubscriberRepository()
	svc := NewSubscriptionService(repo, nil)

	outcome, err := svc.Unsubscribe(ctx, "never@seen.com")
	if err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	if outcome != domain.OutcomeNotFound {
		t.Fatalf("expected not_found, got %s", outcome)
	}
	if len(repo.subs) != 0 {
		t.Fatalf("unsubscribe created a record")
	}
}

func TestSubscriptionService_SubscribeInsertRace(t *testing.T) {
	// Simulate losing the insert race: GetByEmail sees nothing, Create hits
	// the unique constraint.
	ctx := context.Background()
	repo := newMockSubscriberRepository()
	repo.getErr = nil
	repo.createErr = domain.ErrDuplicateEmail
	svc := NewSubscriptionService(repo, nil)

	outcome, err := svc.Subscribe(ctx, "raced@x.com")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if outcome != domain.OutcomeAlreadySubscribed {
		t.Fatalf("expected already_subscribed, got %s", outcome)
	}
}

func TestSubscriptionService_SubscribeValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewSubscriptionService(newMockSubscriberRepository(), nil)

	for _, email := range []string{"", "not-an-email", "missing@tld"} {
		if _, err := svc.Subscribe(ctx, email); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("subscribe(%q): expected ErrInvalidInput, got %v", email, err)
		}
		if _, err := svc.Unsubscribe(ctx, email); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("unsubscribe(%q): expected ErrInvalidInput, got %v", email, err)
		}
	}
}

func TestSubscriptionService_WelcomeEmailBestEffort(t *testing.T) {
	ctx := context.Background()
	repo := newMockSubscriberRepository()
	emailSvc := &mockEmailService{err: errors.New("smtp down")}
	svc := NewSubscriptionService(repo, emailSvc)

	outcome, err := svc.Subscribe(ctx, "new@x.com")
	if err != nil {
		t.Fatalf("subscribe should not fail on email error: %v", err)
	}
	if outcome != domain.OutcomeSubscribed {
		t.Fatalf("expected subscribed, got %s", outcome)
	}
	if len(emailSvc.sentTo) != 1 || emailSvc.sentTo[0] != "new@x.com" {
		t.Fatalf("welcome email not attempted: %v", emailSvc.sentTo)
	}

	// No welcome email on resubscribe.
	if _, err := svc.Unsubscribe(ctx, "new@x.com"); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	if _, err := svc.Subscribe(ctx, "new@x.com"); err != nil {
		t.Fatalf("resubscribe: %v", err)
	}
	if len(emailSvc.sentTo) != 1 {
		t.Fatalf("expected no welcome email on resubscribe, got %d sends", len(emailSvc.sentTo))
	}
}

func TestSubscriptionService_ListActiveSubscribers(t *testing.T) {
	ctx := context.Background()
	repo := newMockSubscriberRepository()
	svc := NewSubscriptionService(repo, nil)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		if _, err := svc.Subscribe(ctx, email); err != nil {
			t.Fatalf("subscribe %s: %v", email, err)
		}
	}
	if _, err := svc.Unsubscribe(ctx, "b@x.com"); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}

	subs, err := svc.ListActiveSubscribers(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("expected 2 active subscribers, got %d", len(subs))
	}
	for _, sub := range subs {
		if sub.Status != domain.SubscriberStatusActive {
			t.Fatalf("non-active subscriber in list: %s", sub.Email)
		}
		if sub.Email == "b@x.com" {
			t.Fatalf("unsubscribed email in active list")
		}
	}

	// Empty store returns an empty, non-nil slice.
	emptySvc := NewSubscriptionService(newMockSubscriberRepository(), nil)
	subs, err = emptySvc.ListActiveSubscribers(ctx)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if subs == nil || len(subs) != 0 {
		t.Fatalf("expected empty slice, got %v", subs)
	}
}
