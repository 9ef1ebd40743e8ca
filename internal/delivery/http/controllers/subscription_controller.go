package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"
)

type SubscriptionController struct {
	Logger  *slog.Logger
	Service domain.SubscriptionService
}

func NewSubscriptionController(logger *slog.Logger, svc domain.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{
		Logger:  logger,
		Service: svc,
	}
}

// SubscriptionRequest is the request body for POST and DELETE /subscriptions.
type SubscriptionRequest struct {
	Email string `json:"email"`
}

// Validate implements helpers.Validator.
func (r *SubscriptionRequest) Validate() []string {
	if r.Email == "" {
		return []string{"email is required"}
	}
	return nil
}

// SubscriptionOutcome is the response body for subscribe and unsubscribe calls.
// Outcome is one of: subscribed, resubscribed, already_subscribed,
// unsubscribed, not_found.
// swagger:model SubscriptionOutcome
type SubscriptionOutcome struct {
	Email   string `json:"email"`
	Outcome string `json:"outcome"`
}

// SubscriptionOutcomeResponse is the success response envelope for subscribe/unsubscribe.
type SubscriptionOutcomeResponse struct {
	Data  *SubscriptionOutcome `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// Subscribe godoc
// @Summary Subscribe an email to the newsletter
// @Description Creates the subscriber on first subscribe (201), reactivates an unsubscribed one (200, outcome resubscribed), and is a no-op for an active one (200, outcome already_subscribed).
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param body body controllers.SubscriptionRequest true "Email to subscribe"
// @Success 200 {object} controllers.SubscriptionOutcomeResponse "resubscribed or already_subscribed"
// @Success 201 {object} controllers.SubscriptionOutcomeResponse "subscribed"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /subscriptions [post]
func (c *SubscriptionController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscriptionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	outcome, err := c.Service.Subscribe(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	status := http.StatusOK
	if outcome == domain.OutcomeSubscribed {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, &SubscriptionOutcome{
		Email:   req.Email,
		Outcome: string(outcome),
	})
}

// Unsubscribe godoc
// @Summary Unsubscribe an email from the newsletter
// @Description Idempotent: already-unsubscribed emails still report unsubscribed. An unknown email reports not_found as a normal outcome, not an error; no record is created.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param body body controllers.SubscriptionRequest true "Email to unsubscribe"
// @Success 200 {object} controllers.SubscriptionOutcomeResponse "unsubscribed or not_found"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /subscriptions [delete]
func (c *SubscriptionController) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscriptionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	outcome, err := c.Service.Unsubscribe(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, &SubscriptionOutcome{
		Email:   req.Email,
		Outcome: string(outcome),
	})
}

// ListSubscribersSuccessResponse is the success response envelope for GET /subscriptions.
type ListSubscribersSuccessResponse struct {
	Data  []*domain.Subscriber `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ListActiveSubscribers godoc
// @Summary List active subscribers
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListSubscribersSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /subscriptions [get]
func (c *SubscriptionController) ListActiveSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := c.Service.ListActiveSubscribers(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, subs)
}
