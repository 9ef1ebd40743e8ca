package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"
)

type NewsletterController struct {
	Logger  *slog.Logger
	Service domain.NewsletterService
}

func NewNewsletterController(logger *slog.Logger, svc domain.NewsletterService) *NewsletterController {
	return &NewsletterController{
		Logger:  logger,
		Service: svc,
	}
}

// BroadcastRequest is the request body for POST /newsletters.
type BroadcastRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate implements helpers.Validator.
func (r *BroadcastRequest) Validate() []string {
	var errs []string
	if r.Subject == "" {
		errs = append(errs, "subject is required")
	}
	if r.Body == "" {
		errs = append(errs, "body is required")
	}
	return errs
}

// BroadcastResult reports how many subscribers received the issue.
// swagger:model BroadcastResult
type BroadcastResult struct {
	Sent int `json:"sent"`
}

// BroadcastSuccessResponse is the success response envelope for POST /newsletters.
type BroadcastSuccessResponse struct {
	Data  *BroadcastResult  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Broadcast godoc
// @Summary Send a newsletter issue to every active subscriber
// @Tags newsletters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.BroadcastRequest true "Newsletter subject and body"
// @Success 200 {object} controllers.BroadcastSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /newsletters [post]
func (c *NewsletterController) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req BroadcastRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	sent, err := c.Service.Broadcast(r.Context(), req.Subject, req.Body)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, &BroadcastResult{Sent: sent})
}
