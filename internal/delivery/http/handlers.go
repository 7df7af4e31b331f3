package http

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/iotiq/account-deletion/internal/config"
	"github.com/iotiq/account-deletion/internal/domain/model"
	"github.com/iotiq/account-deletion/internal/service"
	"github.com/rs/zerolog"
	"net/http"
	"time"
)

// Response texts are part of the public API; the frontend matches on them.
const (
	msgEmailSent          = "Email sent successfully"
	msgContactRequired    = "Contact information is required"
	msgNotConfigured      = "Email service not properly configured"
	msgTransportMissing   = "Email service not configured"
	msgAuthFailed         = "Email authentication failed"
	msgConnectionFailed   = "Email connection failed"
	msgSendFailedPrefix   = "Failed to send email: "
	msgServerWorking      = "Server is working"
	msgRouteNotFound      = "Route not found"
	msgInternalServerFail = "Internal server error"
)

type Handlers struct {
	dispatcher *service.Dispatcher
	email      config.EmailConfig
	logger     zerolog.Logger
	now        func() time.Time
}

// NewHandlers creates a new instance of Handlers.
func NewHandlers(cfg *config.Config, dispatcher *service.Dispatcher, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		dispatcher: dispatcher,
		email:      cfg.Notifiers.Email,
		logger:     logger.With().Str("layer", "http_handler").Logger(),
		now:        time.Now,
	}
}

// RegisterRoutes sets up the routing for the deletion API.
func (h *Handlers) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/send-email", h.SendEmail)
		api.GET("/test", h.Test)
	}
}

// SendEmail handles an account-deletion request.
func (h *Handlers) SendEmail(c *gin.Context) {
	var req SendEmailRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn().Err(err).Msg("invalid request body")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgContactRequired})
		return
	}

	outcome, err := h.dispatcher.Dispatch(c.Request.Context(), req.Contact)
	if err != nil {
		status, msg := errorResponse(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error().Err(err).Msg("error sending email")
		}
		c.JSON(status, ErrorResponse{Error: msg})
		return
	}

	h.logger.Info().Int("emails", outcome.EmailCount).Msg("deletion request dispatched")
	c.JSON(http.StatusOK, MessageResponse{Message: msgEmailSent})
}

// Test reports liveness and which email settings are present.
func (h *Handlers) Test(c *gin.Context) {
	c.JSON(http.StatusOK, TestResponse{
		Message:   msgServerWorking,
		Timestamp: h.now().UTC().Format(time.RFC3339Nano),
		Env:       h.email.Presence(),
	})
}

// errorResponse maps a dispatch error onto a status code and the client-facing text.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrMissingContact):
		return http.StatusBadRequest, msgContactRequired
	case errors.Is(err, model.ErrTransportUnavailable):
		return http.StatusInternalServerError, msgTransportMissing
	case errors.Is(err, model.ErrNotConfigured):
		return http.StatusInternalServerError, msgNotConfigured
	case errors.Is(err, model.ErrAuthFailed):
		return http.StatusInternalServerError, msgAuthFailed
	case errors.Is(err, model.ErrConnectionFailed):
		return http.StatusInternalServerError, msgConnectionFailed
	}

	var dispatchErr *model.DispatchError
	if errors.As(err, &dispatchErr) {
		return http.StatusInternalServerError, msgSendFailedPrefix + dispatchErr.Err.Error()
	}
	return http.StatusInternalServerError, msgSendFailedPrefix + err.Error()
}
