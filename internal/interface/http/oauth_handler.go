package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/quickchance/quickchance-backend/internal/application"
	"github.com/quickchance/quickchance-backend/pkg/response"
)

type OAuthHandler struct {
	Svc             *app.OAuthService
	Logger          *logrus.Logger
	FailureRedirect string
}

func NewOAuthHandler(svc *app.OAuthService, logger *logrus.Logger, failureRedirect string) *OAuthHandler {
	return &OAuthHandler{Svc: svc, Logger: logger, FailureRedirect: failureRedirect}
}

// Begin redirects the browser to the provider's consent page.
func (h *OAuthHandler) Begin(c *gin.Context) {
	url, err := h.Svc.AuthURL(c.Request.Context(), c.Param("provider"))
	switch {
	case errors.Is(err, app.ErrUnknownProvider):
		response.Error(c, http.StatusNotFound, "Unknown provider")
	case errors.Is(err, app.ErrProviderDisabled):
		response.Error(c, http.StatusServiceUnavailable, "Provider not configured")
	case err != nil:
		writeError(c, h.Logger, err)
	default:
		c.Redirect(http.StatusTemporaryRedirect, url)
	}
}

// Callback finishes the provider round trip. Any failure sends the browser
// to the failure page.
func (h *OAuthHandler) Callback(c *gin.Context) {
	provider := c.Param("provider")
	if _, ok := h.Svc.Providers[provider]; !ok {
		response.Error(c, http.StatusNotFound, "Unknown provider")
		return
	}
	if reason := c.Query("error"); reason != "" {
		h.fail(c, provider, errors.New(reason))
		return
	}
	profile, err := h.Svc.Complete(c.Request.Context(), provider, c.Query("state"), c.Query("code"))
	if err != nil {
		h.fail(c, provider, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": profile})
}

func (h *OAuthHandler) fail(c *gin.Context, provider string, err error) {
	if h.Logger != nil {
		h.Logger.WithError(err).WithFields(logrus.Fields{
			"provider":   provider,
			"request_id": c.GetString("request_id"),
		}).Warn("oauth callback failed")
	}
	c.Redirect(http.StatusFound, h.FailureRedirect)
}
