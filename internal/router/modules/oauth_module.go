package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/quickchance/quickchance-backend/internal/interface/http"
)

// OAuthModule exposes GET /auth/:provider and GET /auth/:provider/callback.
type OAuthModule struct {
	Handler *handlers.OAuthHandler
}

func NewOAuthModule(h *handlers.OAuthHandler) *OAuthModule {
	return &OAuthModule{Handler: h}
}

func (m *OAuthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/auth/:provider", m.Handler.Begin)
	rg.GET("/auth/:provider/callback", m.Handler.Callback)
}
