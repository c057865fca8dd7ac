package router

import (
	"github.com/gin-gonic/gin"

	"github.com/quickchance/quickchance-backend/internal/container"
	handlers "github.com/quickchance/quickchance-backend/internal/interface/http"
	"github.com/quickchance/quickchance-backend/internal/interface/middleware"
	"github.com/quickchance/quickchance-backend/internal/router/modules"
)

// InitModules builds the handlers from c and adds every feature module to
// the registry. Call once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	var guard []gin.HandlerFunc
	if c.Config.AuthEnforced {
		guard = append(guard, middleware.Auth(c.JWT))
	}

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewUserModule(handlers.NewUserHandler(c.UserService, c.Logger), guard...))
	r.Add(modules.NewOpportunityModule(handlers.NewOpportunityHandler(c.OpportunityService, c.Logger), guard...))
	r.Add(modules.NewApplicationModule(handlers.NewApplicationHandler(c.ApplicationService, c.Logger), guard...))
	r.Add(modules.NewOAuthModule(handlers.NewOAuthHandler(c.OAuthService, c.Logger, c.Config.OAuthFailureRedirect)))
}
