package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/quickchance/quickchance-backend/internal/interface/http"
)

type OpportunityModule struct {
	Handler *handlers.OpportunityHandler
	Guard   []gin.HandlerFunc
}

func NewOpportunityModule(h *handlers.OpportunityHandler, guard ...gin.HandlerFunc) *OpportunityModule {
	return &OpportunityModule{Handler: h, Guard: guard}
}

func (m *OpportunityModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/opportunities", m.Guard...)
	{
		g.POST("", m.Handler.Create)
		g.GET("", m.Handler.List)
		g.GET("/:id", m.Handler.Get)
		g.PUT("/:id", m.Handler.Update)
		g.DELETE("/:id", m.Handler.Delete)
	}
}
