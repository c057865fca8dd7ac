package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/quickchance/quickchance-backend/internal/interface/http"
)

type ApplicationModule struct {
	Handler *handlers.ApplicationHandler
	Guard   []gin.HandlerFunc
}

func NewApplicationModule(h *handlers.ApplicationHandler, guard ...gin.HandlerFunc) *ApplicationModule {
	return &ApplicationModule{Handler: h, Guard: guard}
}

func (m *ApplicationModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/applications", m.Guard...)
	{
		g.POST("", m.Handler.Create)
		g.GET("", m.Handler.List)
		g.GET("/:id", m.Handler.Get)
		g.PUT("/:id", m.Handler.Update)
		g.DELETE("/:id", m.Handler.Delete)
	}
}
