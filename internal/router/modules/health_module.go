package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/quickchance/quickchance-backend/internal/interface/http"
)

type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", handlers.Root)
}
