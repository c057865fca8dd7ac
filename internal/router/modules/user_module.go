package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/quickchance/quickchance-backend/internal/interface/http"
)

// UserModule wires user HTTP handlers into routes
// Public: POST /login, POST /users
// Guarded (when auth is enforced): GET /users/:id, PUT /users/:id
type UserModule struct {
	Handler *handlers.UserHandler
	Guard   []gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, guard ...gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, Guard: guard}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/login", m.Handler.Login)
	rg.POST("/users", m.Handler.CreateUser)

	users := rg.Group("/users", m.Guard...)
	{
		users.GET("/:id", m.Handler.GetUser)
		users.PUT("/:id", m.Handler.UpdateUser)
	}
}
