package router

import "github.com/gin-gonic/gin"

// Module is one feature area (users, opportunities, applications, OAuth,
// health). Register mounts its routes on the root group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
