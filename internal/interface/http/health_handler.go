package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root answers the liveness probe at "/".
func Root(c *gin.Context) {
	c.String(http.StatusOK, "QuickChanceApp Backend is running")
}
