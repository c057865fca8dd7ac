package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/quickchance/quickchance-backend/internal/application"
	"github.com/quickchance/quickchance-backend/internal/domain/entity"
	"github.com/quickchance/quickchance-backend/pkg/helpers"
	"github.com/quickchance/quickchance-backend/pkg/response"
	"github.com/quickchance/quickchance-backend/pkg/validation"
)

// writeError maps service errors onto status codes and the {error} body.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		response.Invalid(c, ve.Error(), ve.Fields)
	case errors.Is(err, entity.ErrInvalidID):
		response.Error(c, http.StatusBadRequest, "Invalid id")
	case errors.Is(err, app.ErrInvalidCredentials):
		response.Error(c, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, app.ErrEmailTaken):
		response.Error(c, http.StatusBadRequest, "Email already in use")
	case errors.Is(err, app.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "User not found")
	case errors.Is(err, app.ErrOpportunityNotFound):
		response.Error(c, http.StatusNotFound, "Opportunity not found")
	case errors.Is(err, app.ErrApplicationNotFound):
		response.Error(c, http.StatusNotFound, "Application not found")
	case errors.Is(err, app.ErrApplicationExists):
		response.Error(c, http.StatusConflict, "Application already exists")
	default:
		helpers.LogError(logger, "request failed", err, logrus.Fields{
			"path":       c.FullPath(),
			"request_id": c.GetString("request_id"),
		})
		response.Error(c, http.StatusInternalServerError, err.Error())
	}
}

// bindJSON decodes the body and writes a 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Invalid(c, "invalid payload", validation.ToDetails(err))
		return false
	}
	return true
}

func lookupParam(c *gin.Context) (entity.Lookup, error) {
	return entity.ParseLookup(c.Param("id"))
}
