package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/quickchance/quickchance-backend/internal/application"
	"github.com/quickchance/quickchance-backend/pkg/response"
)

type ApplicationHandler struct {
	Svc    *app.ApplicationService
	Logger *logrus.Logger
}

func NewApplicationHandler(svc *app.ApplicationService, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{Svc: svc, Logger: logger}
}

type createApplicationRequest struct {
	UserID        string  `json:"userId"`
	OpportunityID string  `json:"opportunityId"`
	Status        string  `json:"status"`
	CoverLetter   string  `json:"coverLetter"`
	AppliedAt     *string `json:"appliedAt"`
}

type updateApplicationRequest struct {
	Status      *string `json:"status" binding:"omitempty,appstatus"`
	CoverLetter *string `json:"coverLetter"`
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req createApplicationRequest
	if !bindJSON(c, &req) {
		return
	}
	appliedAt, err := parseDate("appliedAt", req.AppliedAt)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), app.CreateApplicationInput{
		UserID:        req.UserID,
		OpportunityID: req.OpportunityID,
		Status:        req.Status,
		CoverLetter:   req.CoverLetter,
		AppliedAt:     appliedAt,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusCreated, "Application submitted successfully", "application", a)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := lookupParam(c)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	a, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	id, err := lookupParam(c)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	var req updateApplicationRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.Svc.Update(c.Request.Context(), id, app.UpdateApplicationInput{
		Status:      req.Status,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "Application updated successfully", "application", a)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, err := lookupParam(c)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "Application deleted successfully", "", nil)
}
