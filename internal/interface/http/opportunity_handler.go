package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/quickchance/quickchance-backend/internal/application"
	"github.com/quickchance/quickchance-backend/pkg/response"
)

type OpportunityHandler struct {
	Svc    *app.OpportunityService
	Logger *logrus.Logger
}

func NewOpportunityHandler(svc *app.OpportunityService, logger *logrus.Logger) *OpportunityHandler {
	return &OpportunityHandler{Svc: svc, Logger: logger}
}

type createOpportunityRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CompanyID   string  `json:"companyId"`
	Type        string  `json:"type"`
	Location    string  `json:"location"`
	Deadline    *string `json:"deadline"`
	IsApproved  bool    `json:"isApproved"`
}

type updateOpportunityRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CompanyID   *string `json:"companyId"`
	Type        *string `json:"type" binding:"omitempty,opptype"`
	Location    *string `json:"location"`
	Deadline    *string `json:"deadline"`
	IsApproved  *bool   `json:"isApproved"`
}

func (h *OpportunityHandler) Create(c *gin.Context) {
	var req createOpportunityRequest
	if !bindJSON(c, &req) {
		return
	}
	deadline, err := parseDate("deadline", req.Deadline)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	o, err := h.Svc.Create(c.Request.Context(), app.CreateOpportunityInput{
		Title:       req.Title,
		Description: req.Description,
		CompanyID:   req.CompanyID,
		Type:        req.Type,
		Location:    req.Location,
		Deadline:    deadline,
		IsApproved:  req.IsApproved,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusCreated, "Opportunity created successfully", "opportunity", o)
}

func (h *OpportunityHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *OpportunityHandler) Get(c *gin.Context) {
	id, err := lookupParam(c)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	o, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OpportunityHandler) Update(c *gin.Context) {
	id, err := lookupParam(c)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	var req updateOpportunityRequest
	if !bindJSON(c, &req) {
		return
	}
	in := app.UpdateOpportunityInput{
		Title:       req.Title,
		Description: req.Description,
		CompanyID:   req.CompanyID,
		Type:        req.Type,
		Location:    req.Location,
		IsApproved:  req.IsApproved,
	}
	if req.Deadline != nil {
		deadline, err := parseDate("deadline", req.Deadline)
		if err != nil {
			writeError(c, h.Logger, err)
			return
		}
		in.Deadline = deadline
		in.ClearDeadline = deadline == nil
	}
	o, err := h.Svc.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "Opportunity updated successfully", "opportunity", o)
}

func (h *OpportunityHandler) Delete(c *gin.Context) {
	id, err := lookupParam(c)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "Opportunity deleted successfully", "", nil)
}
