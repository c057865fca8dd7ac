package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/quickchance/quickchance-backend/internal/application"
	"github.com/quickchance/quickchance-backend/pkg/response"
)

type UserHandler struct {
	Svc    *app.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *app.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type updateUserRequest struct {
	Name       *string `json:"name"`
	Password   *string `json:"password"`
	Role       *string `json:"role" binding:"omitempty,role"`
	IsVerified *bool   `json:"isVerified"`
}

// loginUser is the public subset of a user returned with the token.
type loginUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   res.Token,
		"user": loginUser{
			ID:    res.User.ID.Hex(),
			Name:  res.User.Name,
			Email: res.User.Email,
			Role:  string(res.User.Role),
		},
	})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.Svc.CreateUser(c.Request.Context(), app.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusCreated, "User created successfully", "user", u)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := lookupParam(c)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	u, err := h.Svc.GetUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := lookupParam(c)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	var req updateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.Svc.UpdateUser(c.Request.Context(), id, app.UpdateUserInput{
		Name:       req.Name,
		Password:   req.Password,
		Role:       req.Role,
		IsVerified: req.IsVerified,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "User updated successfully", "user", u)
}
