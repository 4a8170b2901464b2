package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"satellite-monitor-backend/internal/model"
	"satellite-monitor-backend/internal/parse"
	"satellite-monitor-backend/internal/users"
)

const errUserRequest = "Erro ao processar usuário"

type createUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	FullName string `json:"full_name" binding:"max=100"`
	Password string `json:"password" binding:"required,min=6"`
	IsActive *bool  `json:"is_active"`
}

type updateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string `json:"email" binding:"omitempty,email,max=100"`
	FullName *string `json:"full_name" binding:"omitempty,max=100"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	IsActive *bool   `json:"is_active"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(u model.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserHandler serves /api/v1/users.
type UserHandler struct {
	svc UserService
}

// NewUserHandler creates a handler backed by svc.
func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUser handles POST /api/v1/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	u, err := h.svc.Create(c.Request.Context(), users.CreateInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, err, detailUserNotFound, errUserRequest)
		return
	}
	c.JSON(http.StatusCreated, newUserResponse(u))
}

// ListUsers handles GET /api/v1/users?skip=&limit=.
func (h *UserHandler) ListUsers(c *gin.Context) {
	skip, err := parse.Skip(c.Query("skip"))
	if err != nil {
		respondError(c, err, detailUserNotFound, errUserRequest)
		return
	}
	limit, err := parse.Limit(c.Query("limit"), parse.DefaultUserLimit, parse.MaxUserLimit)
	if err != nil {
		respondError(c, err, detailUserNotFound, errUserRequest)
		return
	}

	list, err := h.svc.List(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, err, detailUserNotFound, errUserRequest)
		return
	}
	resp := make([]userResponse, 0, len(list))
	for _, u := range list {
		resp = append(resp, newUserResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}

// GetUser handles GET /api/v1/users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parse.ID(c.Param("id"))
	if err != nil {
		respondError(c, err, detailUserNotFound, errUserRequest)
		return
	}
	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, detailUserNotFound, errUserRequest)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(u))
}

// UpdateUser handles PUT /api/v1/users/:id.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parse.ID(c.Param("id"))
	if err != nil {
		respondError(c, err, detailUserNotFound, errUserRequest)
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	u, err := h.svc.Update(c.Request.Context(), id, users.UpdateInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, err, detailUserNotFound, errUserRequest)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(u))
}

// DeleteUser handles DELETE /api/v1/users/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parse.ID(c.Param("id"))
	if err != nil {
		respondError(c, err, detailUserNotFound, errUserRequest)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, detailUserNotFound, errUserRequest)
		return
	}
	c.Status(http.StatusNoContent)
}
