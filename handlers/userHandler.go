package handlers

import (
	"net/http"

	"github.com/clubsphere/backend/response"
	"github.com/gin-gonic/gin"
)

type upsertUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// UpsertUser handles POST /user: create on first login, refresh last login
// otherwise.
func (h *Handler) UpsertUser(c *gin.Context) {
	var req upsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid user payload")
		return
	}

	created, err := h.UserService.UpsertOnLogin(c.Request.Context(), req.Email, req.Name, req.PhotoURL)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"inserted": created})
}

// GetUserRole handles GET /user/role for the authenticated principal.
func (h *Handler) GetUserRole(c *gin.Context) {
	role, err := h.UserService.GetRole(c.Request.Context(), c.GetString(ContextEmail))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role})
}

// ListUsers handles GET /users: every user except the caller.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.UserService.ListOthers(c.Request.Context(), c.GetString(ContextEmail))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// CountUsers handles GET /users/count.
func (h *Handler) CountUsers(c *gin.Context) {
	count, err := h.UserService.Count(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

type updateRoleRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=member clubManager admin"`
}

// UpdateUserRole handles PATCH /update-role. Assignment is unconditional and
// last-write-wins.
func (h *Handler) UpdateUserRole(c *gin.Context) {
	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid role payload")
		return
	}

	if err := h.UserService.SetRole(c.Request.Context(), req.Email, req.Role); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"modified": true})
}
