package handlers

import (
	"errors"
	"net/http"

	"dochouse/middleware"
	"dochouse/models"
	"dochouse/services/user"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the user directory and role management endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// CreateUserHandler handles POST /users. Duplicate emails return
// success=false with the existing user.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var input struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	usr, created, err := h.Service.CreateUser(models.User{Name: input.Name, Email: input.Email})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create user", err.Error())
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "user already exists", "user": usr})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": usr})
}

// GetUsersHandler handles GET /users.
func (h *UserHandler) GetUsersHandler(c *gin.Context) {
	users, err := h.Service.GetAllUsers()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users", err.Error())
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdminHandler handles GET /users/admin/:email. The email must match the
// bearer token's email claim; a mismatch terminates the request before the
// lookup runs.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	email := c.Param("email")

	claims := middleware.ClaimsFrom(c)
	if claims == nil || claims.Email != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: email does not match token"})
		return
	}

	isAdmin, err := h.Service.IsAdmin(email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check admin role", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// GrantAdminHandler handles PATCH /users/admin/:id. Admin only.
func (h *UserHandler) GrantAdminHandler(c *gin.Context) {
	id := c.Param("id")

	usr, err := h.Service.GrantAdmin(id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to grant admin role", err.Error())
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteUserHandler handles DELETE /users/:id. Admin only.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.DeleteUser(id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
