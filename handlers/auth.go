package handlers

import (
	"net/http"

	"dochouse/services/user"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves token issuance.
type AuthHandler struct {
	Users user.UserService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(users user.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// IssueTokenHandler handles POST /jwt. The role claim is read from the user
// directory at signing time; unknown emails get a token without a role.
func (h *AuthHandler) IssueTokenHandler(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, err := h.Users.IssueToken(input.Email, input.Name)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
