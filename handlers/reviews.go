package handlers

import (
	"net/http"

	reviewRepo "dochouse/database/repository/review"
	"dochouse/models"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReviewHandler serves the testimonial endpoints.
type ReviewHandler struct {
	Repo reviewRepo.ReviewRepository
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(repo reviewRepo.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{Repo: repo}
}

// GetReviewsHandler handles GET /reviews.
func (h *ReviewHandler) GetReviewsHandler(c *gin.Context) {
	reviews, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch reviews", err.Error())
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReviewHandler handles POST /reviews.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email"`
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	review := models.Review{
		ID:      uuid.New().String(),
		Name:    input.Name,
		Email:   input.Email,
		Rating:  input.Rating,
		Comment: input.Comment,
	}
	if err := h.Repo.Create(&review); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create review", err.Error())
		return
	}
	c.JSON(http.StatusOK, review)
}
