package handler

import (
	"net/http"

	"github.com/courselens/courselens-backend/internal/model"
	"github.com/courselens/courselens-backend/internal/response"
	"github.com/courselens/courselens-backend/internal/service"
	"github.com/courselens/courselens-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// List godoc
// GET /api/v1/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if reviews == nil {
		reviews = []model.Review{}
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

// ListBySubject godoc
// GET /api/v1/reviews/:name
func (h *ReviewHandler) ListBySubject(c *gin.Context) {
	reviews, err := h.reviewService.ListBySubject(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if reviews == nil {
		reviews = []model.Review{}
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

// Create godoc
// POST /api/v1/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req model.CreateReviewRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"review": review})
}
