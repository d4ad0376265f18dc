package handler

import (
	"net/http"
	"strconv"

	"github.com/courselens/courselens-backend/internal/middleware"
	"github.com/courselens/courselens-backend/internal/model"
	"github.com/courselens/courselens-backend/internal/response"
	"github.com/courselens/courselens-backend/internal/service"
	"github.com/courselens/courselens-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	communityService *service.CommunityService
}

func NewCommunityHandler(communityService *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

// List godoc
// GET /api/v1/feed?class=
// Without a class filter, returns the whole feed.
func (h *CommunityHandler) List(c *gin.Context) {
	var (
		posts []model.Post
		err   error
	)

	if className := c.Query("class"); className != "" {
		posts, err = h.communityService.ListByClass(c.Request.Context(), className)
	} else {
		posts, err = h.communityService.List(c.Request.Context())
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if posts == nil {
		posts = []model.Post{}
	}
	response.Success(c, http.StatusOK, gin.H{"posts": posts})
}

// GetPost godoc
// GET /api/v1/feed/:id
func (h *CommunityHandler) GetPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	post, err := h.communityService.GetPost(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if post == nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"post": post})
}

// CreatePost godoc
// POST /api/v1/feed
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.CreatePostRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	post, err := h.communityService.CreatePost(c.Request.Context(), &req, claims)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"post": post})
}

// CreateReply godoc
// POST /api/v1/feed/:id/replies
func (h *CommunityHandler) CreateReply(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateReplyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	reply, err := h.communityService.CreateReply(c.Request.Context(), postID, &req, claims)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if reply == nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"reply": reply})
}

// ListClasses godoc
// GET /api/v1/feed/classes
func (h *CommunityHandler) ListClasses(c *gin.Context) {
	classes, err := h.communityService.ListClasses(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if classes == nil {
		classes = []model.Class{}
	}
	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}
