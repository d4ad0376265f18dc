package handler

import (
	"net/http"

	"github.com/courselens/courselens-backend/internal/middleware"
	"github.com/courselens/courselens-backend/internal/model"
	"github.com/courselens/courselens-backend/internal/response"
	"github.com/courselens/courselens-backend/internal/service"
	"github.com/courselens/courselens-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// History godoc
// GET /api/v1/chat/:className
func (h *ChatHandler) History(c *gin.Context) {
	messages, err := h.chatService.History(c.Request.Context(), c.Param("className"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if messages == nil {
		messages = []model.ChatMessage{}
	}
	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

// Post godoc
// POST /api/v1/chat/:className
func (h *ChatHandler) Post(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.CreateChatMessageRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	msg, err := h.chatService.Post(c.Request.Context(), c.Param("className"), &req, claims)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": msg})
}
