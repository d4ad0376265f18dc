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

type WikiHandler struct {
	wikiService *service.WikiService
}

func NewWikiHandler(wikiService *service.WikiService) *WikiHandler {
	return &WikiHandler{wikiService: wikiService}
}

// Get godoc
// GET /api/v1/wiki/:className
func (h *WikiHandler) Get(c *gin.Context) {
	wiki, err := h.wikiService.GetByClassName(c.Request.Context(), c.Param("className"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if wiki == nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"wiki": wiki})
}

// List godoc
// GET /api/v1/wiki
func (h *WikiHandler) List(c *gin.Context) {
	wikis, err := h.wikiService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if wikis == nil {
		wikis = []model.CourseWiki{}
	}
	response.Success(c, http.StatusOK, gin.H{"wikis": wikis})
}

// Upsert godoc
// POST /api/v1/wiki/:className
// Creates the page if absent, otherwise merges the submitted fields in.
func (h *WikiHandler) Upsert(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.UpsertWikiRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	wiki, err := h.wikiService.Upsert(c.Request.Context(), c.Param("className"), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"wiki": wiki})
}
