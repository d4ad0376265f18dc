package handler

import (
	"errors"
	"net/http"

	"github.com/courselens/courselens-backend/internal/response"
	"github.com/courselens/courselens-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Search godoc
// GET /api/v1/catalog/search?query=
func (h *CatalogHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	records, err := h.catalogService.Search(c.Request.Context(), query)
	if err != nil {
		h.failCatalog(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"courses": records})
}

// ClassSections godoc
// GET /api/v1/catalog/classes/:subject/:number?term=
// Runs the full pipeline: term fallback, then grouping by meeting type.
func (h *CatalogHandler) ClassSections(c *gin.Context) {
	subject := c.Param("subject")
	number := c.Param("number")
	term := c.Query("term")

	sections, err := h.catalogService.ClassSections(c.Request.Context(), subject, number, term)
	if err != nil {
		h.failCatalog(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"class": sections})
}

// SubjectDirectory godoc
// GET /api/v1/catalog/subjects
func (h *CatalogHandler) SubjectDirectory(c *gin.Context) {
	names, err := h.catalogService.SubjectDirectory(c.Request.Context())
	if err != nil {
		h.failCatalog(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subjects": names})
}

// SubjectInfo godoc
// GET /api/v1/catalog/subjects/:code
func (h *CatalogHandler) SubjectInfo(c *gin.Context) {
	info, err := h.catalogService.SubjectInfo(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.failCatalog(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subject": info})
}

// ProfessorStats godoc
// GET /api/v1/catalog/professors?class=
func (h *CatalogHandler) ProfessorStats(c *gin.Context) {
	class := c.Query("class")
	if class == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	stats, err := h.catalogService.ProfessorStats(c.Request.Context(), class)
	if err != nil {
		h.failCatalog(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"professors": stats})
}

// RateMyProfessor godoc
// GET /api/v1/catalog/rmp?query=
func (h *CatalogHandler) RateMyProfessor(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	ratings, err := h.catalogService.RateMyProfessor(c.Request.Context(), query)
	if err != nil {
		h.failCatalog(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ratings": ratings})
}

// Requirements godoc
// GET /api/v1/catalog/requirements?query=
func (h *CatalogHandler) Requirements(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	records, err := h.catalogService.Requirements(c.Request.Context(), query)
	if err != nil {
		h.failCatalog(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"courses": records})
}

// failCatalog maps catalog pipeline errors onto the response envelope:
// exhaustion of every fallback term is 404, an unreachable upstream is 502.
func (h *CatalogHandler) failCatalog(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrCourseNotFound)
	case errors.Is(err, service.ErrCatalogUnavailable):
		response.Fail(c, http.StatusBadGateway, response.ErrCatalogUnavailable)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
