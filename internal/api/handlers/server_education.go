package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kolekta.io/kolekta/internal/pkg/errors"
	"kolekta.io/kolekta/internal/service"
)

// ListEducationalContent handles GET /education.
func (s *Server) ListEducationalContent(c *gin.Context) {
	rows, err := s.education.ListPublished(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	items := make([]EducationalContent, 0, len(rows))
	for _, row := range rows {
		items = append(items, contentToAPI(row))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateEducationalContent handles POST /education (officials).
func (s *Server) CreateEducationalContent(c *gin.Context) {
	var input service.CreateContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "invalid request body"))
		return
	}

	row, err := s.education.Create(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, contentToAPI(row))
}

type setPublishedRequest struct {
	Published bool `json:"published"`
}

// SetContentPublished handles PATCH /education/{content_id}/published (officials).
func (s *Server) SetContentPublished(c *gin.Context) {
	var req setPublishedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "invalid request body"))
		return
	}

	row, err := s.education.SetPublished(c.Request.Context(), c.Param("content_id"), req.Published)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, contentToAPI(row))
}
