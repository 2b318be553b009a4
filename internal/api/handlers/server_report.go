package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kolekta.io/kolekta/ent"
	"kolekta.io/kolekta/internal/api/middleware"
	apperrors "kolekta.io/kolekta/internal/pkg/errors"
	"kolekta.io/kolekta/internal/usecase"
)

type submitReportRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	FileURLs    []string `json:"file_urls"`
}

// SubmitReport handles POST /reports. The report owner is always the
// authenticated user.
func (s *Server) SubmitReport(c *gin.Context) {
	var req submitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "invalid request body"))
		return
	}

	row, err := s.submitReportUC.Execute(c.Request.Context(), usecase.SubmitReportInput{
		UserID:      middleware.GetUserID(c.Request.Context()),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		FileURLs:    req.FileURLs,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, reportToAPI(row))
}

// ListReports handles GET /reports (officials).
func (s *Server) ListReports(c *gin.Context) {
	rows, err := s.reports.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": reportsToAPI(rows)})
}

// ListMyReports handles GET /reports/mine.
// ?resolved=true narrows to reports eligible for feedback.
func (s *Server) ListMyReports(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)

	var err error
	var rows []*ent.Report
	if c.Query("resolved") == "true" {
		rows, err = s.reports.ResolvedForUser(ctx, userID)
	} else {
		rows, err = s.reports.ListForUser(ctx, userID)
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": reportsToAPI(rows)})
}

// ListMyFeedback handles GET /feedback/mine.
func (s *Server) ListMyFeedback(c *gin.Context) {
	ctx := c.Request.Context()
	rows, err := s.reports.FeedbackForResident(ctx, middleware.GetUserID(ctx))
	if err != nil {
		_ = c.Error(err)
		return
	}
	items := make([]Feedback, 0, len(rows))
	for _, row := range rows {
		items = append(items, feedbackToAPI(row))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type respondReportRequest struct {
	Response string `json:"response"`
	Resolve  bool   `json:"resolve"`
}

// RespondToReport handles POST /reports/{report_id}/respond (officials).
func (s *Server) RespondToReport(c *gin.Context) {
	var req respondReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "invalid request body"))
		return
	}

	row, err := s.respondReportUC.Execute(c.Request.Context(), usecase.RespondReportInput{
		ReportID: c.Param("report_id"),
		Response: req.Response,
		Resolve:  req.Resolve,
		Actor:    actorFromCtx(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, reportToAPI(row))
}

type submitFeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// SubmitFeedback handles POST /reports/{report_id}/feedback.
func (s *Server) SubmitFeedback(c *gin.Context) {
	var req submitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "invalid request body"))
		return
	}

	row, err := s.feedbackUC.Execute(c.Request.Context(), usecase.SubmitFeedbackInput{
		ReportID:   c.Param("report_id"),
		ResidentID: middleware.GetUserID(c.Request.Context()),
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, feedbackToAPI(row))
}
