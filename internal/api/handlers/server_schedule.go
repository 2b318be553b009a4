package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "kolekta.io/kolekta/internal/pkg/errors"
	"kolekta.io/kolekta/internal/service"
	"kolekta.io/kolekta/internal/usecase"
)

// CreateSchedule handles POST /schedules.
func (s *Server) CreateSchedule(c *gin.Context) {
	var input service.CreateScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "invalid request body"))
		return
	}

	row, err := s.createScheduleUC.Execute(c.Request.Context(), input, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, scheduleToAPI(row))
}

// ListSchedules handles GET /schedules.
// Optional filters: purok, date, status.
func (s *Server) ListSchedules(c *gin.Context) {
	rows, err := s.schedules.List(c.Request.Context(), service.ListFilter{
		Purok:  c.Query("purok"),
		Date:   c.Query("date"),
		Status: c.Query("status"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": schedulesToAPI(rows)})
}

// GetSchedule handles GET /schedules/{schedule_id}.
func (s *Server) GetSchedule(c *gin.Context) {
	row, err := s.schedules.GetByID(c.Request.Context(), c.Param("schedule_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, scheduleToAPI(row))
}

// ListUpcomingSchedules handles GET /schedules/upcoming.
func (s *Server) ListUpcomingSchedules(c *gin.Context) {
	rows, err := s.schedules.Upcoming(c.Request.Context(), time.Now())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": schedulesToAPI(rows)})
}

// ListOngoingSchedules handles GET /schedules/ongoing.
// Ongoing is derived from the collection window, not the stored status.
func (s *Server) ListOngoingSchedules(c *gin.Context) {
	rows, err := s.schedules.OngoingNow(c.Request.Context(), time.Now())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": schedulesToAPI(rows)})
}

// GetScheduleStats handles GET /schedules/stats.
func (s *Server) GetScheduleStats(c *gin.Context) {
	stats, err := s.schedules.ComputeStats(c.Request.Context(), time.Now())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateScheduleStatus handles PATCH /schedules/{schedule_id}/status.
func (s *Server) UpdateScheduleStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "status is required"))
		return
	}

	row, err := s.transitionUC.Execute(c.Request.Context(), usecase.TransitionScheduleInput{
		ScheduleID: c.Param("schedule_id"),
		Status:     req.Status,
		Actor:      actorFromCtx(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, scheduleToAPI(row))
}

// ListRecentActivities handles GET /activities.
func (s *Server) ListRecentActivities(c *gin.Context) {
	rows, err := s.activity.Recent(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	items := make([]Activity, 0, len(rows))
	for _, row := range rows {
		items = append(items, activityToAPI(row))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
