// Package handlers implements the HTTP API for Kolekta.
//
// Routes are registered by hand in RegisterRoutes; handlers stay thin
// and delegate to services and use cases. Errors flow through c.Error
// and the centralized ErrorHandler middleware.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"kolekta.io/kolekta/ent"
	"kolekta.io/kolekta/internal/activity"
	"kolekta.io/kolekta/internal/api/middleware"
	"kolekta.io/kolekta/internal/feed"
	"kolekta.io/kolekta/internal/notification"
	"kolekta.io/kolekta/internal/service"
	"kolekta.io/kolekta/internal/usecase"
)

// Server holds all API handlers.
type Server struct {
	client      *ent.Client
	pool        *pgxpool.Pool
	jwtCfg      middleware.JWTConfig
	riverClient *river.Client[pgx.Tx]
	hub         *feed.Hub

	schedules *service.ScheduleService
	reports   *service.ReportService
	education *service.EducationService
	smsHist   *service.SMSService
	activity  *activity.Logger
	inbox     *notification.Inbox

	createScheduleUC *usecase.CreateScheduleUseCase
	transitionUC     *usecase.TransitionScheduleUseCase
	submitReportUC   *usecase.SubmitReportUseCase
	respondReportUC  *usecase.RespondReportUseCase
	feedbackUC       *usecase.SubmitFeedbackUseCase
	sendSMSUC        *usecase.SendSMSUseCase
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	JWTCfg      middleware.JWTConfig
	RiverClient *river.Client[pgx.Tx]
	Hub         *feed.Hub

	Schedules *service.ScheduleService
	Reports   *service.ReportService
	Education *service.EducationService
	SMSHist   *service.SMSService
	Activity  *activity.Logger
	Inbox     *notification.Inbox

	CreateScheduleUC *usecase.CreateScheduleUseCase
	TransitionUC     *usecase.TransitionScheduleUseCase
	SubmitReportUC   *usecase.SubmitReportUseCase
	RespondReportUC  *usecase.RespondReportUseCase
	FeedbackUC       *usecase.SubmitFeedbackUseCase
	SendSMSUC        *usecase.SendSMSUseCase
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:           deps.EntClient,
		pool:             deps.Pool,
		jwtCfg:           deps.JWTCfg,
		riverClient:      deps.RiverClient,
		hub:              deps.Hub,
		schedules:        deps.Schedules,
		reports:          deps.Reports,
		education:        deps.Education,
		smsHist:          deps.SMSHist,
		activity:         deps.Activity,
		inbox:            deps.Inbox,
		createScheduleUC: deps.CreateScheduleUC,
		transitionUC:     deps.TransitionUC,
		submitReportUC:   deps.SubmitReportUC,
		respondReportUC:  deps.RespondReportUC,
		feedbackUC:       deps.FeedbackUC,
		sendSMSUC:        deps.SendSMSUC,
	}
}

// RegisterRoutes attaches all endpoints to the API group. The group is
// expected to carry RequestID and ErrorHandler; auth is applied here so
// health stays public.
func (s *Server) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/health/live", s.GetLiveness)
	public.GET("/health/ready", s.GetReadiness)

	officials := middleware.RequireRole()
	collectors := middleware.RequireRole(middleware.RoleCollector)

	schedules := authed.Group("/schedules")
	{
		schedules.GET("", s.ListSchedules)
		schedules.POST("", officials, s.CreateSchedule)
		schedules.GET("/upcoming", s.ListUpcomingSchedules)
		schedules.GET("/ongoing", s.ListOngoingSchedules)
		schedules.GET("/stats", s.GetScheduleStats)
		schedules.GET("/:schedule_id", s.GetSchedule)
		schedules.PATCH("/:schedule_id/status", collectors, s.UpdateScheduleStatus)
	}

	authed.GET("/activities", s.ListRecentActivities)

	reports := authed.Group("/reports")
	{
		reports.POST("", s.SubmitReport)
		reports.GET("", officials, s.ListReports)
		reports.GET("/mine", s.ListMyReports)
		reports.POST("/:report_id/respond", officials, s.RespondToReport)
		reports.POST("/:report_id/feedback", s.SubmitFeedback)
	}

	authed.GET("/feedback/mine", s.ListMyFeedback)

	notifications := authed.Group("/notifications")
	{
		notifications.GET("", s.ListNotifications)
		notifications.GET("/unread-count", s.GetUnreadCount)
		notifications.POST("/:notification_id/read", s.MarkNotificationRead)
		notifications.POST("/read-all", s.MarkAllNotificationsRead)
		notifications.DELETE("", s.ClearNotifications)
	}

	education := authed.Group("/education")
	{
		education.GET("", s.ListEducationalContent)
		education.POST("", officials, s.CreateEducationalContent)
		education.PATCH("/:content_id/published", officials, s.SetContentPublished)
	}

	smsGroup := authed.Group("/sms", officials)
	{
		smsGroup.POST("", s.SendSMS)
		smsGroup.GET("/history", s.ListSMSHistory)
		smsGroup.GET("/templates", s.ListSMSTemplates)
		smsGroup.POST("/:message_id/archive", s.ArchiveSMS)
		smsGroup.POST("/:message_id/restore", s.RestoreSMS)
	}

	authed.GET("/feed", s.StreamFeed)
}

// actorFromCtx extracts the authenticated user ID from the request context.
// All handlers use this instead of hardcoded "anonymous".
func actorFromCtx(c *gin.Context) string {
	if uid := middleware.GetUserID(c.Request.Context()); uid != "" {
		return uid
	}
	return "anonymous"
}
