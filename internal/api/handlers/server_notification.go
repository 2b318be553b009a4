package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kolekta.io/kolekta/internal/api/middleware"
)

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	rows, err := s.inbox.List(c.Request.Context(), middleware.GetUserID(c.Request.Context()))
	if err != nil {
		_ = c.Error(err)
		return
	}
	items := make([]Notification, 0, len(rows))
	for _, row := range rows {
		items = append(items, notificationToAPI(row))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	count, err := s.inbox.UnreadCount(c.Request.Context(), middleware.GetUserID(c.Request.Context()))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead handles POST /notifications/{notification_id}/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	err := s.inbox.MarkRead(ctx, middleware.GetUserID(ctx), c.Param("notification_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	ctx := c.Request.Context()
	marked, err := s.inbox.MarkAllRead(ctx, middleware.GetUserID(ctx))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marked": marked})
}

// ClearNotifications handles DELETE /notifications.
func (s *Server) ClearNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	cleared, err := s.inbox.ClearAll(ctx, middleware.GetUserID(ctx))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": cleared})
}
