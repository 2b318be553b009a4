package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	entsmsmessage "kolekta.io/kolekta/ent/smsmessage"
	apperrors "kolekta.io/kolekta/internal/pkg/errors"
	"kolekta.io/kolekta/internal/sms"
	"kolekta.io/kolekta/internal/usecase"
)

type sendSMSRequest struct {
	RecipientGroup string     `json:"recipient_group"`
	Recipients     []string   `json:"recipients"`
	MessageType    string     `json:"message_type"`
	Body           string     `json:"body"`
	ScheduledFor   *time.Time `json:"scheduled_for"`
}

// SendSMS handles POST /sms (officials).
func (s *Server) SendSMS(c *gin.Context) {
	var req sendSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "invalid request body"))
		return
	}

	row, err := s.sendSMSUC.Execute(c.Request.Context(), usecase.SendSMSInput{
		RecipientGroup: req.RecipientGroup,
		Recipients:     req.Recipients,
		MessageType:    req.MessageType,
		Body:           req.Body,
		ScheduledFor:   req.ScheduledFor,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, smsToAPI(row))
}

// ListSMSHistory handles GET /sms/history (officials).
// ?archived=true lists the archive instead of recent messages.
func (s *Server) ListSMSHistory(c *gin.Context) {
	rows, err := s.smsHist.History(c.Request.Context(), c.Query("archived") == "true")
	if err != nil {
		_ = c.Error(err)
		return
	}

	sentToday, err := s.smsHist.SentToday(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]SMSMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, smsToAPI(row))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"sent_today": sentToday,
	})
}

// ListSMSTemplates handles GET /sms/templates (officials).
func (s *Server) ListSMSTemplates(c *gin.Context) {
	templates := make(map[string]string)
	for _, typ := range []entsmsmessage.MessageType{
		entsmsmessage.MessageTypeCustom,
		entsmsmessage.MessageTypeCollection,
		entsmsmessage.MessageTypeDelay,
		entsmsmessage.MessageTypeEducation,
		entsmsmessage.MessageTypeEmergency,
	} {
		templates[string(typ)] = sms.Template(typ)
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// ArchiveSMS handles POST /sms/{message_id}/archive (officials).
func (s *Server) ArchiveSMS(c *gin.Context) {
	row, err := s.smsHist.SetArchived(c.Request.Context(), c.Param("message_id"), true)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, smsToAPI(row))
}

// RestoreSMS handles POST /sms/{message_id}/restore (officials).
func (s *Server) RestoreSMS(c *gin.Context) {
	row, err := s.smsHist.SetArchived(c.Request.Context(), c.Param("message_id"), false)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, smsToAPI(row))
}
