// Package notification implements the resident notification inbox.
//
// Notifications are synchronous DB writes within the same transaction
// as the business operation that triggers them, not River jobs.
// Delivery is keyed on (report_id, user_id): responding twice to the
// same report updates the existing inbox row instead of stacking
// duplicates, and the row flips back to unread.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kolekta.io/kolekta/ent"
	entnotification "kolekta.io/kolekta/ent/notification"
	"kolekta.io/kolekta/internal/feed"
	"kolekta.io/kolekta/internal/pkg/logger"
)

// Params holds the required fields for delivering a notification.
type Params struct {
	RecipientID string // Resident who owns the inbox row
	ReportID    string // Report this notification is about
	Message     string // Body text
	Status      string // Report status at the time of delivery
}

// Sender defines the interface for delivering notifications.
// V1: Only InboxSender implementation (synchronous DB upsert).
// V2+: Add push channels via the same interface.
type Sender interface {
	// Send upserts the notification row for (report_id, recipient_id).
	Send(ctx context.Context, params Params) error
}

// InboxSender writes notifications to the database synchronously within
// the caller's context. One row per (report_id, user_id); repeated sends
// replace the message and mark the row unread again.
type InboxSender struct {
	client *ent.Client
	hub    *feed.Hub
}

// NewInboxSender creates a new inbox sender.
func NewInboxSender(client *ent.Client) *InboxSender {
	return &InboxSender{client: client}
}

// WithFeed sets the change feed hub (optional dependency).
func (s *InboxSender) WithFeed(hub *feed.Hub) *InboxSender {
	s.hub = hub
	return s
}

// Send upserts a single notification row.
func (s *InboxSender) Send(ctx context.Context, params Params) error {
	if err := validateParams(params); err != nil {
		return fmt.Errorf("notification params invalid: %w", err)
	}

	err := s.client.Notification.Create().
		SetID(uuid.NewString()).
		SetUserID(params.RecipientID).
		SetReportID(params.ReportID).
		SetMessage(params.Message).
		SetStatus(params.Status).
		SetRead(false).
		OnConflictColumns(entnotification.FieldReportID, entnotification.FieldUserID).
		Update(func(u *ent.NotificationUpsert) {
			u.SetMessage(params.Message)
			u.SetStatus(params.Status)
			u.SetRead(false)
			u.ClearReadAt()
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert notification for user %s: %w", params.RecipientID, err)
	}

	logger.Debug("notification delivered",
		zap.String("recipient", params.RecipientID),
		zap.String("report_id", params.ReportID),
	)

	if s.hub != nil {
		row, err := s.client.Notification.Query().
			Where(
				entnotification.ReportIDEQ(params.ReportID),
				entnotification.UserIDEQ(params.RecipientID),
			).
			Only(ctx)
		if err == nil {
			s.hub.Publish(ctx, feed.NewEvent(row.ID, feed.TableNotifications, feed.OpInsert, row.ID, row))
		}
	}

	return nil
}

// SendTx upserts a notification row inside an existing transaction.
// No feed event is published here; the caller publishes after commit.
func (s *InboxSender) SendTx(ctx context.Context, tx *ent.Tx, params Params) error {
	if err := validateParams(params); err != nil {
		return fmt.Errorf("notification params invalid: %w", err)
	}

	err := tx.Notification.Create().
		SetID(uuid.NewString()).
		SetUserID(params.RecipientID).
		SetReportID(params.ReportID).
		SetMessage(params.Message).
		SetStatus(params.Status).
		SetRead(false).
		OnConflictColumns(entnotification.FieldReportID, entnotification.FieldUserID).
		Update(func(u *ent.NotificationUpsert) {
			u.SetMessage(params.Message)
			u.SetStatus(params.Status)
			u.SetRead(false)
			u.ClearReadAt()
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert notification for user %s: %w", params.RecipientID, err)
	}
	return nil
}

// compile-time check
var _ Sender = (*InboxSender)(nil)

func validateParams(p Params) error {
	if p.RecipientID == "" {
		return fmt.Errorf("recipient_id is required")
	}
	if p.ReportID == "" {
		return fmt.Errorf("report_id is required")
	}
	if p.Message == "" {
		return fmt.Errorf("message is required")
	}
	if p.Status == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}
