package service

import (
	"context"
	"fmt"
	"time"

	"kolekta.io/kolekta/ent"
	entsmsmessage "kolekta.io/kolekta/ent/smsmessage"
	apperrors "kolekta.io/kolekta/internal/pkg/errors"
)

// SMSService reads the outbound SMS history and manages its archive.
// Queueing new messages is a use case; this covers the read side.
type SMSService struct {
	client *ent.Client
}

// NewSMSService creates a new SMSService.
func NewSMSService(client *ent.Client) *SMSService {
	return &SMSService{client: client}
}

// History returns messages, newest first. archived selects between the
// active list and the archive.
func (s *SMSService) History(ctx context.Context, archived bool) ([]*ent.SMSMessage, error) {
	rows, err := s.client.SMSMessage.Query().
		Where(entsmsmessage.ArchivedEQ(archived)).
		Order(ent.Desc(entsmsmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sms history: %w", err)
	}
	return rows, nil
}

// SentToday counts messages delivered since local midnight.
func (s *SMSService) SentToday(ctx context.Context) (int, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, err := s.client.SMSMessage.Query().
		Where(
			entsmsmessage.StatusEQ(entsmsmessage.StatusSent),
			entsmsmessage.SentAtGTE(midnight),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count sms sent today: %w", err)
	}
	return count, nil
}

// SetArchived moves a message into or out of the archive.
func (s *SMSService) SetArchived(ctx context.Context, id string, archived bool) (*ent.SMSMessage, error) {
	row, err := s.client.SMSMessage.UpdateOneID(id).
		SetArchived(archived).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeSMSNotFound, "sms message not found")
		}
		return nil, fmt.Errorf("update sms message %s: %w", id, err)
	}
	return row, nil
}
