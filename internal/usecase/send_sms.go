package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"kolekta.io/kolekta/ent"
	entresident "kolekta.io/kolekta/ent/resident"
	entsmsmessage "kolekta.io/kolekta/ent/smsmessage"
	"kolekta.io/kolekta/internal/feed"
	"kolekta.io/kolekta/internal/jobs"
	apperrors "kolekta.io/kolekta/internal/pkg/errors"
	"kolekta.io/kolekta/internal/pkg/logger"
	"kolekta.io/kolekta/internal/service"
	"kolekta.io/kolekta/internal/sms"
)

// SendSMSInput represents a queued barangay announcement.
type SendSMSInput struct {
	RecipientGroup string
	Recipients     []string
	MessageType    string
	Body           string
	ScheduledFor   *time.Time
}

// SendSMSUseCase queues an SMS for dispatch. The row is written first,
// then a dispatch job is inserted; the worker records the real outcome.
type SendSMSUseCase struct {
	entClient   *ent.Client
	riverClient *river.Client[pgx.Tx]
	hub         *feed.Hub
}

// NewSendSMSUseCase creates a new SendSMSUseCase.
func NewSendSMSUseCase(entClient *ent.Client, riverClient *river.Client[pgx.Tx]) *SendSMSUseCase {
	return &SendSMSUseCase{entClient: entClient, riverClient: riverClient}
}

// WithFeed sets the change feed hub (optional dependency).
func (uc *SendSMSUseCase) WithFeed(hub *feed.Hub) *SendSMSUseCase {
	uc.hub = hub
	return uc
}

// Execute validates, resolves recipients, stores the row, and enqueues
// the dispatch job.
func (uc *SendSMSUseCase) Execute(ctx context.Context, input SendSMSInput) (*ent.SMSMessage, error) {
	msgType, err := parseMessageType(input.MessageType)
	if err != nil {
		return nil, err
	}

	body := strings.TrimSpace(input.Body)
	if body == "" {
		body = sms.Template(msgType)
	}
	if body == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "message body must not be empty")
	}
	if utf8.RuneCountInString(body) > sms.MaxBodyLength {
		return nil, apperrors.BadRequest(apperrors.CodeSMSTooLong,
			fmt.Sprintf("message exceeds %d characters", sms.MaxBodyLength))
	}

	group := strings.TrimSpace(input.RecipientGroup)
	if group == "" {
		group = "all"
	}

	recipients := input.Recipients
	if len(recipients) == 0 {
		recipients, err = uc.resolveGroup(ctx, group)
		if err != nil {
			return nil, err
		}
	}
	if len(recipients) == 0 {
		return nil, apperrors.BadRequest(apperrors.CodeSMSNoRecipients,
			"no recipients resolved for group "+group)
	}

	create := uc.entClient.SMSMessage.Create().
		SetID(generateID()).
		SetRecipientGroup(group).
		SetRecipients(recipients).
		SetMessageType(msgType).
		SetBody(body)
	if input.ScheduledFor != nil {
		create.SetScheduledFor(*input.ScheduledFor)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create sms message: %w", err)
	}

	var opts *river.InsertOpts
	if input.ScheduledFor != nil {
		opts = &river.InsertOpts{ScheduledAt: *input.ScheduledFor}
	}
	if _, err := uc.riverClient.Insert(ctx, jobs.SMSDispatchArgs{MessageID: row.ID}, opts); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeSMSSendFail,
			"failed to enqueue sms dispatch", 500)
	}

	if uc.hub != nil {
		uc.hub.Publish(ctx, feed.NewEvent(generateID(), feed.TableSMSMessages, feed.OpInsert, row.ID, row))
	}

	logger.Info("SMS queued",
		zap.String("message_id", row.ID),
		zap.String("recipient_group", group),
		zap.Int("recipients", len(recipients)),
		zap.String("type", string(msgType)),
	)

	return row, nil
}

// resolveGroup expands an audience label into phone numbers.
// "all" means every enabled account with a phone; anything else is
// matched against the resident's home purok.
func (uc *SendSMSUseCase) resolveGroup(ctx context.Context, group string) ([]string, error) {
	q := uc.entClient.Resident.Query().
		Where(
			entresident.EnabledEQ(true),
			entresident.PhoneNEQ(""),
		)
	if !strings.EqualFold(group, "all") {
		q = q.Where(entresident.PurokContainsFold(service.NormalizePurok(group)))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve recipient group %q: %w", group, err)
	}

	seen := make(map[string]struct{}, len(rows))
	phones := make([]string, 0, len(rows))
	for _, r := range rows {
		phone := strings.TrimSpace(r.Phone)
		if phone == "" {
			continue
		}
		if _, ok := seen[phone]; ok {
			continue
		}
		seen[phone] = struct{}{}
		phones = append(phones, phone)
	}
	return phones, nil
}

func parseMessageType(raw string) (entsmsmessage.MessageType, error) {
	t := entsmsmessage.MessageType(strings.ToLower(strings.TrimSpace(raw)))
	if raw == "" {
		return entsmsmessage.MessageTypeCustom, nil
	}
	if err := entsmsmessage.MessageTypeValidator(t); err != nil {
		return "", apperrors.BadRequest(apperrors.CodeValidationFailed,
			"unknown sms message type: "+raw)
	}
	return t, nil
}
