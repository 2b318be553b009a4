package notification

import (
	"context"
	"fmt"
	"time"

	"kolekta.io/kolekta/ent"
	entnotification "kolekta.io/kolekta/ent/notification"
)

// Inbox exposes a resident's notification list.
type Inbox struct {
	client *ent.Client
}

// NewInbox creates a new Inbox.
func NewInbox(client *ent.Client) *Inbox {
	return &Inbox{client: client}
}

// List returns the user's notifications, newest first.
func (i *Inbox) List(ctx context.Context, userID string) ([]*ent.Notification, error) {
	rows, err := i.client.Notification.Query().
		Where(entnotification.UserIDEQ(userID)).
		Order(ent.Desc(entnotification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications for %s: %w", userID, err)
	}
	return rows, nil
}

// UnreadCount returns how many unread notifications the user has.
func (i *Inbox) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := i.client.Notification.Query().
		Where(
			entnotification.UserIDEQ(userID),
			entnotification.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications for %s: %w", userID, err)
	}
	return count, nil
}

// MarkRead marks one notification read. The user scope prevents marking
// someone else's row; a mismatched id is a no-op.
func (i *Inbox) MarkRead(ctx context.Context, userID, notificationID string) error {
	_, err := i.client.Notification.Update().
		Where(
			entnotification.IDEQ(notificationID),
			entnotification.UserIDEQ(userID),
		).
		SetRead(true).
		SetReadAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark notification %s read: %w", notificationID, err)
	}
	return nil
}

// MarkAllRead marks every unread notification read. Idempotent.
func (i *Inbox) MarkAllRead(ctx context.Context, userID string) (int, error) {
	n, err := i.client.Notification.Update().
		Where(
			entnotification.UserIDEQ(userID),
			entnotification.ReadEQ(false),
		).
		SetRead(true).
		SetReadAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read for %s: %w", userID, err)
	}
	return n, nil
}

// ClearAll deletes every notification the user has.
func (i *Inbox) ClearAll(ctx context.Context, userID string) (int, error) {
	n, err := i.client.Notification.Delete().
		Where(entnotification.UserIDEQ(userID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear notifications for %s: %w", userID, err)
	}
	return n, nil
}
