// Package activity implements the operational activity feed.
//
// Activity rows are append-only records of who did what. Hard-delete is
// NOT allowed. The feed shown to officials is the last day of entries.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kolekta.io/kolekta/ent"
	entactivity "kolekta.io/kolekta/ent/activity"
	"kolekta.io/kolekta/internal/feed"
	"kolekta.io/kolekta/internal/pkg/logger"
)

// recentFetchLimit caps how many rows Recent pulls before applying the
// 24 hour cutoff in memory.
const recentFetchLimit = 100

// recentWindow is how far back the dashboard feed reaches.
const recentWindow = 24 * time.Hour

// Entry describes one activity record to append.
type Entry struct {
	Type       entactivity.Type
	Action     string
	ScheduleID string
	ReportID   string
	Actor      string
}

// Logger writes activity records to the database.
type Logger struct {
	client *ent.Client
	hub    *feed.Hub
}

// NewLogger creates a new activity Logger.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// WithFeed sets the change feed hub (optional dependency).
func (l *Logger) WithFeed(hub *feed.Hub) *Logger {
	l.hub = hub
	return l
}

// Append records an activity entry.
func (l *Logger) Append(ctx context.Context, e Entry) error {
	create := l.client.Activity.Create().
		SetID(generateActivityID()).
		SetType(e.Type).
		SetAction(e.Action)
	if e.ScheduleID != "" {
		create.SetScheduleID(e.ScheduleID)
	}
	if e.ReportID != "" {
		create.SetReportID(e.ReportID)
	}
	if e.Actor != "" {
		create.SetActor(e.Actor)
	}

	row, err := create.Save(ctx)
	if err != nil {
		logger.Error("Failed to write activity",
			zap.String("type", string(e.Type)),
			zap.String("action", e.Action),
			zap.Error(err),
		)
		return fmt.Errorf("write activity: %w", err)
	}

	if l.hub != nil {
		l.hub.Publish(ctx, feed.NewEvent(row.ID, feed.TableActivities, feed.OpInsert, row.ID, row))
	}
	return nil
}

// AppendTx records an activity entry inside an existing transaction.
// No feed event is published here; the caller publishes after commit.
func (l *Logger) AppendTx(ctx context.Context, tx *ent.Tx, e Entry) (*ent.Activity, error) {
	create := tx.Activity.Create().
		SetID(generateActivityID()).
		SetType(e.Type).
		SetAction(e.Action)
	if e.ScheduleID != "" {
		create.SetScheduleID(e.ScheduleID)
	}
	if e.ReportID != "" {
		create.SetReportID(e.ReportID)
	}
	if e.Actor != "" {
		create.SetActor(e.Actor)
	}
	return create.Save(ctx)
}

// Recent returns activity entries from the last 24 hours, newest first.
// Fetches a bounded page ordered by created_at and cuts in memory, so a
// quiet day returns everything and a busy day returns the newest page.
func (l *Logger) Recent(ctx context.Context) ([]*ent.Activity, error) {
	rows, err := l.client.Activity.Query().
		Order(ent.Desc(entactivity.FieldCreatedAt)).
		Limit(recentFetchLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent activities: %w", err)
	}

	cutoff := time.Now().Add(-recentWindow)
	recent := rows[:0]
	for _, row := range rows {
		if row.CreatedAt.After(cutoff) {
			recent = append(recent, row)
		}
	}
	return recent, nil
}

func generateActivityID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("act-%s", id.String())
}
