// Package feed distributes row change events to in-process subscribers.
//
// Writers publish one event per committed row change; subscribers (SSE
// clients, dashboards) receive at-least-once delivery per live
// subscription. Consumers must tolerate duplicates and re-fetch state
// on reconnect, the feed is a cache-invalidation hint, not a ledger.
package feed

import (
	"encoding/json"
	"time"
)

// Table identifies the logical table a change event belongs to.
type Table string

const (
	TableSchedules     Table = "schedules"
	TableActivities    Table = "activities"
	TableReports       Table = "reports"
	TableReportStatus  Table = "report_status"
	TableNotifications Table = "notifications"
	TableFeedback      Table = "feedback"
	TableSMSMessages   Table = "sms_messages"
)

// AllTables returns every feed table, for subscribe-to-everything
// consumers.
func AllTables() []Table {
	return []Table{
		TableSchedules,
		TableActivities,
		TableReports,
		TableReportStatus,
		TableNotifications,
		TableFeedback,
		TableSMSMessages,
	}
}

// Operation is the kind of row change.
type Operation string

const (
	OpInsert Operation = "INSERT"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
)

// Event is a single committed row change.
type Event struct {
	ID         string          `json:"id"`
	Table      Table           `json:"table"`
	Op         Operation       `json:"op"`
	RowID      string          `json:"row_id"`
	Row        json.RawMessage `json:"row,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewEvent builds an Event with the row snapshot marshalled to JSON.
// A row that fails to marshal is published without a snapshot; the
// table/op/row_id triple alone is enough for subscribers to re-fetch.
func NewEvent(id string, table Table, op Operation, rowID string, row interface{}) *Event {
	e := &Event{
		ID:         id,
		Table:      table,
		Op:         op,
		RowID:      rowID,
		OccurredAt: time.Now().UTC(),
	}
	if row != nil {
		if data, err := json.Marshal(row); err == nil {
			e.Row = data
		}
	}
	return e
}
