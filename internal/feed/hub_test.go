package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kolekta.io/kolekta/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func recvEvent(t *testing.T, sub *Subscription) *Event {
	t.Helper()
	select {
	case e := <-sub.Events():
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestHub_DeliversToMatchingSubscriber(t *testing.T) {
	t.Parallel()

	hub := NewHub(8)
	sub := hub.Subscribe([]Table{TableSchedules}, nil, nil)
	defer sub.Close()

	hub.Publish(context.Background(), NewEvent("ev-1", TableSchedules, OpUpdate, "sched-1", map[string]string{
		"status": "completed",
	}))

	got := recvEvent(t, sub)
	require.Equal(t, TableSchedules, got.Table)
	require.Equal(t, OpUpdate, got.Op)
	require.Equal(t, "sched-1", got.RowID)

	var row map[string]string
	require.NoError(t, json.Unmarshal(got.Row, &row))
	require.Equal(t, "completed", row["status"])
}

func TestHub_TableAndOperationFiltering(t *testing.T) {
	t.Parallel()

	hub := NewHub(8)
	sub := hub.Subscribe([]Table{TableReports}, []Operation{OpInsert}, nil)
	defer sub.Close()

	ctx := context.Background()
	hub.Publish(ctx, NewEvent("ev-1", TableSchedules, OpInsert, "sched-1", nil)) // wrong table
	hub.Publish(ctx, NewEvent("ev-2", TableReports, OpDelete, "rep-1", nil))    // wrong op
	hub.Publish(ctx, NewEvent("ev-3", TableReports, OpInsert, "rep-2", nil))    // match

	got := recvEvent(t, sub)
	require.Equal(t, "ev-3", got.ID)
	require.Empty(t, sub.Events())
}

func TestHub_RowFilter(t *testing.T) {
	t.Parallel()

	hub := NewHub(8)
	sub := hub.Subscribe([]Table{TableNotifications}, nil, func(e *Event) bool {
		return e.RowID == "notif-2"
	})
	defer sub.Close()

	ctx := context.Background()
	hub.Publish(ctx, NewEvent("ev-1", TableNotifications, OpInsert, "notif-1", nil))
	hub.Publish(ctx, NewEvent("ev-2", TableNotifications, OpInsert, "notif-2", nil))

	got := recvEvent(t, sub)
	require.Equal(t, "notif-2", got.RowID)
	require.Empty(t, sub.Events())
}

func TestHub_SlowSubscriberDropsOldest(t *testing.T) {
	t.Parallel()

	hub := NewHub(2)
	sub := hub.Subscribe([]Table{TableActivities}, nil, nil)
	defer sub.Close()

	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		hub.Publish(ctx, NewEvent(fmt.Sprintf("ev-%d", i), TableActivities, OpInsert, fmt.Sprintf("act-%d", i), nil))
	}

	// Buffer depth 2: the two newest events survive, older ones are dropped.
	first := recvEvent(t, sub)
	second := recvEvent(t, sub)
	require.Equal(t, "ev-4", first.ID)
	require.Equal(t, "ev-5", second.ID)
	require.Empty(t, sub.Events())
}

func TestHub_CloseUnsubscribes(t *testing.T) {
	t.Parallel()

	hub := NewHub(8)
	sub := hub.Subscribe([]Table{TableSchedules}, nil, nil)
	require.Equal(t, 1, hub.SubscriberCount())

	sub.Close()
	sub.Close() // idempotent
	require.Equal(t, 0, hub.SubscriberCount())

	// Publishing after close must not panic.
	hub.Publish(context.Background(), NewEvent("ev-1", TableSchedules, OpInsert, "sched-1", nil))

	_, open := <-sub.Events()
	require.False(t, open)
}

func TestHub_PublishRespectsCancelledContext(t *testing.T) {
	t.Parallel()

	hub := NewHub(8)
	sub := hub.Subscribe([]Table{TableSchedules}, nil, nil)
	defer sub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	hub.Publish(ctx, NewEvent("ev-1", TableSchedules, OpInsert, "sched-1", nil))

	require.Empty(t, sub.Events())
}
