package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"kolekta.io/kolekta/internal/feed"
)

// feedHeartbeatInterval keeps intermediaries from timing out idle
// streams.
const feedHeartbeatInterval = 15 * time.Second

// StreamFeed handles GET /feed as a server-sent event stream.
//
// Query params:
//
//	table    comma-separated table names; empty means every table
//	op       comma-separated INSERT/UPDATE/DELETE; empty means all
//	user_id  narrows notification events to one inbox
func (s *Server) StreamFeed(c *gin.Context) {
	tables := parseFeedTables(c.Query("table"))
	ops := parseFeedOps(c.Query("op"))

	var filter feed.RowFilter
	if userID := c.Query("user_id"); userID != "" {
		filter = func(e *feed.Event) bool {
			if e.Table != feed.TableNotifications {
				return true
			}
			var row struct {
				UserID string `json:"user_id"`
			}
			if err := json.Unmarshal(e.Row, &row); err != nil {
				// Ambiguous payload: deliver and let the client re-fetch.
				return true
			}
			return row.UserID == userID
		}
	}

	sub := s.hub.Subscribe(tables, ops, filter)
	defer sub.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	writeSSE(c.Writer, "connected", map[string]string{"type": "connected"})
	c.Writer.Flush()

	ctx := c.Request.Context()
	heartbeat := time.NewTicker(feedHeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			writeSSE(c.Writer, "heartbeat", map[string]string{
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			c.Writer.Flush()
		case e, ok := <-sub.Events():
			if !ok {
				return
			}
			writeSSE(c.Writer, "change", e)
			c.Writer.Flush()
		}
	}
}

func parseFeedTables(raw string) []feed.Table {
	if strings.TrimSpace(raw) == "" {
		return feed.AllTables()
	}
	var tables []feed.Table
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tables = append(tables, feed.Table(t))
		}
	}
	return tables
}

func parseFeedOps(raw string) []feed.Operation {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var ops []feed.Operation
	for _, part := range strings.Split(raw, ",") {
		if op := strings.ToUpper(strings.TrimSpace(part)); op != "" {
			ops = append(ops, feed.Operation(op))
		}
	}
	return ops
}

// writeSSE writes a single SSE event to the writer.
func writeSSE(w io.Writer, event string, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, string(jsonData))
}
