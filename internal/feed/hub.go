package feed

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"kolekta.io/kolekta/internal/pkg/logger"
	"kolekta.io/kolekta/internal/pkg/worker"
)

// RowFilter narrows a subscription to specific rows. A nil filter
// matches every row of the subscribed tables.
type RowFilter func(e *Event) bool

// Subscription is one registered consumer of the change feed.
// Events arrive on Events() until Close is called. The channel is
// buffered; when a slow consumer fills it, the oldest buffered event
// is dropped to make room so publishers never block.
type Subscription struct {
	id     uint64
	ch     chan *Event
	tables map[Table]struct{}
	ops    map[Operation]struct{}
	filter RowFilter

	hub       *Hub
	closeOnce sync.Once
}

// Events returns the subscriber's event channel.
func (s *Subscription) Events() <-chan *Event {
	return s.ch
}

// Close unregisters the subscription and closes its channel.
// Safe to call more than once.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.hub.remove(s.id)
		close(s.ch)
	})
}

func (s *Subscription) matches(e *Event) bool {
	if _, ok := s.tables[e.Table]; !ok {
		return false
	}
	if len(s.ops) > 0 {
		if _, ok := s.ops[e.Op]; !ok {
			return false
		}
	}
	if s.filter != nil && !s.filter(e) {
		return false
	}
	return true
}

// Hub fans committed row changes out to subscribers.
// Delivery is best-effort per live subscription: publishing never
// blocks and never fails the write that triggered the event.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]*Subscription
	nextID uint64
	buffer int
	pools  *worker.Pools
}

// NewHub creates a Hub. buffer is the per-subscriber channel depth.
func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		subs:   make(map[uint64]*Subscription),
		buffer: buffer,
	}
}

// Subscribe registers a consumer for the given tables and operations.
// An empty ops slice means all operations. The returned Subscription
// must be closed by the caller; there is no implicit timeout.
func (h *Hub) Subscribe(tables []Table, ops []Operation, filter RowFilter) *Subscription {
	sub := &Subscription{
		ch:     make(chan *Event, h.buffer),
		tables: make(map[Table]struct{}, len(tables)),
		ops:    make(map[Operation]struct{}, len(ops)),
		filter: filter,
		hub:    h,
	}
	for _, t := range tables {
		sub.tables[t] = struct{}{}
	}
	for _, op := range ops {
		sub.ops[op] = struct{}{}
	}

	h.mu.Lock()
	h.nextID++
	sub.id = h.nextID
	h.subs[sub.id] = sub
	h.mu.Unlock()

	return sub
}

// WithDispatch offloads fan-out to the dispatch worker pool. Without
// it delivery runs on the publisher's goroutine. Pooled delivery gives
// no cross-event ordering; subscribers re-fetch on ambiguity.
func (h *Hub) WithDispatch(pools *worker.Pools) *Hub {
	h.pools = pools
	return h
}

// Publish delivers an event to every matching subscriber.
// When a subscriber's buffer is full the oldest buffered event is
// dropped so the newest state change still gets through.
func (h *Hub) Publish(ctx context.Context, e *Event) {
	select {
	case <-ctx.Done():
		return
	default:
	}

	if h.pools != nil {
		if err := h.pools.SubmitDetached("dispatch", func(context.Context) {
			h.deliver(e)
		}); err == nil {
			return
		}
		// Pool saturated or closed: deliver inline rather than drop.
	}
	h.deliver(e)
}

func (h *Hub) deliver(e *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		if !sub.matches(e) {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			// Full buffer: drop the oldest event, then retry once.
			select {
			case dropped := <-sub.ch:
				logger.Warn("Feed subscriber lagging, dropped oldest event",
					zap.Uint64("subscription_id", sub.id),
					zap.String("table", string(dropped.Table)),
					zap.String("row_id", dropped.RowID),
				)
			default:
			}
			select {
			case sub.ch <- e:
			default:
			}
		}
	}
}

// SubscriberCount returns the number of live subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	delete(h.subs, id)
	h.mu.Unlock()
}
