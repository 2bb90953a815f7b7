package subscription

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/utils"
	"github.com/prometheus/client_golang/prometheus"
)

// notification is the JSON-RPC 2.0 notification envelope a subscription
// payload is delivered in (§4.9), mirrored on rpc/v8/subscriptions.go's
// SubscriptionResponse/sendResponse pair without importing the
// dispatcher's unexported response type.
type notification struct {
	JSONRPC string             `json:"jsonrpc"`
	Method  string             `json:"method"`
	Params  notificationParams `json:"params"`
}

type notificationParams struct {
	Subscription string `json:"subscription"`
	Result       any    `json:"result"`
}

// entry is one live subscription's registry row.
type entry struct {
	id        ID
	topic     Topic
	session   SessionID
	sink      Sink
	filter    Filter
	client    ClientInfo
	stats     Stats
	onFailure int
}

// Manager is the dual-index subscriber registry and event router
// described in §4.8, grounded on neo-go pkg/rpc/server's
// subsLock/subscribers map and on juno's per-subscription cleanup flow
// in rpc/v8/subscriptions.go.
type Manager struct {
	mu sync.RWMutex

	byID         map[ID]*entry
	byTopic      map[Topic]map[ID]struct{}
	bySession    map[SessionID]map[ID]struct{}
	limiter      RateLimiter
	maxPerConn   int
	maxFailures  int
	pumpCh       chan SystemEvent
	pumpDone     chan struct{}
	pumpStopped  chan struct{}
	log          utils.SimpleLogger
	activeGauge  prometheus.Gauge
	droppedTotal *prometheus.CounterVec
}

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithMaxSubscriptionsPerConnection caps how many live subscriptions a
// single session may hold (§5); zero means unlimited.
func WithMaxSubscriptionsPerConnection(n int) Option {
	return func(m *Manager) { m.maxPerConn = n }
}

// WithMaxConsecutiveFailures sets how many consecutive SendFull outcomes
// a subscription tolerates before the manager force-removes it. A
// SendClosed outcome removes the subscription immediately.
func WithMaxConsecutiveFailures(n int) Option {
	return func(m *Manager) { m.maxFailures = n }
}

// NewManager constructs a Manager. pumpBuffer sizes the internal async
// event queue used by PublishAsync.
func NewManager(limiter RateLimiter, log utils.SimpleLogger, pumpBuffer int, opts ...Option) *Manager {
	m := &Manager{
		byID:        make(map[ID]*entry),
		byTopic:     make(map[Topic]map[ID]struct{}),
		bySession:   make(map[SessionID]map[ID]struct{}),
		limiter:     limiter,
		maxFailures: 3,
		pumpCh:      make(chan SystemEvent, pumpBuffer),
		pumpDone:    make(chan struct{}),
		pumpStopped: make(chan struct{}),
		log:         log,
		activeGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gateway_active_subscriptions",
			Help: "Number of currently registered subscriptions.",
		}),
		droppedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_subscription_events_dropped_total",
			Help: "Subscription events dropped, by reason.",
		}, []string{"reason"}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Collectors exposes the manager's prometheus collectors for
// registration by the composition root.
func (m *Manager) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.activeGauge, m.droppedTotal}
}

// Run starts the background event pump; it returns once Stop is called
// and the queue has been drained.
func (m *Manager) Run() {
	defer close(m.pumpStopped)
	for {
		select {
		case event := <-m.pumpCh:
			m.deliver(event)
		case <-m.pumpDone:
			for {
				select {
				case event := <-m.pumpCh:
					m.deliver(event)
				default:
					return
				}
			}
		}
	}
}

// Stop signals the pump to drain and exit, and blocks until it has.
func (m *Manager) Stop() {
	close(m.pumpDone)
	<-m.pumpStopped
}

// AddSubscription registers sink under topic for session, per the
// all-or-nothing insert algorithm of §4.8 step 1: the rate-limit and
// per-connection cap checks run first, and only a fully-built entry is
// ever made visible to readers.
func (m *Manager) AddSubscription(session SessionID, topic Topic, sink Sink, filter Filter, client ClientInfo) (ID, *jsonrpc.Error) {
	if m.limiter != nil && !m.limiter.Allow(client.RemoteAddr, "subscription:create") {
		return ID{}, jsonrpc.Err(jsonrpc.RateLimitExceeded, nil)
	}

	m.mu.RLock()
	current := len(m.bySession[session])
	m.mu.RUnlock()
	if m.maxPerConn > 0 && current >= m.maxPerConn {
		return ID{}, jsonrpc.Err(jsonrpc.TooManySubscriptions, nil)
	}

	e := &entry{
		id:      newID(),
		topic:   topic,
		session: session,
		sink:    sink,
		filter:  filter,
		client:  client,
	}
	e.stats.CreationTime = time.Now()

	m.mu.Lock()
	m.byID[e.id] = e
	if m.byTopic[topic] == nil {
		m.byTopic[topic] = make(map[ID]struct{})
	}
	m.byTopic[topic][e.id] = struct{}{}
	if m.bySession[session] == nil {
		m.bySession[session] = make(map[ID]struct{})
	}
	m.bySession[session][e.id] = struct{}{}
	m.mu.Unlock()

	m.activeGauge.Inc()
	return e.id, nil
}

// RemoveSubscription deregisters id. Removing an id that is already
// gone (e.g. due to a concurrent cleanup) leaves the registry unchanged
// and returns a NotFound error.
func (m *Manager) RemoveSubscription(id ID) *jsonrpc.Error {
	m.mu.Lock()
	e, ok := m.byID[id]
	if !ok {
		m.mu.Unlock()
		return jsonrpc.Err(jsonrpc.NotFound, "Subscription not found")
	}
	delete(m.byID, id)
	delete(m.byTopic[e.topic], id)
	if len(m.byTopic[e.topic]) == 0 {
		delete(m.byTopic, e.topic)
	}
	delete(m.bySession[e.session], id)
	if len(m.bySession[e.session]) == 0 {
		delete(m.bySession, e.session)
	}
	m.mu.Unlock()

	m.activeGauge.Dec()
	return nil
}

// RemoveSessionSubscriptions tears down every subscription owned by
// session, e.g. on WebSocket disconnect (§4.8).
func (m *Manager) RemoveSessionSubscriptions(session SessionID) {
	m.mu.RLock()
	ids := make([]ID, 0, len(m.bySession[session]))
	for id := range m.bySession[session] {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	for _, id := range ids {
		_ = m.RemoveSubscription(id)
	}
}

// Status reports the live stats for a subscription (getSubscriptionStatus).
func (m *Manager) Status(id ID) (Stats, *jsonrpc.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.byID[id]
	if !ok {
		return Stats{}, jsonrpc.Err(jsonrpc.NotFound, "Subscription not found")
	}
	return e.stats.snapshot(), nil
}

// Publish delivers event synchronously to every currently matching
// subscriber and returns once every attempt has been made.
func (m *Manager) Publish(event SystemEvent) {
	m.deliver(event)
}

// PublishAsync enqueues event for the background pump. When the queue
// is full the oldest queued event is dropped in favor of the new one,
// per the drop-oldest discipline used by feed.SubscribeKeepLast.
func (m *Manager) PublishAsync(event SystemEvent) {
	select {
	case m.pumpCh <- event:
		return
	default:
	}
	select {
	case <-m.pumpCh:
		m.droppedTotal.WithLabelValues("queue_full").Inc()
	default:
	}
	select {
	case m.pumpCh <- event:
	default:
	}
}

// deliver runs the per-subscriber filter/rate-limit/send pipeline of
// §4.8 step 6. The subscriber list is snapshotted under a read lock and
// released before any sink I/O is attempted, so a slow or misbehaving
// sink never blocks registry mutations.
func (m *Manager) deliver(event SystemEvent) {
	topic := event.Topic()

	m.mu.RLock()
	ids := m.byTopic[topic]
	snapshot := make([]*entry, 0, len(ids))
	for id := range ids {
		snapshot = append(snapshot, m.byID[id])
	}
	m.mu.RUnlock()

	for _, e := range snapshot {
		if e.filter != nil && !e.filter.Matches(event) {
			continue
		}
		if m.limiter != nil && !m.limiter.Allow(e.client.RemoteAddr, "subscription:"+string(topic)) {
			m.recordDrop(e.id, "rate_limit")
			continue
		}

		payload := event
		var body any = event
		if e.filter != nil {
			body = e.filter.Project(payload)
		}
		data, err := json.Marshal(notification{
			JSONRPC: "2.0",
			Method:  "subscription_" + string(topic),
			Params:  notificationParams{Subscription: e.id.String(), Result: body},
		})
		if err != nil {
			m.log.Errorw("failed to marshal subscription payload", "subscription", e.id.String(), "err", err)
			continue
		}

		switch e.sink.TrySend(data) {
		case SendOK:
			m.recordDelivered(e.id)
		case SendFull:
			m.recordDrop(e.id, "buffer_full")
			m.bumpFailure(e.id)
		case SendClosed:
			_ = m.RemoveSubscription(e.id)
		}
	}
}

func (m *Manager) recordDelivered(id ID) {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.byID[id]; ok {
		e.stats.EventsProcessed++
		e.stats.LastEventTime = &now
		e.onFailure = 0
	}
}

func (m *Manager) recordDrop(id ID, reason string) {
	m.droppedTotal.WithLabelValues(reason).Inc()
	m.mu.Lock()
	e, ok := m.byID[id]
	if ok {
		switch reason {
		case "buffer_full":
			e.stats.EventsDroppedBuffer++
		case "rate_limit":
			e.stats.EventsDroppedRateLimit++
		}
	}
	m.mu.Unlock()
}

// bumpFailure force-removes a subscription once it has exceeded the
// consecutive-failure threshold, so a permanently wedged client does
// not accumulate state forever.
func (m *Manager) bumpFailure(id ID) {
	m.mu.Lock()
	e, ok := m.byID[id]
	if !ok {
		m.mu.Unlock()
		return
	}
	e.onFailure++
	exceeded := m.maxFailures > 0 && e.onFailure >= m.maxFailures
	m.mu.Unlock()
	if exceeded {
		_ = m.RemoveSubscription(id)
	}
}
