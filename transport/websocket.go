package transport

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/subscription"
	"github.com/dusk-network/rusk/utils"
	"github.com/google/uuid"
	"nhooyr.io/websocket"
)

// WSConfig mirrors §6.3's ws.* keys.
type WSConfig struct {
	BindAddress     string
	Path            string
	MaxMessageSize  int64
	MaxConnections  int
	IdleTimeout     time.Duration
	SendQueueDepth  int
}

// sessionCleaner is the minimal surface WSServer needs from the
// Subscription Manager on disconnect.
type sessionCleaner interface {
	RemoveSessionSubscriptions(session subscription.SessionID)
}

// WSServer is the WebSocket facade: one Session per accepted socket,
// each a jsonrpc.Conn for binding subscribe calls and a
// subscription.Sink for non-blocking event delivery (§4.9, §GLOSSARY).
type WSServer struct {
	cfg     WSConfig
	rpc     *jsonrpc.Server
	manager sessionCleaner
	log     utils.SimpleLogger
	sem     chan struct{}
}

// NewWSServer builds a WSServer dispatching messages through rpc and
// deregistering a session's subscriptions from manager on disconnect.
func NewWSServer(cfg WSConfig, rpc *jsonrpc.Server, manager sessionCleaner, log utils.SimpleLogger) *WSServer {
	var sem chan struct{}
	if cfg.MaxConnections > 0 {
		sem = make(chan struct{}, cfg.MaxConnections)
	}
	return &WSServer{cfg: cfg, rpc: rpc, manager: manager, log: log, sem: sem}
}

func (s *WSServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.sem != nil {
		select {
		case s.sem <- struct{}{}:
			defer func() { <-s.sem }()
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.log.Warnw("websocket accept failed", "err", err)
		return
	}
	if s.cfg.MaxMessageSize > 0 {
		c.SetReadLimit(s.cfg.MaxMessageSize)
	}

	sessionID := subscription.SessionID(uuid.NewString())
	conn := newWSConn(c, s.cfg.SendQueueDepth, s.log)
	defer func() {
		conn.close()
		s.manager.RemoveSessionSubscriptions(sessionID)
		_ = c.Close(websocket.StatusNormalClosure, "")
	}()

	info := jsonrpc.ClientInfo{
		RemoteAddr:    r.RemoteAddr,
		SessionID:     string(sessionID),
		VersionHeader: r.Header.Get("Rusk-Version"),
	}

	for {
		readCtx := r.Context()
		if s.cfg.IdleTimeout > 0 {
			var cancel context.CancelFunc
			readCtx, cancel = context.WithTimeout(readCtx, s.cfg.IdleTimeout)
			defer cancel()
		}

		_, data, err := c.Read(readCtx)
		if err != nil {
			return
		}

		ctx := jsonrpc.ContextWithClientInfo(r.Context(), info)
		ctx = jsonrpc.ContextWithConn(ctx, conn)
		resp, err := s.rpc.Handle(ctx, data)
		if err != nil {
			s.log.Warnw("dispatch failed", "session", sessionID, "err", err)
			continue
		}
		if resp == nil {
			continue
		}
		if _, err := conn.Write(resp); err != nil {
			return
		}
	}
}

// wsConn adapts a *websocket.Conn to jsonrpc.Conn (synchronous replies
// to the calling request) and subscription.Sink (non-blocking
// subscription event delivery) with a single dedicated writer goroutine
// serializing all frames onto the socket.
type wsConn struct {
	c       *websocket.Conn
	queue   chan []byte
	done    chan struct{}
	closed  atomic.Bool
	log     utils.SimpleLogger
}

func newWSConn(c *websocket.Conn, queueDepth int, log utils.SimpleLogger) *wsConn {
	if queueDepth <= 0 {
		queueDepth = 32
	}
	w := &wsConn{c: c, queue: make(chan []byte, queueDepth), done: make(chan struct{}), log: log}
	go w.writeLoop()
	return w
}

func (w *wsConn) writeLoop() {
	defer close(w.done)
	for payload := range w.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := w.c.Write(ctx, websocket.MessageText, payload)
		cancel()
		if err != nil {
			w.log.Warnw("websocket write failed", "err", err)
			w.closed.Store(true)
			return
		}
	}
}

// Write implements jsonrpc.Conn: it enqueues onto the same serialized
// writer the Sink path uses, so a direct RPC reply and a subscription
// notification to the same socket never interleave mid-frame.
func (w *wsConn) Write(p []byte) (int, error) {
	if w.closed.Load() {
		return 0, errConnClosed
	}
	select {
	case w.queue <- append([]byte(nil), p...):
		return len(p), nil
	default:
		return 0, errQueueFull
	}
}

// Equal implements jsonrpc.Conn.
func (w *wsConn) Equal(other jsonrpc.Conn) bool {
	o, ok := other.(*wsConn)
	return ok && o == w
}

// TrySend implements subscription.Sink.
func (w *wsConn) TrySend(payload []byte) subscription.SendResult {
	if w.closed.Load() {
		return subscription.SendClosed
	}
	select {
	case w.queue <- payload:
		return subscription.SendOK
	default:
		return subscription.SendFull
	}
}

func (w *wsConn) close() {
	if !w.closed.CompareAndSwap(false, true) {
		return
	}
	close(w.queue)
	<-w.done
}

type wsError string

func (e wsError) Error() string { return string(e) }

const (
	errConnClosed = wsError("websocket connection closed")
	errQueueFull  = wsError("websocket send queue full")
)
