package site

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/docviewer/internal/viewer"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveRequest is the incoming WebSocket message format.
type liveRequest struct {
	Type   string `json:"type"`   // "navigate"
	Search string `json:"search"` // location.search of the new location
}

// liveEvent is the outgoing WebSocket message format. Content is set on
// every state after resolving, even when the rendered document is empty.
type liveEvent struct {
	Type    string           `json:"type"` // "state" or "error"
	Session string           `json:"session"`
	Seq     uint64           `json:"seq,omitempty"`
	State   viewer.State     `json:"state,omitempty"`
	Title   string           `json:"title,omitempty"`
	Content *string          `json:"content,omitempty"`
	Nav     []viewer.NavItem `json:"nav,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// liveConn serializes writes to one websocket.
type liveConn struct {
	id   string
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *liveConn) send(ev liveEvent) error {
	ev.Session = c.id
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(ev)
}

// liveView is the View of one cycle. Every transition is pushed to the
// client together with the regions written so far.
type liveView struct {
	viewer.Page
	conn   *liveConn
	query  string
	logger *zap.Logger
}

func (v *liveView) SetState(seq uint64, s viewer.State) {
	v.Page.SetState(seq, s)

	ev := liveEvent{Type: "state", Seq: seq, State: s}
	if s != viewer.Resolving {
		nav := v.Nav()
		viewer.ApplyFilter(v.query, nav)
		ev.Nav = nav
		content := string(v.Content())
		ev.Content = &content
		ev.Title = v.Title()
	}
	if err := v.conn.send(ev); err != nil {
		v.logger.Debug("live send failed", zap.Uint64("cycle", seq), zap.Error(err))
	}
}

func (s *Site) handleLive(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer ws.Close()

	conn := &liveConn{id: uuid.New().String(), conn: ws}
	logger := s.logger.With(zap.String("session", conn.id))
	logger.Debug("live session opened")

	// Cycles outlive the request context; they stop when the socket closes.
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
		logger.Debug("live session closed")
	}()

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read", zap.Error(err))
			}
			return
		}

		var req liveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendError(conn, "invalid message format")
			continue
		}

		switch req.Type {
		case "navigate":
			// No cycle is cancelled by a newer one; the client applies
			// events in arrival order.
			wg.Add(1)
			go func(search string) {
				defer wg.Done()
				s.controller.Run(ctx, search, &liveView{
					conn:   conn,
					query:  filterQuery(search),
					logger: logger,
				})
			}(req.Search)
		default:
			s.sendError(conn, "unknown message type: "+req.Type)
		}
	}
}

func (s *Site) sendError(conn *liveConn, message string) {
	if err := conn.send(liveEvent{Type: "error", Error: message}); err != nil {
		s.logger.Debug("live send failed", zap.Error(err))
	}
}

func filterQuery(search string) string {
	values, _ := url.ParseQuery(strings.TrimPrefix(search, "?"))
	return values.Get(viewer.FilterParam)
}
