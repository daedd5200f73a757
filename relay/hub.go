package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"webpreview/log"
)

// ErrClosed is returned when posting to a closed hub.
var ErrClosed = errors.New("relay closed")

const (
	sendBuffer   = 16
	writeTimeout = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // frames are served from localhost
	},
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub relays control messages to browser frames connected over websocket and
// hands their state and info messages to the sink.
type Hub struct {
	sink func(any)

	mu      sync.Mutex
	clients map[*client]struct{}
	url     *string
	screens map[string]string
	closed  bool
}

// NewHub creates a hub. sink receives decoded State and Info values and must
// not block for long; the terminal host passes tea.Program.Send.
func NewHub(sink func(any)) *Hub {
	return &Hub{
		sink:    sink,
		clients: make(map[*client]struct{}),
	}
}

// Clients returns the number of attached frames.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Post broadcasts m to all frames. The latest URL and preset table are kept
// and replayed to frames that attach later.
func (h *Hub) Post(m Message) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode relay message: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrClosed
	}
	if m.Preview != nil {
		if m.Preview.URL != nil {
			u := *m.Preview.URL
			h.url = &u
		}
		if m.Preview.MediaScreen != nil {
			h.screens = m.Preview.MediaScreen
		}
	}
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			log.WarningLog.Printf("relay: dropping slow frame %s", c.id)
			h.dropLocked(c)
		}
	}
	return nil
}

// snapshotLocked returns the replay message for a new frame, or nil.
func (h *Hub) snapshotLocked() []byte {
	if h.url == nil && h.screens == nil {
		return nil
	}
	data, err := json.Marshal(Message{Preview: &Payload{URL: h.url, MediaScreen: h.screens}})
	if err != nil {
		return nil
	}
	return data
}

func (h *Hub) dropLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// ServeHTTP upgrades the request and serves one frame until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.ErrorLog.Printf("relay: websocket upgrade failed: %v", err)
		return
	}

	c := &client{id: uuid.NewString(), conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	if snap := h.snapshotLocked(); snap != nil {
		c.send <- snap
	}
	h.mu.Unlock()
	log.InfoLog.Printf("relay: frame %s attached", c.id)

	go h.writeLoop(c)
	h.readLoop(c)
}

func (h *Hub) writeLoop(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.WarningLog.Printf("relay: write to frame %s failed: %v", c.id, err)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (h *Hub) readLoop(c *client) {
	defer func() {
		h.mu.Lock()
		h.dropLocked(c)
		h.mu.Unlock()
		log.InfoLog.Printf("relay: frame %s detached", c.id)
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WarningLog.Printf("relay: read from frame %s failed: %v", c.id, err)
			}
			return
		}
		msg, err := DecodeInbound(data)
		if err != nil {
			log.WarningLog.Printf("relay: frame %s: %v", c.id, err)
			continue
		}
		if h.sink != nil {
			h.sink(msg)
		}
	}
}

// Close detaches every frame. Further posts fail with ErrClosed.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	for c := range h.clients {
		h.dropLocked(c)
	}
	return nil
}

// Handler returns the HTTP routes of the relay: the frame page at / and the
// websocket at /ws.
func (h *Hub) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(framePage))
	})
	r.GET("/ws", gin.WrapH(h))
	return r
}

// Serve listens on addr until ctx is done, then closes the hub.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.Handler()}

	errCh := make(chan error, 1)
	go func() {
		log.InfoLog.Printf("relay: listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		h.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		h.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("relay server: %w", err)
	}
}
