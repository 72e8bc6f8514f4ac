// Package stream broadcasts simulation frames to websocket clients.
//
// A [Hub] is a sim.Renderer: every frame passed to Render is encoded once as
// a JSON [Message] and queued to each connected client. Clients that fall
// behind lose frames rather than slowing the simulation down.
package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/san-kum/particles/internal/engine"
)

const (
	sendBuffer = 4
	writeWait  = 5 * time.Second
)

// Message is the wire form of one frame. Each point is x, y and the colour
// intensity in [0, 255].
type Message struct {
	Frame  int      `json:"frame"`
	Merges int      `json:"merges"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Points [][3]int `json:"points"`
}

func NewMessage(f engine.Frame, width, height int) Message {
	points := make([][3]int, len(f.Draws))
	for i, d := range f.Draws {
		points[i] = [3]int{d.X, d.Y, int(d.Color.R)}
	}
	return Message{Frame: f.Index, Merges: f.Merges, Width: width, Height: height, Points: points}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

type Hub struct {
	width, height int

	mu      sync.Mutex
	clients map[*client]struct{}
	dropped int
	closed  bool
}

// NewHub creates a hub for a width x height drawing surface.
func NewHub(width, height int) *Hub {
	return &Hub{
		width:   width,
		height:  height,
		clients: make(map[*client]struct{}),
	}
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped counts frames skipped for clients whose queue was full.
func (h *Hub) Dropped() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

func (h *Hub) Render(f engine.Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) == 0 {
		return
	}

	data, err := json.Marshal(NewMessage(f, h.width, h.height))
	if err != nil {
		log.Printf("encode frame %d: %v", f.Index, err)
		return
	}

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropped++
		}
	}
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		h.removeLocked(c)
	}
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// ServeWS upgrades the request and streams frames until the peer goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if _, ok := err.(websocket.HandshakeError); !ok {
			log.Println(err)
		}
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.add(c) {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		conn.Close()
		return
	}
	log.Printf("client %s connected", r.RemoteAddr)

	go h.writePump(c)
	h.readPump(c)
	log.Printf("client %s disconnected", r.RemoteAddr)
}

// readPump discards client messages and notices when the connection closes.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()

	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Println(err)
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
