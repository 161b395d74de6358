package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tagfold/tagfold/internal/logging"
	"github.com/tagfold/tagfold/internal/watch"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// hub fans change-event batches out to connected stream clients.
type hub struct {
	mu      sync.RWMutex
	clients map[string]chan []watch.Event
	logger  *logging.Logger
}

func newHub(logger *logging.Logger) *hub {
	return &hub{
		clients: make(map[string]chan []watch.Event),
		logger:  logger.Named("stream"),
	}
}

func (h *hub) register() (string, chan []watch.Event) {
	id := uuid.New().String()
	ch := make(chan []watch.Event, 16)
	h.mu.Lock()
	h.clients[id] = ch
	h.mu.Unlock()
	return id, ch
}

func (h *hub) unregister(id string) {
	h.mu.Lock()
	if ch, ok := h.clients[id]; ok {
		delete(h.clients, id)
		close(ch)
	}
	h.mu.Unlock()
}

// broadcast delivers a batch to every client, dropping it for clients
// whose buffer is full rather than blocking the translator.
func (h *hub) broadcast(batch []watch.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.clients {
		select {
		case ch <- batch:
		default:
			h.logger.Warn("dropping event batch for slow client", zap.String("client", id))
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	for id, ch := range h.clients {
		delete(h.clients, id)
		close(ch)
	}
	h.mu.Unlock()
}

// stream upgrades the connection and pushes structured change-event
// batches until the client goes away.
func (s *Server) stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	id, events := s.hub.register()
	defer s.hub.unregister(id)

	s.metrics.StreamClients.Inc()
	defer s.metrics.StreamClients.Dec()
	s.logger.Info("stream client connected", zap.String("client", id))

	// Reader goroutine: only there to observe the close handshake.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case batch, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(batch); err != nil {
				s.logger.Warn("stream write failed", zap.String("client", id), zap.Error(err))
				return
			}
		}
	}
}
