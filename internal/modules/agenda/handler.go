package agenda

import (
	"log"
	"net/http"
	"time"

	"meetspace/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// displays are unauthenticated kiosks behind the reception desk;
	// origin checks add nothing here
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/agenda", h.Get)
	rg.GET("/agenda/ws", h.WebSocket)
}

// Get returns the current seven-day agenda as a one-shot snapshot.
func (h *Handler) Get(c *gin.Context) {
	days, err := h.service.Upcoming(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "AGENDA_ERROR", "could not load agenda")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"days": days})
}

// WebSocket upgrades a display connection and keeps it on the hub until
// the peer goes away. Each new display gets the agenda right away rather
// than waiting for the next refresh tick. The snapshot is written before
// the connection joins the hub: once registered, only the hub's
// Broadcast may write to it (gorilla allows a single concurrent writer).
func (h *Handler) WebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("agenda websocket upgrade failed: %v", err)
		return
	}

	if days, err := h.service.Upcoming(c.Request.Context(), time.Now()); err == nil {
		if err := conn.WriteJSON(NewAgendaEvent(days)); err != nil {
			conn.Close()
			return
		}
	}

	h.hub.Register(conn)
	defer func() {
		h.hub.Unregister(conn)
		conn.Close()
	}()

	// displays never send anything meaningful; the read loop only
	// notices the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
				websocket.CloseAbnormalClosure) {
				log.Printf("agenda websocket read error: %v", err)
			}
			return
		}
	}
}
