package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/courselens/courselens-backend/internal/config"
	"github.com/courselens/courselens-backend/internal/middleware"
	ws "github.com/courselens/courselens-backend/internal/websocket"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams live community-feed events to connected clients.
type WSHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// FeedStream godoc
// WS /ws/v1/feed/:className/stream
// Upgrades to WebSocket and relays the class's feed events from Redis
// PubSub. New posts and replies published by CommunityService arrive here
// without polling.
func (h *WSHandler) FeedStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	className := c.Param("className")

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().
		Int("user_id", claims.UserID).
		Str("class", className).
		Logger()
	wsLog.Info().Msg("Feed stream connected")

	sub := h.rdb.Subscribe(c.Request.Context(), config.CacheKey.FeedChannel(className))
	defer sub.Close()

	h.stream(conn, sub.Channel(), wsLog)
}

// stream relays feed events and answers control frames. The relay loop is
// the connection's only writer; the reader goroutine hands its replies over
// outbound so pongs never interleave with an in-flight event write.
func (h *WSHandler) stream(conn *websocket.Conn, events <-chan *redis.Message, log zerolog.Logger) {
	done := make(chan struct{})
	outbound := make(chan any, 8)

	// Reader goroutine: ping gets a pong, any other action an error frame;
	// a read failure ends the stream.
	go func() {
		defer close(done)
		for {
			var msg ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Warn().Err(err).Msg("Unexpected close")
				} else {
					log.Debug().Msg("Connection closed")
				}
				return
			}

			var reply any
			switch msg.Action {
			case ws.ActionPing:
				reply = ws.PongResponse{Event: ws.EventPong}
			default:
				reply = ws.ErrorResponse{Event: ws.EventError, Error: "unknown action"}
			}
			select {
			case outbound <- reply:
			default:
				// Drop the control reply rather than block the reader.
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case reply := <-outbound:
			if err := ws.WriteTyped(conn, reply); err != nil {
				log.Debug().Err(err).Msg("Control reply write failed")
				return
			}
		case msg, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Debug().Err(err).Msg("Feed relay write failed")
				return
			}
		}
	}
}
