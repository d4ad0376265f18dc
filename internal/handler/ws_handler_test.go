package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ws "github.com/courselens/courselens-backend/internal/websocket"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// newStreamServer serves one upgraded connection through WSHandler.stream,
// fed from the given events channel.
func newStreamServer(t *testing.T, events chan *redis.Message) *httptest.Server {
	t.Helper()
	h := NewWSHandler(nil, zerolog.Nop(), nil)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		h.stream(conn, events, zerolog.Nop())
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dialStream(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestStreamRelaysEventsWhilePinging(t *testing.T) {
	const eventCount = 200

	events := make(chan *redis.Message, eventCount)
	payload := `{"event":"post_created","post":{"content":"` + strings.Repeat("x", 2048) + `"}}`
	for i := 0; i < eventCount; i++ {
		events <- &redis.Message{Payload: payload}
	}

	conn := dialStream(t, newStreamServer(t, events))

	// Pings race the relayed events; both must come from the same server
	// writer without tearing the connection down.
	pingDone := make(chan struct{})
	go func() {
		defer close(pingDone)
		for i := 0; i < 50; i++ {
			if err := conn.WriteJSON(ws.RequestEnvelope{Action: ws.ActionPing}); err != nil {
				return
			}
		}
	}()

	relayed, pongs := 0, 0
	conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	for relayed < eventCount {
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read after %d events, %d pongs: %v", relayed, pongs, err)
		}
		var frame struct {
			Event ws.Event `json:"event"`
		}
		if err := json.Unmarshal(data, &frame); err != nil {
			t.Fatalf("frame decode: %v", err)
		}
		switch frame.Event {
		case ws.EventPostCreated:
			relayed++
		case ws.EventPong:
			pongs++
		default:
			t.Fatalf("unexpected frame %s", data)
		}
	}
	<-pingDone

	if relayed != eventCount {
		t.Errorf("relayed %d events, want %d", relayed, eventCount)
	}
}

func TestStreamAnswersPing(t *testing.T) {
	conn := dialStream(t, newStreamServer(t, make(chan *redis.Message)))

	if err := conn.WriteJSON(ws.RequestEnvelope{Action: ws.ActionPing}); err != nil {
		t.Fatalf("write: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var frame struct {
		Event ws.Event `json:"event"`
	}
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read: %v", err)
	}
	if frame.Event != ws.EventPong {
		t.Errorf("event = %q, want %q", frame.Event, ws.EventPong)
	}
}

func TestStreamRejectsUnknownAction(t *testing.T) {
	conn := dialStream(t, newStreamServer(t, make(chan *redis.Message)))

	if err := conn.WriteJSON(ws.RequestEnvelope{Action: "subscribe"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var frame ws.ErrorResponse
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read: %v", err)
	}
	if frame.Event != ws.EventError {
		t.Errorf("event = %q, want %q", frame.Event, ws.EventError)
	}
	if frame.Error == "" {
		t.Error("error message missing")
	}
}
