package websocket

import "github.com/courselens/courselens-backend/internal/model"

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventPostCreated  Event = "post_created"
	EventReplyCreated Event = "reply_created"
	EventError        Event = "error"
	EventPong         Event = "pong"
)

// FeedMessage is one live community-feed event, published on the class's
// Redis channel and relayed verbatim to every connected client.
type FeedMessage struct {
	Event Event        `json:"event"`
	Post  *model.Post  `json:"post,omitempty"`
	Reply *model.Reply `json:"reply,omitempty"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is the only client→server frame the feed stream accepts.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
