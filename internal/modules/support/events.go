package support

import "github.com/nfrund/adhdhub/internal/pubsub"

// MessagePosted is published after a message is appended to a board.
// The body itself is not part of the event.
type MessagePosted struct {
	BoardID    string `json:"board_id"`
	MessageID  int    `json:"message_id"`
	BodyLength int    `json:"body_length"`
	Total      int    `json:"total"`
}

// TopicMessagePosted carries MessagePosted events.
var TopicMessagePosted = pubsub.NewEvent[MessagePosted](
	"support.message.posted",
	"A visitor posted a message to their board",
)
