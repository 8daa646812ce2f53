package board

const (
	// SelfAuthor is the author label of every message submitted through the board.
	SelfAuthor = "You"
	// JustNowLabel is the time label given to submitted messages. It is never recomputed.
	JustNowLabel = "Just now"
)

// Message is a single entry on the board. TimeLabel is display text, not a timestamp.
// Likes is shown next to the message but nothing increments it.
type Message struct {
	ID        int    `json:"id"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	TimeLabel string `json:"time_label"`
	Likes     int    `json:"likes"`
}

// Seed returns the two messages every new board starts with, in display order.
func Seed() []Message {
	return []Message{
		{
			ID:        1,
			Author:    "Sarah M.",
			Body:      "Just discovered body doubling and it's been a game-changer for my productivity!",
			TimeLabel: "2 hours ago",
			Likes:     12,
		},
		{
			ID:        2,
			Author:    "Alex K.",
			Body:      "Does anyone else struggle with time blindness? Looking for tips on managing it.",
			TimeLabel: "5 hours ago",
			Likes:     8,
		},
	}
}
