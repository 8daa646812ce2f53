package board

import (
	"strings"
	"sync"

	"github.com/nfrund/adhdhub/internal/content"
)

// Board is the state behind one visitor's page: the visible section, the
// message list and the draft being composed. It is safe for concurrent use.
type Board struct {
	mu        sync.RWMutex
	messages  []Message
	activeTab content.Tab
	draft     string
}

// Snapshot is a consistent copy of a board's state, used for rendering.
type Snapshot struct {
	ActiveTab content.Tab
	Draft     string
	Messages  []Message
}

// New returns a board showing the default tab with the seed messages.
func New() *Board {
	return &Board{
		messages:  Seed(),
		activeTab: content.DefaultTab,
	}
}

// Submit appends text as a new message from SelfAuthor and clears the draft.
// Text that is empty after trimming is ignored and reported with ok == false;
// in that case neither the messages nor the draft change.
func (b *Board) Submit(text string) (msg Message, ok bool) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	msg = Message{
		ID:        len(b.messages) + 1,
		Author:    SelfAuthor,
		Body:      text,
		TimeLabel: JustNowLabel,
		Likes:     0,
	}
	b.messages = append(b.messages, msg)
	b.draft = ""
	return msg, true
}

// SelectTab makes tab the visible section.
func (b *Board) SelectTab(tab content.Tab) {
	b.mu.Lock()
	b.activeTab = tab
	b.mu.Unlock()
}

// ActiveTab returns the visible section.
func (b *Board) ActiveTab() content.Tab {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.activeTab
}

// SetDraft replaces the input buffer.
func (b *Board) SetDraft(text string) {
	b.mu.Lock()
	b.draft = text
	b.mu.Unlock()
}

// Draft returns the input buffer.
func (b *Board) Draft() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.draft
}

// Messages returns a copy of the messages in insertion order.
func (b *Board) Messages() []Message {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Message(nil), b.messages...)
}

// Len returns the number of messages.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.messages)
}

// Snapshot returns the whole state under a single lock.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Snapshot{
		ActiveTab: b.activeTab,
		Draft:     b.draft,
		Messages:  append([]Message(nil), b.messages...),
	}
}
