package board

import (
	"sync"
	"testing"

	"github.com/nfrund/adhdhub/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b := New()

	msgs := b.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Sarah M.", msgs[0].Author)
	assert.Equal(t, "Alex K.", msgs[1].Author)
	assert.Equal(t, []int{1, 2}, []int{msgs[0].ID, msgs[1].ID})
	assert.Equal(t, content.TabSymptoms, b.ActiveTab())
	assert.Empty(t, b.Draft())
}

func TestSubmit(t *testing.T) {
	t.Run("appends one message and clears the draft", func(t *testing.T) {
		b := New()
		b.SetDraft("Try a weighted blanket")

		msg, ok := b.Submit("Try a weighted blanket")
		require.True(t, ok)

		assert.Equal(t, Message{
			ID:        3,
			Author:    "You",
			Body:      "Try a weighted blanket",
			TimeLabel: "Just now",
			Likes:     0,
		}, msg)

		msgs := b.Messages()
		require.Len(t, msgs, 3)
		assert.Equal(t, msg, msgs[2])
		assert.Empty(t, b.Draft())
	})

	t.Run("ignores empty and whitespace-only text", func(t *testing.T) {
		for _, text := range []string{"", " ", "\t\n  "} {
			b := New()
			b.SetDraft("   ")

			_, ok := b.Submit(text)

			assert.False(t, ok, "text %q", text)
			assert.Equal(t, Seed(), b.Messages())
			assert.Equal(t, "   ", b.Draft())
		}
	})

	t.Run("keeps surrounding and internal whitespace", func(t *testing.T) {
		b := New()

		msg, ok := b.Submit("  two  spaces ")
		require.True(t, ok)
		assert.Equal(t, "  two  spaces ", msg.Body)
	})

	t.Run("allows duplicates", func(t *testing.T) {
		b := New()
		b.Submit("same")
		b.Submit("same")

		msgs := b.Messages()
		require.Len(t, msgs, 4)
		assert.Equal(t, 3, msgs[2].ID)
		assert.Equal(t, 4, msgs[3].ID)
	})
}

func TestSelectTab(t *testing.T) {
	b := New()
	for _, tab := range content.Tabs() {
		b.SelectTab(tab)
		assert.Equal(t, tab, b.ActiveTab())
	}
}

func TestMessagesReturnsCopy(t *testing.T) {
	b := New()
	msgs := b.Messages()
	msgs[0].Body = "changed"

	assert.NotEqual(t, "changed", b.Messages()[0].Body)
}

func TestSnapshot(t *testing.T) {
	b := New()
	b.SelectTab(content.TabStrategies)
	b.SetDraft("half written")

	snap := b.Snapshot()
	assert.Equal(t, content.TabStrategies, snap.ActiveTab)
	assert.Equal(t, "half written", snap.Draft)
	assert.Len(t, snap.Messages, 2)
}

func TestSubmit_Concurrent(t *testing.T) {
	b := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Submit("hello")
		}()
	}
	wg.Wait()

	msgs := b.Messages()
	require.Len(t, msgs, 52)
	for i, m := range msgs {
		assert.Equal(t, i+1, m.ID)
	}
}
