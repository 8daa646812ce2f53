package support

import (
	"strings"
	"testing"

	"github.com/nfrund/adhdhub/internal/board"
	"github.com/nfrund/adhdhub/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardView(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, BoardView(board.Seed(), "draft <b>").Render(&buf))

	html := buf.String()
	assert.Contains(t, html, `id="message-1"`)
	assert.Contains(t, html, `id="message-2"`)
	assert.Contains(t, html, "♥ 12")
	assert.Contains(t, html, `aria-label="8 likes"`)
	assert.Contains(t, html, `hx-post="/adhd/messages"`)
	assert.Contains(t, html, `hx-put="/adhd/draft"`)
	assert.Contains(t, html, `value="draft &lt;b&gt;"`, "draft text is escaped")
}

func TestTabPanel_MarksActiveTab(t *testing.T) {
	src, err := content.NewEmbeddedSource()
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, TabPanel(content.TabStrengths, src.Catalog()).Render(&buf))

	html := buf.String()
	assert.Equal(t, 3, strings.Count(html, `role="tab"`))
	assert.Equal(t, 1, strings.Count(html, `aria-selected="true"`))
	assert.Contains(t, html, `class="tab active" hx-get="/adhd/tabs/strengths"`)
}
