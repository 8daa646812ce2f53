package registry

import (
	"github.com/nfrund/adhdhub/internal/board"
	"github.com/nfrund/adhdhub/internal/content"
)

// Service keys shared between modules. Using constants prevents typos.
const (
	BoardStoreKey    Key[board.Store]     = "support.boards"
	ContentSourceKey Key[*content.Source] = "content.source"
)
