package content

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Item is one fact or tip.
type Item struct {
	Title  string `yaml:"title" validate:"required"`
	Detail string `yaml:"detail" validate:"required"`
}

// Group is a headed list of items inside a section.
type Group struct {
	Heading string `yaml:"heading" validate:"required"`
	Items   []Item `yaml:"items" validate:"required,min=1,dive"`
}

// Section is the static content shown for one tab.
type Section struct {
	Title  string  `yaml:"title" validate:"required"`
	Intro  string  `yaml:"intro"`
	Groups []Group `yaml:"groups" validate:"required,min=1,dive"`
}

// Catalog holds the content of every tab.
type Catalog struct {
	Sections map[Tab]Section `yaml:"sections" validate:"required,dive"`
}

var validate = validator.New()

// Validate checks that every tab has well-formed content and that no unknown tab is defined.
func (c *Catalog) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	for tab := range c.Sections {
		if !tab.Valid() {
			return fmt.Errorf("invalid catalog: %w: %q", ErrUnknownTab, tab)
		}
	}
	for _, tab := range Tabs() {
		if _, ok := c.Sections[tab]; !ok {
			return fmt.Errorf("invalid catalog: missing section %q", tab)
		}
	}
	return nil
}

// Section returns the content for tab.
func (c *Catalog) Section(tab Tab) (Section, bool) {
	s, ok := c.Sections[tab]
	return s, ok
}

// ItemCount returns the number of items in tab's section.
func (c *Catalog) ItemCount(tab Tab) int {
	n := 0
	for _, g := range c.Sections[tab].Groups {
		n += len(g.Items)
	}
	return n
}
