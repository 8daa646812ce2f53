package content

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tab names one of the page's three content sections.
type Tab string

const (
	TabSymptoms   Tab = "symptoms"
	TabStrengths  Tab = "strengths"
	TabStrategies Tab = "strategies"

	// DefaultTab is shown when a board is created.
	DefaultTab = TabSymptoms
)

// ErrUnknownTab is returned by ParseTab for names outside the fixed set.
var ErrUnknownTab = errors.New("unknown tab")

var titleCaser = cases.Title(language.English)

// Tabs returns the sections in display order.
func Tabs() []Tab {
	return []Tab{TabSymptoms, TabStrengths, TabStrategies}
}

// ParseTab converts a path or query value to a Tab.
func ParseTab(name string) (Tab, error) {
	tab := Tab(name)
	if !tab.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, name)
	}
	return tab, nil
}

// Valid reports whether t is one of the three sections.
func (t Tab) Valid() bool {
	switch t {
	case TabSymptoms, TabStrengths, TabStrategies:
		return true
	}
	return false
}

// Label is the text shown on the tab trigger.
func (t Tab) Label() string {
	return titleCaser.String(string(t))
}

func (t Tab) String() string { return string(t) }
