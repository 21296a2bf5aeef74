package console

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
)

const requestTimeout = 15 * time.Second

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Width = 40
	return ti
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ptrOrNil maps an empty optional field to null on the wire.
func ptrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func indexOf(v string, set []string) int {
	for i, s := range set {
		if s == v {
			return i
		}
	}
	return -1
}
