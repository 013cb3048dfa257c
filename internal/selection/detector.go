package selection

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

// Route is the detector's verdict for a selection.
type Route int

const (
	// RouteNone means the selection is not eligible and nothing fires.
	RouteNone Route = iota
	// RouteExplain sends the selection into the explanation pipeline.
	RouteExplain
	// RouteContact diverts a selected email address to the contact
	// affordance instead of explaining it.
	RouteContact
)

func (r Route) String() string {
	switch r {
	case RouteExplain:
		return "explain"
	case RouteContact:
		return "contact"
	}
	return "none"
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Selection is a raw text-selection event from the capturing client.
type Selection struct {
	Text    string
	Anchor  *Node
	Context string
}

// Detector decides whether a selection should trigger an explanation.
// It remembers the last selection it routed and whether a result panel
// is open, so re-selecting the same text with the panel up does not
// re-fire, while re-selecting after closing does.
type Detector struct {
	mu        sync.Mutex
	last      string
	panelOpen bool
}

func NewDetector() *Detector {
	return &Detector{}
}

// PanelOpened records that a result panel is showing.
func (d *Detector) PanelOpened() {
	d.mu.Lock()
	d.panelOpen = true
	d.mu.Unlock()
}

// PanelClosed records dismissal of the result panel and clears the
// last-selection memory so the same text can re-trigger.
func (d *Detector) PanelClosed() {
	d.mu.Lock()
	d.panelOpen = false
	d.last = ""
	d.mu.Unlock()
}

// Evaluate applies the eligibility checks in order and returns the
// route. On RouteExplain the trimmed text becomes the new last-processed
// selection.
func (d *Detector) Evaluate(sel Selection) Route {
	text := strings.TrimSpace(sel.Text)

	if utf8.RuneCountInString(text) < 2 {
		return RouteNone
	}
	if emailPattern.MatchString(text) {
		return RouteContact
	}
	if len(strings.Fields(text)) > 2 {
		return RouteNone
	}
	if insideEditable(sel.Anchor) {
		return RouteNone
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if text == d.last && d.panelOpen {
		return RouteNone
	}
	d.last = text
	return RouteExplain
}
