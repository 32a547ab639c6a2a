package viewer

import (
	"html/template"
	"sync"
)

// Page is an in-memory View. It keeps the last value written to each region
// and the states it went through.
type Page struct {
	mu      sync.Mutex
	nav     []NavItem
	content template.HTML
	title   string
	states  []State
	seq     uint64
}

func (p *Page) SetNav(items []NavItem) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nav = append([]NavItem(nil), items...)
}

func (p *Page) SetContent(content template.HTML) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.content = content
}

func (p *Page) SetTitle(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.title = title
}

func (p *Page) SetState(seq uint64, s State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq = seq
	p.states = append(p.states, s)
}

// Nav returns a copy of the navigation items.
func (p *Page) Nav() []NavItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]NavItem(nil), p.nav...)
}

// Content returns the content region.
func (p *Page) Content() template.HTML {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.content
}

// Title returns the page title.
func (p *Page) Title() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title
}

// States returns the transitions observed so far.
func (p *Page) States() []State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]State(nil), p.states...)
}

// State returns the last observed transition, Idle if none.
func (p *Page) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.states) == 0 {
		return Idle
	}
	return p.states[len(p.states)-1]
}

// Seq returns the cycle number of the last observed transition.
func (p *Page) Seq() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seq
}
