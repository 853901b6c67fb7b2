// Package page drives a search session the way the browser page does:
// query and filters are edited freely and only take effect on Submit.
package page

import (
	"context"
	"strings"
	"sync"

	"github.com/meghashyamc/ecssnav/models"
)

const unknownErrorMessage = "Search failed"

// State is a snapshot of the page.
type State struct {
	Query   string
	Filters models.Filters
	Results []models.Result
	Loading bool
	Error   string
}

type Page struct {
	mu       sync.Mutex
	state    State
	client   Client
	onChange func(State)
}

// New returns an idle page. onChange, if set, receives a snapshot after every
// state change.
func New(client Client, onChange func(State)) *Page {
	return &Page{
		client:   client,
		onChange: onChange,
		state:    State{Results: []models.Result{}},
	}
}

func (p *Page) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

func (p *Page) SetQuery(query string) {
	p.update(func(s *State) { s.Query = query })
}

func (p *Page) SetFilters(filters models.Filters) {
	p.update(func(s *State) { s.Filters = filters })
}

func (p *Page) ClearFilters() {
	p.update(func(s *State) { s.Filters = models.Filters{} })
}

// Submit runs one search with the current query and filters. It reports
// false without doing anything when the query is blank or a search is
// already in flight.
func (p *Page) Submit(ctx context.Context) bool {
	p.mu.Lock()
	if strings.TrimSpace(p.state.Query) == "" || p.state.Loading {
		p.mu.Unlock()
		return false
	}
	p.state.Loading = true
	p.state.Error = ""
	request := models.SearchRequest{Query: p.state.Query, Filters: p.state.Filters}
	snapshot := p.snapshot()
	p.mu.Unlock()
	p.notify(snapshot)

	response, err := p.client.Search(ctx, request)

	p.update(func(s *State) {
		s.Loading = false
		if err != nil {
			s.Error = err.Error()
			if s.Error == "" {
				s.Error = unknownErrorMessage
			}
			s.Results = []models.Result{}
			return
		}
		s.Results = response.Results
		if s.Results == nil {
			s.Results = []models.Result{}
		}
	})

	return true
}

func (p *Page) update(change func(*State)) {
	p.mu.Lock()
	change(&p.state)
	snapshot := p.snapshot()
	p.mu.Unlock()
	p.notify(snapshot)
}

func (p *Page) snapshot() State {
	snapshot := p.state
	snapshot.Results = append([]models.Result(nil), p.state.Results...)
	if snapshot.Results == nil {
		snapshot.Results = []models.Result{}
	}
	return snapshot
}

func (p *Page) notify(state State) {
	if p.onChange != nil {
		p.onChange(state)
	}
}
