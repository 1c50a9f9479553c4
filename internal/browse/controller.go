package browse

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/cardexdev/cardex/internal/debounce"
	"github.com/cardexdev/cardex/internal/state"
	"github.com/cardexdev/cardex/internal/tcgdex"
)

const (
	// DefaultSearchDelay is the quiet period a query must survive before a
	// search request fires.
	DefaultSearchDelay = 300 * time.Millisecond

	// minQueryRunes is the shortest query worth sending to the API.
	minQueryRunes = 3

	// searchErrorMessage is the fixed text shown when a search fails.
	// The UI does not distinguish transport errors from API errors.
	searchErrorMessage = "Search failed. Check your connection and try again."
)

// Options configure a Controller.
type Options struct {
	Store         *state.Store
	Client        tcgdex.CardFetcher
	DefaultCardID string
	SearchDelay   time.Duration // zero uses DefaultSearchDelay
}

// Controller owns the browse request lifecycle: debounced searches, detail
// fetches, the hover preview, and the default card slot. It is the only
// writer to the state store; the UI calls methods here and reads snapshots.
type Controller struct {
	ctx           context.Context
	store         *state.Store
	client        tcgdex.CardFetcher
	defaultCardID string

	search *debounce.Debouncer[string]

	// mu guards the sequence counters and orders response commits against
	// newer operations. A response is committed to the store only while
	// holding mu and only when its captured sequence is still current, so
	// a search superseded by a later keystroke or a selection can never
	// overwrite newer state, regardless of response arrival order.
	mu        sync.Mutex
	searchSeq uint64
	detailSeq uint64
}

// New builds a Controller. The context bounds every request the controller
// issues; cancelling it abandons all in-flight work.
func New(ctx context.Context, opts Options) (*Controller, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("browse controller requires a store")
	}
	if opts.Client == nil {
		return nil, fmt.Errorf("browse controller requires a card client")
	}
	delay := opts.SearchDelay
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	c := &Controller{
		ctx:           ctx,
		store:         opts.Store,
		client:        opts.Client,
		defaultCardID: opts.DefaultCardID,
	}
	c.search = debounce.New(delay, c.runSearch)
	return c, nil
}

// SetQuery records a new query value and schedules or suppresses the search
// accordingly. An empty query clears the result list immediately; queries
// shorter than three runes never reach the network.
func (c *Controller) SetQuery(query string) {
	c.invalidateSearch()

	switch n := utf8.RuneCountInString(query); {
	case n == 0:
		c.search.Stop()
		c.store.Update(func(s *state.Snapshot) {
			s.Query = ""
			s.Results = nil
			s.Preview = nil
			s.Search = state.Idle
			s.SearchError = ""
		})
	case n < minQueryRunes:
		c.search.Stop()
		c.store.Update(func(s *state.Snapshot) {
			s.Query = query
			s.Results = nil
			s.Preview = nil
			s.Search = state.Idle
			s.SearchError = ""
		})
	default:
		c.store.Update(func(s *state.Snapshot) {
			s.Query = query
			s.Search = state.Debouncing
			s.SearchError = ""
		})
		c.search.Call(query)
	}
}

// Select commits to a result: search state is cleared synchronously and the
// full record is fetched in the background. When the fetch fails the
// partial record stands in, so selecting always yields a card.
func (c *Controller) Select(brief tcgdex.CardBrief) {
	c.search.Stop()

	c.mu.Lock()
	c.searchSeq++
	c.detailSeq++
	seq := c.detailSeq
	c.mu.Unlock()

	c.store.Update(func(s *state.Snapshot) {
		s.Query = ""
		s.Results = nil
		s.Preview = nil
		s.Search = state.Idle
		s.SearchError = ""
		s.Detail = state.Loading
	})

	go func() {
		card, err := c.client.GetCard(c.ctx, brief.ID)
		if err != nil {
			log.Printf("card detail %s failed, keeping partial record: %v", brief.ID, err)
			card = brief.AsCard()
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if seq != c.detailSeq {
			return
		}
		c.store.Update(func(s *state.Snapshot) {
			s.Selected = card
			s.Detail = state.Idle
		})
	}()
}

// ClearSelection drops the selected card, returning the display to the
// default card. Calling it with no selection is a no-op.
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	c.detailSeq++
	c.mu.Unlock()

	c.store.Update(func(s *state.Snapshot) {
		s.Selected = nil
		s.Detail = state.Idle
	})
}

// SetPreview marks a result as hovered. No debounce; pointer moves are
// cheap and purely local.
func (c *Controller) SetPreview(brief tcgdex.CardBrief) {
	c.store.Update(func(s *state.Snapshot) {
		b := brief
		s.Preview = &b
	})
}

// ClearPreview drops the hover state.
func (c *Controller) ClearPreview() {
	c.store.Update(func(s *state.Snapshot) {
		s.Preview = nil
	})
}

// LoadDefaultCard fetches the configured startup card once. Failure is
// recorded as an explicit error state on the default slot; there is no
// retry.
func (c *Controller) LoadDefaultCard() {
	c.store.Update(func(s *state.Snapshot) {
		s.DefaultState = state.Loading
	})

	go func() {
		card, err := c.client.GetCard(c.ctx, c.defaultCardID)
		if err != nil {
			log.Printf("default card %s failed to load: %v", c.defaultCardID, err)
			c.store.Update(func(s *state.Snapshot) {
				s.DefaultState = state.Error
			})
			return
		}
		c.store.Update(func(s *state.Snapshot) {
			s.DefaultCard = card
			s.DefaultState = state.Success
		})
	}()
}

// invalidateSearch supersedes every scheduled or in-flight search.
func (c *Controller) invalidateSearch() {
	c.mu.Lock()
	c.searchSeq++
	c.mu.Unlock()
}

// runSearch is the debouncer callback: it owns the transition from
// Debouncing to Loading and issues the request for the text that survived
// the quiet period.
func (c *Controller) runSearch(query string) {
	c.mu.Lock()
	c.searchSeq++
	seq := c.searchSeq
	c.mu.Unlock()

	c.store.Update(func(s *state.Snapshot) {
		s.Search = state.Loading
	})

	go func() {
		briefs, err := c.client.SearchCards(c.ctx, query)

		c.mu.Lock()
		defer c.mu.Unlock()
		if seq != c.searchSeq {
			// A newer search or a selection superseded this response.
			return
		}
		if err != nil {
			log.Printf("card search %q failed: %v", query, err)
			c.store.Update(func(s *state.Snapshot) {
				s.Results = nil
				s.Preview = nil
				s.Search = state.Error
				s.SearchError = searchErrorMessage
			})
			return
		}
		if briefs == nil {
			briefs = []tcgdex.CardBrief{}
		}
		c.store.Update(func(s *state.Snapshot) {
			s.Results = briefs
			s.Preview = nil
			s.Search = state.Success
			s.SearchError = ""
		})
	}()
}
