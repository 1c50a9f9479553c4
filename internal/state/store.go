package state

import (
	"sync"

	"github.com/cardexdev/cardex/internal/tcgdex"
)

// RequestState tracks the lifecycle of one logical network operation.
// Search and detail fetches each own an independent instance.
type RequestState int

// Request lifecycle states.
const (
	Idle RequestState = iota
	Debouncing
	Loading
	Success
	Error
)

// String returns the lowercase state name, for logs.
func (r RequestState) String() string {
	switch r {
	case Idle:
		return "idle"
	case Debouncing:
		return "debouncing"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot represents the latest browse state available to the UI.
type Snapshot struct {
	Query       string
	Results     []tcgdex.CardBrief
	Search      RequestState
	SearchError string

	Preview *tcgdex.CardBrief

	Selected *tcgdex.Card
	Detail   RequestState

	DefaultCard  *tcgdex.Card
	DefaultState RequestState
}

// ActiveCard returns the card the single-card view should show: the
// selection when one exists, otherwise the default card (which may be nil
// while it loads or after a failed load).
func (s Snapshot) ActiveCard() *tcgdex.Card {
	if s.Selected != nil {
		return s.Selected
	}
	return s.DefaultCard
}

// Store coordinates concurrent updates to the snapshot. Writers mutate
// through Update; readers take value copies through Snapshot. Every update
// signals the watch channel so the UI can redraw.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	updates  chan struct{}
}

// NewStore returns a Store holding the zero snapshot.
func NewStore() *Store {
	return &Store{updates: make(chan struct{}, 1)}
}

// Update applies mutate to the snapshot under the write lock, then signals
// watchers. Signals coalesce: a watcher that has not drained the channel
// sees one wakeup for any number of updates.
func (s *Store) Update(mutate func(*Snapshot)) {
	s.mu.Lock()
	mutate(&s.snapshot)
	s.mu.Unlock()

	select {
	case s.updates <- struct{}{}:
	default:
	}
}

// Snapshot returns a copy of the current snapshot. The result slice and
// card pointers are cloned so callers cannot reach the stored state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Results = cloneResults(s.snapshot.Results)
	snap.Preview = cloneBrief(s.snapshot.Preview)
	snap.Selected = cloneCard(s.snapshot.Selected)
	snap.DefaultCard = cloneCard(s.snapshot.DefaultCard)
	return snap
}

// Watch returns the channel signalled after each update.
func (s *Store) Watch() <-chan struct{} {
	return s.updates
}

func cloneResults(briefs []tcgdex.CardBrief) []tcgdex.CardBrief {
	if len(briefs) == 0 {
		return nil
	}
	dup := make([]tcgdex.CardBrief, len(briefs))
	copy(dup, briefs)
	return dup
}

func cloneBrief(b *tcgdex.CardBrief) *tcgdex.CardBrief {
	if b == nil {
		return nil
	}
	dup := *b
	return &dup
}

// cloneCard copies the top-level struct only. Card records are immutable
// once received from the API, so sharing the inner slices is safe.
func cloneCard(c *tcgdex.Card) *tcgdex.Card {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
