package ui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardexdev/cardex/internal/browse"
	"github.com/cardexdev/cardex/internal/prefs"
	"github.com/cardexdev/cardex/internal/state"
	"github.com/cardexdev/cardex/internal/tcgdex"
)

type stubFetcher struct {
	results []tcgdex.CardBrief
	card    *tcgdex.Card
}

func (s stubFetcher) SearchCards(ctx context.Context, name string) ([]tcgdex.CardBrief, error) {
	return s.results, nil
}

func (s stubFetcher) GetCard(ctx context.Context, id string) (*tcgdex.Card, error) {
	if s.card == nil {
		return nil, errors.New("unavailable")
	}
	return s.card, nil
}

var testBriefs = []tcgdex.CardBrief{
	{ID: "swsh3-136", Name: "Furret", Image: "img-furret"},
	{ID: "swsh3-137", Name: "Obstagoon", Image: "img-obstagoon"},
}

func newTestModel(t *testing.T, fetcher tcgdex.CardFetcher) (Model, *state.Store) {
	t.Helper()
	store := state.NewStore()
	ctrl, err := browse.New(context.Background(), browse.Options{
		Store:         store,
		Client:        fetcher,
		DefaultCardID: "swsh3-136",
		SearchDelay:   20 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("browse.New returned error: %v", err)
	}
	m := NewModel(Options{
		Store:      store,
		Controller: ctrl,
		ThemeName:  "Dracula",
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
	})
	return m, store
}

func pressKey(m Model, key tea.KeyType) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: key})
	return updated.(Model)
}

func typeRunes(m Model, text string) Model {
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func waitStore(t *testing.T, store *state.Store, what string, cond func(state.Snapshot) bool) state.Snapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		snap := store.Snapshot()
		if cond(snap) {
			return snap
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s; last snapshot %#v", what, snap)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestUpdate_TypingDrivesQuery(t *testing.T) {
	m, store := newTestModel(t, stubFetcher{results: testBriefs})

	m = typeRunes(m, "fur")

	if got := store.Snapshot().Query; got != "fur" {
		t.Fatalf("store query = %q, want fur", got)
	}
	if got := m.input.Value(); got != "fur" {
		t.Fatalf("input value = %q, want fur", got)
	}

	waitStore(t, store, "search results", func(s state.Snapshot) bool {
		return s.Search == state.Success && len(s.Results) == 2
	})
}

func TestUpdate_StoreChangeSyncsInput(t *testing.T) {
	m, store := newTestModel(t, stubFetcher{})

	m = typeRunes(m, "fur")

	// The controller clears the query on selection; the input must follow.
	store.Update(func(s *state.Snapshot) { s.Query = "" })
	updated, cmd := m.Update(storeUpdatedMsg{})
	m = updated.(Model)

	if m.input.Value() != "" {
		t.Fatalf("input value = %q after sync, want empty", m.input.Value())
	}
	if cmd == nil {
		t.Fatal("Update returned nil cmd, want re-armed store watch")
	}
}

func TestUpdate_CursorMovementSetsPreview(t *testing.T) {
	m, store := newTestModel(t, stubFetcher{})

	store.Update(func(s *state.Snapshot) { s.Results = testBriefs })
	updated, _ := m.Update(storeUpdatedMsg{})
	m = updated.(Model)

	m = pressKey(m, tea.KeyDown)
	snap := store.Snapshot()
	if snap.Preview == nil || snap.Preview.Name != "Obstagoon" {
		t.Fatalf("Preview = %#v, want Obstagoon", snap.Preview)
	}

	m = pressKey(m, tea.KeyUp)
	snap = store.Snapshot()
	if snap.Preview == nil || snap.Preview.Name != "Furret" {
		t.Fatalf("Preview = %#v, want Furret", snap.Preview)
	}

	// Cursor clamps at the list edges.
	m = pressKey(m, tea.KeyUp)
	if m.cursor != 0 {
		t.Fatalf("cursor = %d after up at top, want 0", m.cursor)
	}
}

func TestUpdate_EnterSelectsCardUnderCursor(t *testing.T) {
	hp := 110
	m, store := newTestModel(t, stubFetcher{
		card: &tcgdex.Card{ID: "swsh3-136", Name: "Furret", HP: &hp},
	})

	store.Update(func(s *state.Snapshot) { s.Results = testBriefs })
	updated, _ := m.Update(storeUpdatedMsg{})
	m = updated.(Model)

	pressKey(m, tea.KeyEnter)

	snap := waitStore(t, store, "selection", func(s state.Snapshot) bool {
		return s.Selected != nil
	})
	if snap.Selected.Name != "Furret" || snap.Selected.HP == nil {
		t.Fatalf("Selected = %#v, want full Furret record", snap.Selected)
	}
	if len(snap.Results) != 0 || snap.Query != "" {
		t.Fatalf("snapshot after select = %#v, want cleared search state", snap)
	}
}

func TestUpdate_EscWalksBack(t *testing.T) {
	m, store := newTestModel(t, stubFetcher{})

	// Esc with a selection clears the selection.
	store.Update(func(s *state.Snapshot) {
		s.Selected = &tcgdex.Card{ID: "swsh3-136", Name: "Furret"}
	})
	updated, _ := m.Update(storeUpdatedMsg{})
	m = updated.(Model)

	m = pressKey(m, tea.KeyEsc)
	if snap := store.Snapshot(); snap.Selected != nil {
		t.Fatalf("Selected = %#v after esc, want nil", snap.Selected)
	}

	// Esc with query text clears the query.
	updated, _ = m.Update(storeUpdatedMsg{})
	m = updated.(Model)
	m = typeRunes(m, "fur")
	m = pressKey(m, tea.KeyEsc)
	if m.input.Value() != "" {
		t.Fatalf("input value = %q after esc, want empty", m.input.Value())
	}
	if snap := store.Snapshot(); snap.Query != "" {
		t.Fatalf("store query = %q after esc, want empty", snap.Query)
	}

	// Esc with nothing to clear quits.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc on empty state returned nil cmd, want quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("esc on empty state = %T, want tea.QuitMsg", cmd())
	}
}

func TestUpdate_ThemeCyclePersists(t *testing.T) {
	m, _ := newTestModel(t, stubFetcher{})

	m = pressKey(m, tea.KeyCtrlT)
	if m.theme.Name != "Slate" {
		t.Fatalf("theme = %q after cycle, want Slate", m.theme.Name)
	}

	p, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load returned error: %v", err)
	}
	if p.Theme != "Slate" {
		t.Fatalf("persisted theme = %q, want Slate", p.Theme)
	}
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, stubFetcher{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned nil cmd, want quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c = %T, want tea.QuitMsg", cmd())
	}
}
