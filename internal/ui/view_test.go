package ui

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cardexdev/cardex/internal/state"
	"github.com/cardexdev/cardex/internal/tcgdex"
)

func TestWeaknessAndResistanceLines(t *testing.T) {
	w := tcgdex.Weakness{Type: "Fighting", Value: "×2"}
	if got := weaknessLine(w); got != "Weak to Fighting ×2" {
		t.Fatalf("weaknessLine = %q, want %q", got, "Weak to Fighting ×2")
	}

	r := tcgdex.Resistance{Type: "Psychic", Value: "-30"}
	if got := resistanceLine(r); got != "Resists Psychic -30" {
		t.Fatalf("resistanceLine = %q, want %q", got, "Resists Psychic -30")
	}

	// Missing value must not leave a trailing space.
	if got := weaknessLine(tcgdex.Weakness{Type: "Fire"}); got != "Weak to Fire" {
		t.Fatalf("weaknessLine = %q, want %q", got, "Weak to Fire")
	}
}

func TestAttackLine(t *testing.T) {
	a := tcgdex.Attack{
		Cost:   []string{"Colorless", "Colorless"},
		Name:   "Feelin' Fine",
		Damage: json.RawMessage(`"20+"`),
	}
	if got := attackLine(a); got != "[Colorless·Colorless] Feelin' Fine — 20+" {
		t.Fatalf("attackLine = %q", got)
	}

	bare := tcgdex.Attack{Name: "Tail Whip"}
	if got := attackLine(bare); got != "Tail Whip" {
		t.Fatalf("attackLine = %q, want bare name", got)
	}
}

func TestHPLabel(t *testing.T) {
	if got := hpLabel(&tcgdex.Card{}); got != "" {
		t.Fatalf("hpLabel without hp = %q, want empty", got)
	}
	hp := 110
	if got := hpLabel(&tcgdex.Card{HP: &hp}); got != "HP 110" {
		t.Fatalf("hpLabel = %q, want HP 110", got)
	}
}

func TestRenderCard_ShowsDetailFields(t *testing.T) {
	hp := 110
	retreat := 1
	card := &tcgdex.Card{
		ID:          "swsh3-136",
		Name:        "Furret",
		Image:       "https://assets.tcgdex.net/en/swsh/swsh3/136",
		HP:          &hp,
		Types:       []string{"Colorless"},
		Stage:       "Stage1",
		EvolveFrom:  "Sentret",
		Illustrator: "Mizue",
		Rarity:      "Uncommon",
		Retreat:     &retreat,
		Attacks: []tcgdex.Attack{
			{Cost: []string{"Colorless"}, Name: "Feelin' Fine", Effect: "Draw 3 cards."},
		},
		Weaknesses: []tcgdex.Weakness{{Type: "Fighting", Value: "×2"}},
		Set:        tcgdex.SetBrief{ID: "swsh3", Name: "Darkness Ablaze"},
	}

	out := renderCard(draculaTheme, draculaTheme.Styles(), card)
	for _, want := range []string{
		"Furret",
		"HP 110",
		"Weak to Fighting ×2",
		"Feelin' Fine",
		"Draw 3 cards.",
		"Retreat 1",
		"Darkness Ablaze",
		"Illus. Mizue",
		"/high.webp",
		"evolves from Sentret",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("renderCard output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCard_FallbackRecordOmitsAbsentFields(t *testing.T) {
	brief := tcgdex.CardBrief{ID: "swsh3-136", Name: "Furret", Image: "img"}
	out := renderCard(draculaTheme, draculaTheme.Styles(), brief.AsCard())

	if !strings.Contains(out, "Furret") {
		t.Fatalf("renderCard output missing name:\n%s", out)
	}
	if strings.Contains(out, "HP") {
		t.Fatalf("renderCard output shows HP for fallback record:\n%s", out)
	}
	if strings.Contains(out, "Weak to") {
		t.Fatalf("renderCard output shows weakness for fallback record:\n%s", out)
	}
}

func TestThemeLookup(t *testing.T) {
	if got := ThemeByName("Slate"); got.Name != "Slate" {
		t.Fatalf("ThemeByName(Slate) = %q", got.Name)
	}
	if got := ThemeByName("nope"); got.Name != themes[0].Name {
		t.Fatalf("ThemeByName(unknown) = %q, want %q", got.Name, themes[0].Name)
	}
	if got := NextTheme("Dracula"); got.Name != "Slate" {
		t.Fatalf("NextTheme(Dracula) = %q, want Slate", got.Name)
	}
	if got := NextTheme("Slate"); got.Name != "Dracula" {
		t.Fatalf("NextTheme(Slate) = %q, want wraparound to Dracula", got.Name)
	}
}

func TestSearchActive_SwitchesAreas(t *testing.T) {
	m := Model{theme: draculaTheme, styles: draculaTheme.Styles()}

	if m.searchActive() {
		t.Fatal("searchActive on empty snapshot, want card view")
	}

	m.snap = state.Snapshot{Query: "fur"}
	if !m.searchActive() {
		t.Fatal("searchActive = false with query, want true")
	}

	m.snap = state.Snapshot{Results: []tcgdex.CardBrief{{ID: "x"}}}
	if !m.searchActive() {
		t.Fatal("searchActive = false with results, want true")
	}
}
