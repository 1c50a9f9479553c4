package ui

import (
	"fmt"
	"strings"

	"github.com/cardexdev/cardex/internal/state"
	"github.com/cardexdev/cardex/internal/tcgdex"
)

// View renders the whole screen: header, search box, then either the
// result list or the single-card view, and a key help footer.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.styles.MutedText.Render("Search: "))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.searchActive() {
		b.WriteString(m.renderSearchArea())
	} else {
		b.WriteString(m.renderCardArea())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// searchActive reports whether the screen should show search results
// instead of the single-card view.
func (m Model) searchActive() bool {
	return m.snap.Query != "" || len(m.snap.Results) > 0
}

func (m Model) renderHeader() string {
	title := m.styles.Logo.Render("cardex")
	sub := m.styles.FaintText.Render("  ·  TCGdex card browser")
	return m.styles.Header.Render(title + sub)
}

func (m Model) renderFooter() string {
	help := "type to search  ·  ↑/↓ preview  ·  enter select  ·  esc back  ·  ctrl+t theme  ·  ctrl+c quit"
	return m.styles.Footer.Render(help)
}

func (m Model) renderSearchArea() string {
	switch m.snap.Search {
	case state.Debouncing, state.Loading:
		return m.spin.View() + m.styles.MutedText.Render(" Searching…")
	case state.Error:
		return m.styles.DangerText.Render(m.snap.SearchError)
	}

	if len(m.snap.Results) == 0 {
		if m.snap.Search == state.Success {
			return m.styles.MutedText.Render("No cards match.")
		}
		// Query too short to search yet.
		return m.styles.FaintText.Render("Keep typing — three characters start a search.")
	}

	var b strings.Builder
	count := fmt.Sprintf("%d result(s)", len(m.snap.Results))
	b.WriteString(m.styles.MutedText.Render(count))
	b.WriteString("\n")
	for i, brief := range m.snap.Results {
		line := brief.Name + "  " + m.styles.FaintText.Render(brief.ID)
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("▸ " + line))
		} else {
			b.WriteString(m.styles.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if p := m.snap.Preview; p != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.AccentText.Render("Preview: " + p.Name))
		if url := p.ImageURL(tcgdex.QualityLow); url != "" {
			b.WriteString("\n")
			b.WriteString(m.styles.FaintText.Render(truncate(url, 72)))
		}
	}
	return b.String()
}

func (m Model) renderCardArea() string {
	if m.snap.Detail == state.Loading {
		return m.spin.View() + m.styles.MutedText.Render(" Loading card…")
	}
	if card := m.snap.ActiveCard(); card != nil {
		return renderCard(m.theme, m.styles, card)
	}

	// Nothing selected and the default slot has no card yet.
	switch m.snap.DefaultState {
	case state.Error:
		return m.styles.DangerText.Render("Default card failed to load.")
	default:
		return m.spin.View() + m.styles.MutedText.Render(" Loading…")
	}
}

// renderCard renders the single-card detail view.
func renderCard(theme Theme, styles Styles, card *tcgdex.Card) string {
	var b strings.Builder

	b.WriteString(styles.CardTitle.Render(card.Name))
	if label := hpLabel(card); label != "" {
		b.WriteString("   " + styles.SuccessText.Render(label))
	}
	for _, energy := range card.Types {
		b.WriteString("   " + theme.TypeStyle(energy).Render(energy))
	}
	b.WriteString("\n")

	if card.Stage != "" {
		line := card.Stage
		if card.EvolveFrom != "" {
			line += " — evolves from " + card.EvolveFrom
		}
		b.WriteString(styles.MutedText.Render(line))
		b.WriteString("\n")
	}

	if url := card.ImageURL(tcgdex.QualityHigh); url != "" {
		b.WriteString(styles.FaintText.Render(truncate(url, 72)))
		b.WriteString("\n")
	}

	if len(card.Attacks) > 0 {
		b.WriteString("\n")
		for _, attack := range card.Attacks {
			b.WriteString(styles.Text.Render(attackLine(attack)))
			b.WriteString("\n")
			if attack.Effect != "" {
				b.WriteString(styles.MutedText.Render("  " + truncate(attack.Effect, 76)))
				b.WriteString("\n")
			}
		}
	}

	if len(card.Weaknesses) > 0 || len(card.Resistances) > 0 || card.Retreat != nil {
		b.WriteString("\n")
	}
	for _, w := range card.Weaknesses {
		b.WriteString(styles.DangerText.Render(weaknessLine(w)))
		b.WriteString("\n")
	}
	for _, r := range card.Resistances {
		b.WriteString(styles.SuccessText.Render(resistanceLine(r)))
		b.WriteString("\n")
	}
	if card.Retreat != nil {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("Retreat %d", *card.Retreat)))
		b.WriteString("\n")
	}

	if footer := cardFooter(card); footer != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(footer))
	}
	return b.String()
}

func hpLabel(card *tcgdex.Card) string {
	if card.HP == nil {
		return ""
	}
	return fmt.Sprintf("HP %d", *card.HP)
}

func weaknessLine(w tcgdex.Weakness) string {
	return strings.TrimSpace("Weak to " + w.Type + " " + w.Value)
}

func resistanceLine(r tcgdex.Resistance) string {
	return strings.TrimSpace("Resists " + r.Type + " " + r.Value)
}

func attackLine(a tcgdex.Attack) string {
	var parts []string
	if len(a.Cost) > 0 {
		parts = append(parts, "["+strings.Join(a.Cost, "·")+"]")
	}
	parts = append(parts, a.Name)
	if damage := a.DamageLabel(); damage != "" {
		parts = append(parts, "— "+damage)
	}
	return strings.Join(parts, " ")
}

func cardFooter(card *tcgdex.Card) string {
	var parts []string
	if card.Set.Name != "" {
		parts = append(parts, card.Set.Name)
	}
	if card.Rarity != "" {
		parts = append(parts, card.Rarity)
	}
	if card.Illustrator != "" {
		parts = append(parts, "Illus. "+card.Illustrator)
	}
	if card.ID != "" {
		parts = append(parts, card.ID)
	}
	return strings.Join(parts, "  ·  ")
}
