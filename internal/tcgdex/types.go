package tcgdex

import (
	"bytes"
	"encoding/json"
)

// Quality selects an image asset variant. The API serves every card
// illustration under {image}/{quality}.{ext}.
type Quality string

// Image quality variants supported by the API.
const (
	QualityHigh Quality = "high"
	QualityLow  Quality = "low"
)

const imageExtension = "webp"

// CardBrief is the partial card record returned by the list endpoint.
// It carries just enough to render a search result and request the rest.
type CardBrief struct {
	ID      string `json:"id"`
	LocalID string `json:"localId"`
	Name    string `json:"name"`
	Image   string `json:"image"`
}

// ImageURL returns the address of the card illustration at the given
// quality, or "" when the record carries no image.
func (b CardBrief) ImageURL(q Quality) string {
	return imageURL(b.Image, q)
}

// AsCard lifts a brief into a Card with only the brief's fields set.
// Used as the fallback record when the detail fetch fails.
func (b CardBrief) AsCard() *Card {
	return &Card{
		ID:      b.ID,
		LocalID: b.LocalID,
		Name:    b.Name,
		Image:   b.Image,
	}
}

// Card mirrors the full record returned by the card detail endpoint.
// Optional numeric fields are pointers so that a fallback record built
// from a CardBrief stays distinguishable from a card with zero values.
type Card struct {
	ID          string       `json:"id"`
	LocalID     string       `json:"localId"`
	Name        string       `json:"name"`
	Image       string       `json:"image"`
	Category    string       `json:"category"`
	Illustrator string       `json:"illustrator"`
	Rarity      string       `json:"rarity"`
	HP          *int         `json:"hp"`
	Types       []string     `json:"types"`
	EvolveFrom  string       `json:"evolveFrom"`
	Description string       `json:"description"`
	Stage       string       `json:"stage"`
	Attacks     []Attack     `json:"attacks"`
	Weaknesses  []Weakness   `json:"weaknesses"`
	Resistances []Resistance `json:"resistances"`
	Retreat     *int         `json:"retreat"`
	Set         SetBrief     `json:"set"`
}

// ImageURL returns the address of the card illustration at the given
// quality, or "" when the record carries no image.
func (c Card) ImageURL(q Quality) string {
	return imageURL(c.Image, q)
}

// Brief projects the card back down to its list-endpoint shape.
func (c Card) Brief() CardBrief {
	return CardBrief{ID: c.ID, LocalID: c.LocalID, Name: c.Name, Image: c.Image}
}

// Attack describes a single attack on a card. Damage is kept raw because
// the API returns either a number (50) or a string ("20+", "20×").
type Attack struct {
	Cost   []string        `json:"cost"`
	Name   string          `json:"name"`
	Effect string          `json:"effect"`
	Damage json.RawMessage `json:"damage"`
}

// DamageLabel renders the damage payload as display text, "" when absent.
func (a Attack) DamageLabel() string {
	raw := bytes.TrimSpace(a.Damage)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// Weakness is a typed damage modifier, e.g. {type: "Fighting", value: "×2"}.
type Weakness struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Resistance shares the weakness shape on the wire.
type Resistance struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// SetBrief identifies the set a card belongs to.
type SetBrief struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Logo      string    `json:"logo"`
	Symbol    string    `json:"symbol"`
	CardCount CardCount `json:"cardCount"`
}

// CardCount reports set sizes as published by the API.
type CardCount struct {
	Total    int `json:"total"`
	Official int `json:"official"`
}

func imageURL(base string, q Quality) string {
	if base == "" {
		return ""
	}
	return base + "/" + string(q) + "." + imageExtension
}
