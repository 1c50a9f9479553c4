// Package ui implements the Bubble Tea presentation layer.
//
// # Overview
//
// The Model renders the state store and forwards intent to the browse
// controller; it owns no domain state of its own beyond the result cursor
// and the theme. One Bubble Tea command (waitForUpdate) blocks on the
// store's watch channel and re-arms itself after every snapshot read, so
// the screen redraws whenever the controller commits a change, no matter
// which goroutine produced it.
//
// # Input Handling
//
// The search text input is always focused. Keystrokes that change its
// value flow straight into Controller.SetQuery; cursor keys move the
// result cursor and set the hover preview; enter selects the card under
// the cursor; esc walks back (selection → query → quit). ctrl+t cycles
// the theme and persists the choice through the prefs package.
//
// # Rendering
//
// View switches between two areas under the fixed header and search box:
// the result list (with a preview pane) while a query is active, and the
// single-card view otherwise. The single-card view shows the selection
// when there is one, else the default card, else the default slot's
// loading or error state. Styling comes from the theme's lipgloss styles;
// energy types get per-type colors.
package ui
