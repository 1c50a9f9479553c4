// Package browse implements the card-lookup request lifecycle.
//
// # Overview
//
// The Controller sits between the UI and the tcgdex client. It owns four
// operations:
//
//   - Search: keystrokes arrive through SetQuery; queries of three or more
//     runes start a 300 ms debounce window, and the text that survives the
//     quiet period is sent to the list endpoint.
//   - Detail: Select clears the search state synchronously and fetches the
//     full record, falling back to the clicked partial record on failure.
//   - Preview: SetPreview/ClearPreview track the hovered result with no
//     debounce.
//   - Default card: LoadDefaultCard runs once at startup and fills the
//     slot shown when nothing is selected.
//
// # State Machine
//
// The search operation walks Idle → Debouncing → Loading → Success/Error.
// Queries shorter than three runes stay in Idle with an empty result list;
// an empty query additionally clears the preview. Any edit re-enters
// Debouncing from any state.
//
// # Response Ordering
//
// Overlapping requests are not cancelled; they are superseded. Every
// scheduled search captures a sequence number, any newer SetQuery or
// Select bumps the counter, and a response is committed only if its number
// is still current. A slow response for an old query therefore cannot
// overwrite results for a newer one, no matter when it arrives. The detail
// fetch uses its own counter the same way so ClearSelection also abandons
// an in-flight fetch.
//
// # Error Policy
//
// Search failures surface one fixed message and clear the list. Detail
// failures are silent: the partial record already in hand is promoted so
// the user always sees a card. Default-card failures set an explicit Error
// state on the slot; there are no retries anywhere.
package browse
