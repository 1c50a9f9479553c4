// Package app wires Cardex together: it loads the config and preferences,
// builds the API client, the state store, and the browse controller, kicks
// off the startup card load, and hands everything to the UI. The context
// passed to Run bounds the whole session; cancelling it tears down the UI
// and abandons any in-flight requests.
package app
