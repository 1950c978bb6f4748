// Package ui implements the live now-playing terminal view using bubbletea's Elm architecture.
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Playback state is refreshed on a fixed five-second tick (the same cadence the
// web display layer polls the now-playing proxy with); a manual refresh is a
// keypress away. Between fetches a spinner from charmbracelet/bubbles marks
// requests in flight.
//
// The package also renders the vibe profile as styled per-axis bars for the
// vibe CLI command.
package ui
