// Package render bounces a pattern to audio offline: a fixed number of bars
// are scheduled on a graph.Offline context and rendered to completion, then
// optionally encoded as a WAV export.
package render
