// Package sequencer plays a pattern live.
//
// A Scheduler is a two-state machine (stopped, playing). Play triggers the
// first step at once and then advances one step per tick of a Clock ticker,
// synthesizing the sounds active at the new step on a graph.Context. The
// pattern is read under the scheduler lock on every tick, so an edit made
// between two ticks is heard from the next one on.
package sequencer
