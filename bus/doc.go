// Package bus defines the event-bus capability used for completion events.
//
// Publication is best-effort from the caller's perspective: the
// orchestration layer logs publish failures and never lets them fail the
// extraction result. The shipped implementations publish to a redis channel
// or to the process log.
package bus
