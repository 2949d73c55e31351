// Package notify delivers the post-extraction side effects for jobs that
// carry a job id: result persistence, webhook delivery, and completion-event
// emission.
//
// Each side effect runs independently with its own error sink. Event
// emission is always best-effort and only ever logged; storage and webhook
// failures are reported to the caller, which decides whether they matter
// (they never fail a synchronous extraction result, but they do mark a
// queue-batch message for redelivery).
//
// Webhook delivery retries up to 3 attempts with a constant interval
// between them, bounded by the HTTP client timeout per attempt.
package notify
