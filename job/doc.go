// Package job implements the orchestration layer: event-source
// classification, job parsing, the per-job pipeline, and batch aggregation.
//
// One invocation processes one event to completion. The inbound event is
// classified by shape, not content, into one of three closed variants:
//
//   - QueueBatch: a multi-record envelope whose records carry the queue
//     event-source marker; each record is an independent job and failures
//     are isolated per message.
//   - Gateway: an HTTP-shaped event with headers and a JSON-encoded body
//     field; the response is always wrapped with a status code and JSON
//     body.
//   - Direct: anything else; parameters are read straight from the event.
//
// Classification priority is fixed: queue-batch first, then gateway, then
// direct.
//
// The orchestrator depends only on the narrow capability interfaces
// (store.BlobStore, store.SecretStore via the notifier and authorizer,
// bus.EventBus through the notifier) so tests substitute fakes without
// process-wide state.
package job
