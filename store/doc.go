// Package store defines the narrow storage capabilities the orchestration
// layer depends on: blob get/put and secret retrieval.
//
// Both are small interfaces so tests can substitute in-memory fakes without
// process-wide state. The shipped implementations are a directory-backed
// blob store and an environment-backed secret store.
package store
