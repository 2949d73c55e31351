package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliohq/folio/bus"
	"github.com/foliohq/folio/extract"
	"github.com/foliohq/folio/faults"
	"github.com/foliohq/folio/model"
)

// memStore is an in-memory blob store for tests.
type memStore struct {
	blobs   map[string][]byte
	failPut bool
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string][]byte)}
}

func (m *memStore) Get(_ context.Context, bucket, key string) ([]byte, error) {
	data, ok := m.blobs[bucket+"/"+key]
	if !ok {
		return nil, fmt.Errorf("blob %s/%s not found", bucket, key)
	}
	return data, nil
}

func (m *memStore) Put(_ context.Context, bucket, key string, data []byte) error {
	if m.failPut {
		return fmt.Errorf("storage unavailable")
	}
	m.blobs[bucket+"/"+key] = data
	return nil
}

// captureBus records published events.
type captureBus struct {
	events []bus.Event
	err    error
}

func (c *captureBus) Publish(_ context.Context, event bus.Event) error {
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, event)
	return nil
}

func testResult() *extract.Result {
	return &extract.Result{
		Success:      true,
		DocumentInfo: model.Info{PageCount: 2, FileSize: 512},
		WordCount:    10,
	}
}

func testDispatcher(blobs *memStore, events *captureBus) *Dispatcher {
	d := NewDispatcher(blobs, events, "results", zerolog.Nop())
	d.RetryInterval = time.Millisecond
	return d
}

func TestCompletedPersistsAndNotifies(t *testing.T) {
	var payload atomic.Value
	callback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p WebhookPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		payload.Store(p)
	}))
	defer callback.Close()

	blobs := newMemStore()
	events := &captureBus{}
	d := testDispatcher(blobs, events)

	err := d.Completed(context.Background(), "j1", callback.URL, testResult())
	require.NoError(t, err)

	// Result persisted pretty-printed at the job-scoped key.
	data, ok := blobs.blobs["results/j1/results.json"]
	require.True(t, ok)
	assert.Contains(t, string(data), "\n  ")
	var persisted extract.Result
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.True(t, persisted.Success)

	// Webhook carries the outcome summary and results location.
	p := payload.Load().(WebhookPayload)
	assert.Equal(t, "j1", p.JobID)
	assert.Equal(t, StatusCompleted, p.Status)
	assert.Equal(t, "blob://results/j1/results.json", p.ResultsLocation)
	require.NotNil(t, p.Summary)
	assert.Equal(t, 2, p.Summary.PageCount)
	assert.Equal(t, 10, p.Summary.WordCount)
	assert.True(t, p.Summary.Success)

	// Completion event published with the fixed identity.
	require.Len(t, events.events, 1)
	event := events.events[0]
	assert.Equal(t, EventSource, event.Source)
	assert.Equal(t, EventTypeCompleted, event.Type)
	assert.NotEmpty(t, event.ID)
}

func TestCompletedWithoutCallbackSkipsWebhook(t *testing.T) {
	blobs := newMemStore()
	events := &captureBus{}
	d := testDispatcher(blobs, events)

	err := d.Completed(context.Background(), "j1", "", testResult())
	require.NoError(t, err)
	assert.Contains(t, blobs.blobs, "results/j1/results.json")
	assert.Len(t, events.events, 1)
}

func TestCompletedEventFailureIsBestEffort(t *testing.T) {
	blobs := newMemStore()
	events := &captureBus{err: fmt.Errorf("bus down")}
	d := testDispatcher(blobs, events)

	err := d.Completed(context.Background(), "j1", "", testResult())
	assert.NoError(t, err, "event emission failures are never raised")
}

func TestFailedDeliversFailureWebhook(t *testing.T) {
	var payload atomic.Value
	callback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p WebhookPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		payload.Store(p)
	}))
	defer callback.Close()

	blobs := newMemStore()
	events := &captureBus{}
	d := testDispatcher(blobs, events)

	cause := faults.Extraction("open document", fmt.Errorf("corrupt xref"))
	err := d.Failed(context.Background(), "j1", callback.URL, cause)
	require.NoError(t, err)

	p := payload.Load().(WebhookPayload)
	assert.Equal(t, StatusFailed, p.Status)
	assert.Equal(t, "ExtractionError", p.ErrorType)
	assert.Contains(t, p.Error, "corrupt xref")
	require.NotNil(t, p.Summary)
	assert.False(t, p.Summary.Success)

	assert.Empty(t, blobs.blobs, "failed jobs persist no results")
	assert.Len(t, events.events, 1)
}

// ============================================================================
// Webhook retry policy
// ============================================================================

func TestWebhookRetriesExactlyThreeTimes(t *testing.T) {
	var attempts atomic.Int32
	callback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer callback.Close()

	d := testDispatcher(newMemStore(), &captureBus{})

	err := d.Completed(context.Background(), "j1", callback.URL, testResult())
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.KindNotification))
	assert.Equal(t, int32(3), attempts.Load(), "1 attempt + 2 retries")
}

func TestWebhookStopsRetryingOnSuccess(t *testing.T) {
	var attempts atomic.Int32
	callback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}))
	defer callback.Close()

	d := testDispatcher(newMemStore(), &captureBus{})

	err := d.Completed(context.Background(), "j1", callback.URL, testResult())
	require.NoError(t, err)
	assert.Equal(t, int32(2), attempts.Load(), "no further attempts after success")
}

func TestCompletedAggregatesStorageAndWebhookErrors(t *testing.T) {
	callback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer callback.Close()

	blobs := newMemStore()
	blobs.failPut = true
	events := &captureBus{}
	d := testDispatcher(blobs, events)

	err := d.Completed(context.Background(), "j1", callback.URL, testResult())
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.KindNotification))
	assert.Contains(t, err.Error(), "storage unavailable")

	// The event is still emitted after partial side-effect failures.
	assert.Len(t, events.events, 1)
}
