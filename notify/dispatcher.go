package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/foliohq/folio/bus"
	"github.com/foliohq/folio/extract"
	"github.com/foliohq/folio/faults"
	"github.com/foliohq/folio/store"
)

const (
	// EventSource identifies this system on the event bus.
	EventSource = "pdf-processor"

	// EventTypeCompleted is the completion-event type for both successful
	// and failed jobs; the status field carries the outcome.
	EventTypeCompleted = "Document Processing Completed"

	// StatusCompleted and StatusFailed are the job outcome values used in
	// webhook payloads and completion events.
	StatusCompleted = "completed"
	StatusFailed    = "failed"

	webhookTimeout = 30 * time.Second
)

// Summary is the compact job outcome carried by webhooks and events.
type Summary struct {
	PageCount int   `json:"page_count"`
	WordCount int   `json:"word_count"`
	FileSize  int64 `json:"file_size"`
	Success   bool  `json:"success"`
}

// WebhookPayload is the body POSTed to a job's callback URL.
type WebhookPayload struct {
	JobID           string   `json:"job_id"`
	Status          string   `json:"status"`
	ResultsLocation string   `json:"results_location,omitempty"`
	Summary         *Summary `json:"summary,omitempty"`
	Error           string   `json:"error,omitempty"`
	ErrorType       string   `json:"error_type,omitempty"`
}

// eventDetail is the detail object of a completion event.
type eventDetail struct {
	JobID     string   `json:"job_id"`
	Status    string   `json:"status"`
	Summary   *Summary `json:"summary,omitempty"`
	Timestamp string   `json:"timestamp"`
}

// Dispatcher runs the notification side effects for one completed or failed
// job.
type Dispatcher struct {
	Blobs store.BlobStore
	Bus   bus.EventBus

	// ResultsBucket is the bucket results are persisted under; the key is
	// always <job_id>/results.json.
	ResultsBucket string

	// Client delivers webhooks. Defaults to an HTTP client with a 30s
	// timeout.
	Client *http.Client

	// RetryInterval is the constant interval between webhook attempts.
	RetryInterval time.Duration

	Logger zerolog.Logger
}

// NewDispatcher creates a dispatcher with default webhook client and retry
// interval.
func NewDispatcher(blobs store.BlobStore, eventBus bus.EventBus, resultsBucket string, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		Blobs:         blobs,
		Bus:           eventBus,
		ResultsBucket: resultsBucket,
		Client:        &http.Client{Timeout: webhookTimeout},
		RetryInterval: 2 * time.Second,
		Logger:        logger,
	}
}

// Completed persists the result, delivers the completion webhook when a
// callback URL is present, and emits the completion event.
//
// The returned error aggregates storage and webhook failures; event
// emission is best-effort and never contributes. Synchronous callers log
// the error and keep their result; batch callers treat it as the message's
// failure.
func (d *Dispatcher) Completed(ctx context.Context, jobID, callbackURL string, result *extract.Result) error {
	summary := &Summary{
		PageCount: result.DocumentInfo.PageCount,
		WordCount: result.WordCount,
		FileSize:  result.DocumentInfo.FileSize,
		Success:   true,
	}

	var errs []error

	location, err := d.persist(ctx, jobID, result)
	if err != nil {
		d.Logger.Error().Str("job_id", jobID).Err(err).Msg("persist results failed")
		errs = append(errs, err)
	}

	if callbackURL != "" {
		payload := WebhookPayload{
			JobID:           jobID,
			Status:          StatusCompleted,
			ResultsLocation: location,
			Summary:         summary,
		}
		if err := d.deliverWebhook(ctx, callbackURL, payload); err != nil {
			d.Logger.Error().Str("job_id", jobID).Err(err).Msg("webhook delivery failed")
			errs = append(errs, err)
		}
	}

	d.emitEvent(ctx, jobID, StatusCompleted, summary)

	if len(errs) > 0 {
		return faults.Notification("notification dispatch", errors.Join(errs...))
	}
	return nil
}

// Failed delivers the failure webhook and event for a job whose extraction
// raised. The original extraction error stays with the caller; the returned
// error only reports notification failures.
func (d *Dispatcher) Failed(ctx context.Context, jobID, callbackURL string, cause error) error {
	summary := &Summary{Success: false}

	var errs []error

	if callbackURL != "" {
		payload := WebhookPayload{
			JobID:     jobID,
			Status:    StatusFailed,
			Summary:   summary,
			Error:     cause.Error(),
			ErrorType: string(faults.KindOf(cause)),
		}
		if err := d.deliverWebhook(ctx, callbackURL, payload); err != nil {
			d.Logger.Error().Str("job_id", jobID).Err(err).Msg("failure webhook delivery failed")
			errs = append(errs, err)
		}
	}

	d.emitEvent(ctx, jobID, StatusFailed, summary)

	if len(errs) > 0 {
		return faults.Notification("failure notification dispatch", errors.Join(errs...))
	}
	return nil
}

// persist writes the full result, pretty-printed, under the job-scoped
// storage path, and returns the results location.
func (d *Dispatcher) persist(ctx context.Context, jobID string, result *extract.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	key := jobID + "/results.json"
	if err := d.Blobs.Put(ctx, d.ResultsBucket, key, data); err != nil {
		return "", err
	}
	return "blob://" + d.ResultsBucket + "/" + key, nil
}

// emitEvent publishes the completion event. Emission is best-effort: a
// publish failure is logged, never raised.
func (d *Dispatcher) emitEvent(ctx context.Context, jobID, status string, summary *Summary) {
	event := bus.Event{
		ID:     uuid.NewString(),
		Source: EventSource,
		Type:   EventTypeCompleted,
		Detail: eventDetail{
			JobID:     jobID,
			Status:    status,
			Summary:   summary,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}
	if err := d.Bus.Publish(ctx, event); err != nil {
		d.Logger.Error().Str("job_id", jobID).Err(err).Msg("completion event emission failed")
	}
}
