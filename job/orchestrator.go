package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/foliohq/folio/extract"
	"github.com/foliohq/folio/faults"
	"github.com/foliohq/folio/notify"
	"github.com/foliohq/folio/source"
	"github.com/foliohq/folio/store"
	"github.com/foliohq/folio/tables"
)

// SourceOpener turns raw document bytes into a page source. The default
// binding is fitzsource.Open, but tests substitute in-memory sources.
type SourceOpener func(data []byte) (source.Source, error)

// Orchestrator routes incoming events to the extraction pipeline and the
// notification dispatcher. One instance serves every event shape.
type Orchestrator struct {
	Blobs    store.BlobStore
	Secrets  store.SecretStore
	Notifier *notify.Dispatcher
	Open     SourceOpener
	Limits   extract.Limits
	Tables   tables.Config

	// AuthSecret names the secret holding the access key. Empty disables
	// authentication.
	AuthSecret string

	Logger zerolog.Logger
}

// Handle processes one raw event. Queue batches are fanned out through
// ProcessBatch and always report per-record failures in the response body;
// direct and gateway events authenticate, run a single job and map the
// outcome to an HTTP-shaped response.
func (o *Orchestrator) Handle(ctx context.Context, raw []byte) Response {
	env, kind, err := Classify(raw)
	if err != nil {
		return errorResponse(err)
	}

	if kind == EventQueueBatch {
		return batchResponse(o.ProcessBatch(ctx, env))
	}

	if err := o.authorize(ctx, authHeader(env, kind)); err != nil {
		return errorResponse(err)
	}

	jb, err := ParseJob(env.JobBody(kind), nil)
	if err != nil {
		return errorResponse(err)
	}

	res, err := o.processJob(ctx, jb)
	if err != nil {
		if res != nil && faults.IsKind(err, faults.KindNotification) {
			// The document was extracted; a notification failure must not
			// turn a completed job into an error for the caller.
			o.Logger.Error().Err(err).Str("job_id", jb.ID).
				Msg("notification failed for completed job")
			return resultResponse(res)
		}
		return errorResponse(err)
	}
	return resultResponse(res)
}

func resultResponse(res *extract.Result) Response {
	encoded, err := json.Marshal(res)
	if err != nil {
		return errorResponse(faults.New(faults.KindInternal, "encode result", err))
	}
	return okResponse(encoded)
}

// processJob runs one job end to end and notifies its outcome. A non-nil
// result can accompany a notification error; callers decide whether that
// counts as a failure.
func (o *Orchestrator) processJob(ctx context.Context, jb *Job) (*extract.Result, error) {
	log := o.Logger.With().Str("job_id", jb.ID).Logger()

	res, err := o.runJob(ctx, jb, log)
	if err != nil {
		if jb.ID != "" && o.Notifier != nil {
			if nerr := o.Notifier.Failed(ctx, jb.ID, jb.CallbackURL, err); nerr != nil {
				log.Error().Err(nerr).Msg("failed to deliver failure notification")
			}
		}
		return nil, err
	}

	if jb.ID != "" && o.Notifier != nil {
		if nerr := o.Notifier.Completed(ctx, jb.ID, jb.CallbackURL, res); nerr != nil {
			return res, nerr
		}
	}
	return res, nil
}

// runJob fetches the document, opens it and runs the extraction pipeline.
func (o *Orchestrator) runJob(ctx context.Context, jb *Job, log zerolog.Logger) (*extract.Result, error) {
	bucket, key, err := ParseLocator(jb.Locator)
	if err != nil {
		return nil, err
	}
	mode, err := extract.ParseMode(jb.Mode)
	if err != nil {
		return nil, err
	}

	log.Info().Str("bucket", bucket).Str("key", key).Str("mode", string(mode)).
		Msg("processing document")

	data, err := o.Blobs.Get(ctx, bucket, key)
	if err != nil {
		return nil, faults.Extraction(fmt.Sprintf("fetch %s", jb.Locator), err)
	}

	src, err := o.Open(data)
	if err != nil {
		return nil, faults.Extraction("open document", err)
	}
	defer src.Close()

	out, err := extract.Assemble(src, int64(len(data)), extract.Options{
		Mode:   mode,
		Limits: o.Limits,
		Tables: o.Tables,
	}, log)
	if err != nil {
		return nil, err
	}

	res := extract.NewResult(out)
	log.Info().Int("pages", res.DocumentInfo.PageCount).Int("words", res.WordCount).
		Msg("document processed")
	return res, nil
}
