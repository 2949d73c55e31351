package job

import (
	"context"
	"encoding/json"
	"net/http"
)

// BatchItemFailure identifies one queue message that should be redelivered.
type BatchItemFailure struct {
	ItemIdentifier string `json:"item_identifier"`
}

// BatchResponse reports which records of a queue batch failed. An empty
// failure list acknowledges the whole batch.
type BatchResponse struct {
	BatchItemFailures []BatchItemFailure `json:"batch_item_failures"`
}

// ProcessBatch runs every record of a queue batch independently. A failing
// record never aborts the batch: its message ID is collected so the queue
// redelivers just that message. Unlike the synchronous paths, a notification
// failure counts as a record failure here, since redelivery is the only
// retry mechanism a queue message has.
func (o *Orchestrator) ProcessBatch(ctx context.Context, env *Envelope) BatchResponse {
	resp := BatchResponse{BatchItemFailures: []BatchItemFailure{}}

	for _, rec := range env.Records {
		log := o.Logger.With().Str("message_id", rec.MessageID).Logger()

		jb, err := ParseJob([]byte(rec.Body), rec.Attributes)
		if err == nil {
			_, err = o.processJob(ctx, jb)
		}
		if err != nil {
			log.Error().Err(err).Msg("queue record failed")
			resp.BatchItemFailures = append(resp.BatchItemFailures,
				BatchItemFailure{ItemIdentifier: rec.MessageID})
			continue
		}
		log.Info().Msg("queue record processed")
	}
	return resp
}

func batchResponse(br BatchResponse) Response {
	encoded, err := json.Marshal(br)
	if err != nil {
		encoded = []byte(`{"batch_item_failures":[]}`)
	}
	return Response{
		StatusCode: http.StatusOK,
		Headers:    responseHeaders(),
		Body:       string(encoded),
	}
}
