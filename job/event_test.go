package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliohq/folio/faults"
)

func TestClassifyQueueBatch(t *testing.T) {
	raw := []byte(`{
		"records": [
			{"message_id": "m1", "body": "{}", "event_source": "queue"},
			{"message_id": "m2", "body": "{}", "event_source": "queue"}
		]
	}`)

	env, kind, err := Classify(raw)
	require.NoError(t, err)
	assert.Equal(t, EventQueueBatch, kind)
	assert.Len(t, env.Records, 2)
}

func TestClassifyGateway(t *testing.T) {
	raw := []byte(`{
		"headers": {"Authorization": "Bearer tok"},
		"body": "{\"source_locator\":\"blob://b/k\"}"
	}`)

	env, kind, err := Classify(raw)
	require.NoError(t, err)
	assert.Equal(t, EventGateway, kind)
	assert.JSONEq(t, `{"source_locator":"blob://b/k"}`, string(env.JobBody(kind)))
}

func TestClassifyDirect(t *testing.T) {
	raw := []byte(`{"source_locator": "blob://b/k", "job_id": "j1"}`)

	env, kind, err := Classify(raw)
	require.NoError(t, err)
	assert.Equal(t, EventDirect, kind)
	assert.Equal(t, raw, env.JobBody(kind))
}

func TestClassifyPriorityQueueOverGateway(t *testing.T) {
	// An event carrying both queue records and gateway fields classifies
	// as a queue batch.
	raw := []byte(`{
		"records": [{"message_id": "m1", "body": "{}", "event_source": "queue"}],
		"headers": {"X": "y"},
		"body": "{}"
	}`)

	_, kind, err := Classify(raw)
	require.NoError(t, err)
	assert.Equal(t, EventQueueBatch, kind)
}

func TestClassifyRecordsWithoutQueueMarker(t *testing.T) {
	// Records without the queue event-source marker do not make a batch.
	raw := []byte(`{"records": [{"message_id": "m1", "body": "{}"}]}`)

	_, kind, err := Classify(raw)
	require.NoError(t, err)
	assert.Equal(t, EventDirect, kind)
}

func TestClassifyUnparsable(t *testing.T) {
	_, _, err := Classify([]byte("not json"))
	assert.True(t, faults.IsKind(err, faults.KindValidation))
}

func TestEnvelopeHeaderCaseInsensitive(t *testing.T) {
	env := &Envelope{Headers: map[string]string{"authorization": "Bearer tok"}}
	assert.Equal(t, "Bearer tok", env.Header("Authorization"))
	assert.Equal(t, "", env.Header("X-Missing"))
}
