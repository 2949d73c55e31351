package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
)

// webhookAttempts bounds webhook delivery: 1 initial attempt plus 2
// retries.
const webhookAttempts = 3

// deliverWebhook POSTs the payload to the callback URL, retrying with a
// constant interval until an attempt succeeds or the attempts are
// exhausted. A response outside the 2xx range counts as a failed attempt.
func (d *Dispatcher) deliverWebhook(ctx context.Context, url string, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	attempt := 0
	operation := func() error {
		attempt++
		if err := d.post(ctx, url, body); err != nil {
			d.Logger.Warn().
				Str("job_id", payload.JobID).
				Str("url", url).
				Int("attempt", attempt).
				Err(err).
				Msg("webhook attempt failed")
			return err
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(d.RetryInterval), webhookAttempts-1),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return fmt.Errorf("webhook delivery to %s exhausted after %d attempts: %w", url, attempt, err)
	}
	return nil
}

func (d *Dispatcher) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
