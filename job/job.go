package job

import (
	"encoding/json"
	"strings"

	"github.com/foliohq/folio/faults"
)

// LocatorFormat documents the expected source-locator shape, reported to
// callers on validation failures.
const LocatorFormat = "blob://bucket-name/path/to/file.pdf"

const locatorScheme = "blob://"

// Job is one unit of work: where the source bytes live and how to report
// the outcome. A Job is created per invocation, consumed once, and never
// persisted beyond the notification step.
type Job struct {
	ID            string `json:"job_id,omitempty"`
	Locator       string `json:"source_locator"`
	CallbackURL   string `json:"callback_url,omitempty"`
	Mode          string `json:"extraction_mode,omitempty"`
	Authorization string `json:"authorization,omitempty"`

	// Attributes carries extra string attributes from the triggering
	// message.
	Attributes map[string]string `json:"-"`
}

// ParseJob decodes job parameters from a JSON body and merges any
// string-typed message attributes. Attributes fill parameters the body
// left empty and are otherwise carried as-is.
func ParseJob(body []byte, attrs map[string]string) (*Job, error) {
	var jb Job
	if err := json.Unmarshal(body, &jb); err != nil {
		return nil, faults.Validationf("unparsable job body: %v", err)
	}

	if len(attrs) > 0 {
		jb.Attributes = attrs
		if jb.ID == "" {
			jb.ID = attrs["job_id"]
		}
		if jb.CallbackURL == "" {
			jb.CallbackURL = attrs["callback_url"]
		}
		if jb.Mode == "" {
			jb.Mode = attrs["extraction_mode"]
		}
	}

	return &jb, nil
}

// ParseLocator validates a source locator and splits it into bucket and
// key. A missing or malformed locator is a request-validation error that
// carries the expected format.
func ParseLocator(locator string) (bucket, key string, err error) {
	if strings.TrimSpace(locator) == "" {
		return "", "", faults.Validationf("missing source_locator parameter").
			WithExtra("expected_format", LocatorFormat)
	}
	if !strings.HasPrefix(locator, locatorScheme) {
		return "", "", faults.Validationf("invalid source locator format").
			WithExtra("expected_format", LocatorFormat)
	}

	rest := locator[len(locatorScheme):]
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", faults.Validationf("invalid source locator format").
			WithExtra("expected_format", LocatorFormat)
	}
	return bucket, key, nil
}
