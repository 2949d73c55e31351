package job

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foliohq/folio/faults"
)

// Response is the synchronous reply to a direct or gateway invocation: a
// status code plus a JSON body, never an unhandled fault.
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

func responseHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

// okResponse wraps an already-encoded success body.
func okResponse(body []byte) Response {
	return Response{
		StatusCode: http.StatusOK,
		Headers:    responseHeaders(),
		Body:       string(body),
	}
}

// errorResponse maps a classified error onto a structured response body.
// Validation errors report {error, expected_format?|valid_values?};
// everything else reports {success:false, error, error_type}.
func errorResponse(err error) Response {
	kind := faults.KindOf(err)

	var body map[string]any
	switch kind {
	case faults.KindValidation:
		body = map[string]any{"error": err.Error()}
		var fe *faults.Error
		if errors.As(err, &fe) {
			for k, v := range fe.Extra {
				body[k] = v
			}
		}
	default:
		body = map[string]any{
			"success":    false,
			"error":      err.Error(),
			"error_type": string(kind),
		}
	}

	encoded, mErr := json.Marshal(body)
	if mErr != nil {
		encoded = []byte(`{"success":false,"error":"internal error"}`)
	}

	return Response{
		StatusCode: statusFor(kind),
		Headers:    responseHeaders(),
		Body:       string(encoded),
	}
}

func statusFor(kind faults.Kind) int {
	switch kind {
	case faults.KindValidation, faults.KindLimit:
		return http.StatusBadRequest
	case faults.KindAuth:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
