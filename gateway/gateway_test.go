package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliohq/folio/bus"
	"github.com/foliohq/folio/extract"
	"github.com/foliohq/folio/job"
	"github.com/foliohq/folio/model"
	"github.com/foliohq/folio/notify"
	"github.com/foliohq/folio/source"
)

type memStore struct {
	blobs map[string][]byte
}

func (m *memStore) Get(_ context.Context, bucket, key string) ([]byte, error) {
	data, ok := m.blobs[bucket+"/"+key]
	if !ok {
		return nil, fmt.Errorf("blob %s/%s not found", bucket, key)
	}
	return data, nil
}

func (m *memStore) Put(_ context.Context, bucket, key string, data []byte) error {
	m.blobs[bucket+"/"+key] = data
	return nil
}

type memSecrets map[string]string

func (m memSecrets) Get(_ context.Context, name string) (string, error) {
	v, ok := m[name]
	if !ok {
		return "", fmt.Errorf("secret %q not set", name)
	}
	return v, nil
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	blobs := &memStore{blobs: map[string][]byte{"docs/report.pdf": []byte("%PDF-stub")}}
	dispatcher := notify.NewDispatcher(blobs, bus.NewLog(zerolog.Nop()), "results", zerolog.Nop())
	dispatcher.RetryInterval = time.Millisecond

	o := &job.Orchestrator{
		Blobs:    blobs,
		Secrets:  memSecrets{"folio-access": `{"accessKey":"sekret"}`},
		Notifier: dispatcher,
		Open: func([]byte) (source.Source, error) {
			return &source.Memory{PageItems: []*source.PageData{{
				Width:  612,
				Height: 792,
				Words: []source.Word{
					{Text: "hi", BBox: model.NewRect(10, 10, 30, 20)},
				},
			}}}, nil
		},
		AuthSecret: "folio-access",
		Logger:     zerolog.Nop(),
	}

	return NewServer(o, zerolog.Nop()).Router()
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestProcessEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/process",
		strings.NewReader(`{"source_locator":"blob://docs/report.pdf"}`))
	req.Header.Set("Authorization", "Bearer sekret")

	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var res extract.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.WordCount)
}

func TestProcessEndpointAuthRequired(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/process",
		strings.NewReader(`{"source_locator":"blob://docs/report.pdf"}`))

	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication failed")
}

func TestProcessEndpointValidationError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/process", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer sekret")

	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, job.LocatorFormat, body["expected_format"])
}
