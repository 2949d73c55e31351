package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSPutGet(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()

	require.NoError(t, fs.Put(ctx, "docs", "reports/q3.pdf", []byte("payload")))

	got, err := fs.Get(ctx, "docs", "reports/q3.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestFSGetMissing(t *testing.T) {
	fs := NewFS(t.TempDir())

	_, err := fs.Get(context.Background(), "docs", "nope.pdf")
	assert.Error(t, err)
}

func TestFSRejectsTraversal(t *testing.T) {
	root := t.TempDir()
	fs := NewFS(root)
	ctx := context.Background()

	_, err := fs.Get(ctx, "docs", "../escape")
	assert.Error(t, err)

	err = fs.Put(ctx, "../docs", "file", []byte("x"))
	assert.Error(t, err)

	err = fs.Put(ctx, "", "file", []byte("x"))
	assert.Error(t, err)
}

func TestFSLayout(t *testing.T) {
	root := t.TempDir()
	fs := NewFS(root)

	require.NoError(t, fs.Put(context.Background(), "results", "j1/results.json", []byte("{}")))

	_, err := os.Stat(filepath.Join(root, "results", "j1", "results.json"))
	assert.NoError(t, err, "buckets map to subdirectories, keys to paths below them")
}

func TestEnvSecrets(t *testing.T) {
	t.Setenv("FOLIO_SECRET_FOLIO_ACCESS", `{"accessKey":"k"}`)

	secrets := NewEnvSecrets("")
	got, err := secrets.Get(context.Background(), "folio-access")
	require.NoError(t, err)
	assert.Equal(t, `{"accessKey":"k"}`, got)

	_, err = secrets.Get(context.Background(), "missing")
	assert.Error(t, err)
}

func TestEnvSecretsCustomPrefix(t *testing.T) {
	t.Setenv("APP_TOKEN", "v")

	secrets := NewEnvSecrets("APP_")
	got, err := secrets.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
