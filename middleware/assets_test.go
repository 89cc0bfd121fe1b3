package middleware

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFileHash(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.css")
	if err := os.WriteFile(tmpFile, []byte("body { color: red; }"), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	hash := computeFileHash(tmpFile)
	assert.Len(t, hash, 8)

	assert.Empty(t, computeFileHash("non_existent_file.css"))
}

func TestAssetURL(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, "/static/unknown.js?v=1", AssetURL(ctx, "unknown.js"))

	dir := t.TempDir()
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, AssetCSS), []byte("body{}"), 0644))
	InitAssetVersions(dir)

	url := AssetURL(ctx, AssetCSS)
	assert.Contains(t, url, "/static/css/app.css?v=")
	assert.NotEqual(t, "/static/css/app.css?v=1", url)
}
