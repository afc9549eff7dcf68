package s3

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"vidtube/pkg/config"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(&config.Config{
		AWSRegion:          "us-east-1",
		AWSAccessKeyID:     "test-key",
		AWSSecretAccessKey: "test-secret",
		AWSEndpoint:        "http://127.0.0.1:1",
		S3BucketName:       "test-bucket",
		S3UseSSL:           "false",
		UploadTimeout:      time.Second,
	})
	assert.NoError(t, err)
	return client
}

func TestUploadLocalFile_EmptyPathIsNoop(t *testing.T) {
	client := newTestClient(t)

	url, err := client.UploadLocalFile("")

	assert.NoError(t, err)
	assert.Empty(t, url)
}

func TestUploadLocalFile_MissingFileReturnsError(t *testing.T) {
	client := newTestClient(t)

	url, err := client.UploadLocalFile(filepath.Join(t.TempDir(), "gone.png"))

	assert.Error(t, err)
	assert.Empty(t, url)
}

func TestUploadLocalFile_RemoteFailureReturnsNoURL(t *testing.T) {
	client := newTestClient(t)

	staged := filepath.Join(t.TempDir(), "avatar.png")
	assert.NoError(t, os.WriteFile(staged, []byte("png-bytes"), 0o600))

	// The endpoint is unreachable, so the put must fail; a URL here would
	// point at a file the handler is about to delete.
	url, err := client.UploadLocalFile(staged)

	assert.Error(t, err)
	assert.Empty(t, url)
}

func TestObjectURL_MinIOEndpoint(t *testing.T) {
	client := newTestClient(t)

	url := client.objectURL("uploads/abc.png")

	assert.Equal(t, "http://127.0.0.1:1/test-bucket/uploads/abc.png", url)
}
