package http

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// stageUpload saves a multipart file into tempDir and returns its path
// together with a cleanup that removes it. Cleanup must run on every exit
// path; whether the remote upload succeeded is irrelevant to staging.
func stageUpload(c *gin.Context, file *multipart.FileHeader, tempDir string) (string, func(), error) {
	name := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	path := filepath.Join(tempDir, name)

	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", func() {}, err
	}

	cleanup := func() {
		_ = os.Remove(path)
	}
	return path, cleanup, nil
}
