package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// AllowedImage reports whether the filename carries an accepted image
// extension.
func AllowedImage(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// SaveUpload writes an uploaded image under dir with a uuid-based name
// and returns the stored filename. Disallowed extensions are rejected
// before anything touches disk.
func SaveUpload(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if !AllowedImage(file.Filename) {
		return "", fmt.Errorf("allowed image types are png, jpg, jpeg, gif")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}
