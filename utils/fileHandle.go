package utils

import (
	"coursehub/config"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveUploadedFile stores a multipart upload under destDir with a unique name
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// Create a unique filename
	ext := filepath.Ext(file.Filename)
	newFilename := uuid.NewString() + ext
	filePath := filepath.Join(destDir, newFilename)

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// Copy the file content
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}

// GetFileURL maps a stored file path to its public URL under the static
// uploads mount
func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}

	rel, err := filepath.Rel(config.AppConfig.UploadDir, filePath)
	if err != nil {
		rel = filepath.Base(filePath)
	}
	return "/uploads/" + filepath.ToSlash(rel)
}
