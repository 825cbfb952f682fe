package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SaveUploadedFile stores an uploaded file under destDir with a unique
// name and returns the public URL path of the stored file, built from
// urlPrefix so the URL follows wherever the directory is served.
func SaveUploadedFile(file *multipart.FileHeader, destDir, urlPrefix string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := uuid.New().String() + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return strings.TrimSuffix(urlPrefix, "/") + "/" + newFilename, nil
}

// RemoveCourseImage deletes the asset behind an image URL. Default
// images are kept, and a file that is already gone is not an error.
func RemoveCourseImage(imageURL, destDir string) {
	if imageURL == "" || strings.Contains(imageURL, "default.png") {
		return
	}
	filePath := filepath.Join(destDir, filepath.Base(imageURL))
	if _, err := os.Stat(filePath); err != nil {
		return
	}
	os.Remove(filePath)
}
