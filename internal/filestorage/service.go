package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Service stores uploaded blobs on disk and hands back durable retrieval
// URLs. Profile images are keyed by the owner's uid, so a re-upload
// overwrites the previous image. Storing a blob does not touch any profile
// document; callers persist the returned URL separately.
type Service struct {
	storagePath   string // Base path for storing files, e.g. "./images"
	publicBaseURL string // URL prefix the stored files are served under
	logger        *zap.Logger
}

// NewService creates a new file storage service rooted at storagePath.
func NewService(storagePath, publicBaseURL string, logger *zap.Logger) (*Service, error) {
	if storagePath == "" {
		return nil, fmt.Errorf("storage path cannot be empty")
	}
	if err := os.MkdirAll(storagePath, os.ModePerm); err != nil {
		logger.Error("Failed to create storage path directory", zap.String("path", storagePath), zap.Error(err))
		return nil, fmt.Errorf("failed to create storage path %s: %w", storagePath, err)
	}
	logger.Info("File storage initialized", zap.String("storagePath", storagePath))
	return &Service{
		storagePath:   storagePath,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// SaveProfileImage stores an uploaded image under avatars/<uid><ext> and
// returns its retrieval URL.
func (s *Service) SaveProfileImage(uid string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("fileHeader cannot be nil")
	}
	if uid == "" || strings.ContainsAny(uid, "/\\.") {
		return "", fmt.Errorf("invalid uid for image path: %q", uid)
	}

	src, err := fileHeader.Open()
	if err != nil {
		s.logger.Error("Failed to open uploaded file", zap.Error(err))
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	extension := filepath.Ext(filepath.Base(fileHeader.Filename))
	if extension == "" {
		// Fall back to the declared content type when the filename carries
		// no extension.
		contentType := fileHeader.Header.Get("Content-Type")
		switch {
		case strings.HasPrefix(contentType, "image/jpeg"):
			extension = ".jpg"
		case strings.HasPrefix(contentType, "image/png"):
			extension = ".png"
		case strings.HasPrefix(contentType, "image/gif"):
			extension = ".gif"
		default:
			return "", fmt.Errorf("unsupported file type or missing extension: %s", contentType)
		}
	}

	destinationDir := filepath.Join(s.storagePath, "avatars")
	if err := os.MkdirAll(destinationDir, os.ModePerm); err != nil {
		s.logger.Error("Failed to create avatars directory", zap.String("path", destinationDir), zap.Error(err))
		return "", fmt.Errorf("failed to create directory %s: %w", destinationDir, err)
	}

	filename := uid + extension
	destinationPath := filepath.Join(destinationDir, filename)

	dst, err := os.Create(destinationPath)
	if err != nil {
		s.logger.Error("Failed to create destination file", zap.String("path", destinationPath), zap.Error(err))
		return "", fmt.Errorf("failed to create file %s: %w", destinationPath, err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		s.logger.Error("Failed to copy uploaded file to destination", zap.String("path", destinationPath), zap.Error(err))
		os.Remove(destinationPath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	url := s.publicBaseURL + "/avatars/" + filename
	s.logger.Info("Profile image saved", zap.String("path", destinationPath), zap.String("url", url))
	return url, nil
}
