// Package cloudinary stores post images and profile pictures on Cloudinary.
package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/utils/logger"
	"github.com/muhammadheryan/heart2help/utils/retry"
	"go.uber.org/zap"
)

var (
	ErrFileTooLarge       = errors.New("file size exceeds limit")
	ErrInvalidContentType = errors.New("invalid content type")
	ErrUploadFailed       = errors.New("failed to upload file")
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// FileStore persists uploads and resolves stored paths to public URLs.
type FileStore interface {
	Upload(ctx context.Context, file model.UploadFile) (*model.StoredFile, error)
	URLFor(path string) string
	Delete(ctx context.Context, path string) error
}

type Store struct {
	cld           *cloudinary.Cloudinary
	folder        string
	maxFileSize   int64
	uploadTimeout time.Duration
	retry         retry.Config
}

func New(cloudName, apiKey, apiSecret, folder string, maxFileSize int64, cfg retry.Config) (*Store, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true

	return &Store{
		cld:           cld,
		folder:        folder,
		maxFileSize:   maxFileSize,
		uploadTimeout: 30 * time.Second,
		retry:         cfg,
	}, nil
}

func (s *Store) Upload(ctx context.Context, file model.UploadFile) (*model.StoredFile, error) {
	content, err := readUpload(file, s.maxFileSize)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()

	useFilename, unique := true, true
	params := uploader.UploadParams{
		Folder:         s.folder,
		UseFilename:    &useFilename,
		UniqueFilename: &unique,
		ResourceType:   "image",
	}

	var result *uploader.UploadResult
	err = retry.Do(ctx, s.retry, func() error {
		res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(content), params)
		if err != nil {
			return err
		}
		if res.Error.Message != "" {
			return retry.Permanent(errors.New(res.Error.Message))
		}
		result = res
		return nil
	})
	if err != nil {
		logger.Error("[FileStore] upload", zap.String("filename", file.Name), zap.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return &model.StoredFile{Path: result.PublicID, Name: file.Name}, nil
}

// URLFor returns the delivery URL, or "" when path is empty or unresolvable.
func (s *Store) URLFor(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	img, err := s.cld.Image(path)
	if err != nil {
		return ""
	}
	url, err := img.String()
	if err != nil {
		return ""
	}
	return url
}

func (s *Store) Delete(ctx context.Context, path string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: path})
	return err
}

// readUpload buffers the file so retries can resend it, checking size and sniffed type.
func readUpload(file model.UploadFile, maxFileSize int64) ([]byte, error) {
	if maxFileSize > 0 && file.Size > maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d bytes", ErrFileTooLarge, file.Size, maxFileSize)
	}

	limit := maxFileSize
	if limit <= 0 {
		limit = 32 << 20
	}
	content, err := io.ReadAll(io.LimitReader(file.Content, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, limit)
	}

	contentType := http.DetectContentType(content)
	if !allowedTypes[contentType] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidContentType, contentType)
	}
	return content, nil
}
