package minio_storage

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/internal/models"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// AudioStorage keeps lesson audio as objects in one bucket; audio_file_path
// holds the object key.
type AudioStorage struct {
	storage *MinioStorage
	bucket  string
}

func NewAudioStorage(storage *MinioStorage, bucket string) *AudioStorage {
	return &AudioStorage{storage: storage, bucket: bucket}
}

func (s *AudioStorage) OpenAudio(ctx context.Context, objectKey string) (*models.AudioAsset, error) {
	if objectKey == "" {
		return nil, app_errors.ErrAudioNotFound
	}

	obj, err := s.storage.client.GetObject(ctx, s.bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, objectErr(objectKey, err)
	}
	// GetObject is lazy, Stat performs the request.
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, objectErr(objectKey, err)
	}

	return &models.AudioAsset{
		Name: path.Base(objectKey),
		Size: info.Size,
		Body: obj,
	}, nil
}

func (s *AudioStorage) SaveAudio(ctx context.Context, lessonID int64, filename string, r io.Reader, size int64) (string, error) {
	objectKey := audioObjectKey(lessonID, filename)
	_, err := s.storage.client.PutObject(
		ctx,
		s.bucket,
		objectKey,
		r,
		size,
		minio.PutObjectOptions{ContentType: models.AudioMediaType},
	)
	if err != nil {
		return "", fmt.Errorf("upload audio: %w", err)
	}
	return objectKey, nil
}

func audioObjectKey(lessonID int64, filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".mp3"
	}
	return fmt.Sprintf("lessons/%d/%s%s", lessonID, uuid.NewString(), ext)
}

func objectErr(objectKey string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return app_errors.ErrAudioNotFound
	}
	return fmt.Errorf("get audio %s: %w", objectKey, err)
}
