package minio_storage

import (
	"context"
	"net/url"
	"time"
)

// MediaStorage serves presigned GET URLs for one bucket: module covers,
// lesson videos and downloadable resources all resolve through it. An object
// key that fails to presign surfaces as an error; callers treat that as "no
// URL yet".
type MediaStorage struct {
	storage      *MinioStorage
	bucket       string
	presignedTTL time.Duration
}

func NewMediaStorage(storage *MinioStorage, bucketName string, presignedTTL time.Duration) *MediaStorage {
	return &MediaStorage{storage: storage, bucket: bucketName, presignedTTL: presignedTTL}
}

func (s *MediaStorage) DownloadURL(ctx context.Context, objectKey string) (string, error) {
	reqParams := make(url.Values)
	presignedURL, err := s.storage.client.PresignedGetObject(
		ctx,
		s.bucket,
		objectKey,
		s.presignedTTL,
		reqParams,
	)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}
