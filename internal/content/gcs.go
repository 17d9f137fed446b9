package content

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

type GCSSource struct {
	client     *storage.Client
	bucketName string
	objectName string
}

func NewGCSSource(ctx context.Context, bucketName, objectName string) (*GCSSource, error) {
	if bucketName == "" {
		return nil, errors.New("GCS_CONTENT_BUCKET is not set")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSSource{
		client:     client,
		bucketName: bucketName,
		objectName: objectName,
	}, nil
}

func (s *GCSSource) Close() error {
	return s.client.Close()
}

func (s *GCSSource) Load(ctx context.Context) ([]byte, error) {
	obj := s.client.Bucket(s.bucketName).Object(s.objectName)

	reader, err := obj.NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create object reader: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read gs://%s/%s: %w", s.bucketName, s.objectName, err)
	}
	return data, nil
}
