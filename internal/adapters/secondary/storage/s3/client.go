package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/admin/astro-web/natal-chart/internal/ports/storage"
	"github.com/minio/minio-go/v7"
)

// Client обёртка над minio.Client для хранения SVG-артефактов
type Client struct {
	client *minio.Client
	bucket string
	log    *slog.Logger
}

// NewClient создаёт новый S3-клиент артефактов
func NewClient(client *minio.Client, bucket string, log *slog.Logger) storage.IArtifactStore {
	return &Client{
		client: client,
		bucket: bucket,
		log:    log,
	}
}

// Put сохраняет артефакт под указанным именем
func (c *Client) Put(ctx context.Context, name string, data []byte) error {
	_, err := c.client.PutObject(ctx, c.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "image/svg+xml"})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", name, err)
	}

	c.log.Debug("artifact stored in s3", "name", name, "size", len(data))
	return nil
}

// Get получает артефакт по имени
func (c *Client) Get(ctx context.Context, name string) ([]byte, error) {
	object, err := c.client.GetObject(ctx, c.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", name, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", name, err)
	}

	return data, nil
}
