package minio

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"devblog/internal/domain/entity"
)

type Uploader struct {
	client *Client
	cfg    *UploaderConfig
}

func NewUploader(client *Client, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		client: client,
		cfg:    cfg,
	}
}

// UploadObject writes data to the configured bucket under objectName and
// returns where it landed. Failures propagate to the caller.
func (u *Uploader) UploadObject(ctx context.Context, objectName string, data []byte,
	contentType string,
) (entity.ObjectUploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	info, err := u.client.MinioClient.PutObject(ctx, u.cfg.Bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return entity.ObjectUploadResult{}, fmt.Errorf("object upload failed: %w", err)
	}

	return entity.ObjectUploadResult{
		ObjectName: objectName,
		Location:   fmt.Sprintf("%s/%s/%s", u.client.PublicURL, u.cfg.Bucket, objectName),
		Bucket:     u.cfg.Bucket,
		Size:       info.Size,
	}, nil
}
