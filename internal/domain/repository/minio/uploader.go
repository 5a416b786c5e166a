package minio

import (
	"context"

	"devblog/internal/domain/entity"
)

type Uploader interface {
	UploadObject(ctx context.Context, objectName string, data []byte,
		contentType string) (entity.ObjectUploadResult, error)
}
